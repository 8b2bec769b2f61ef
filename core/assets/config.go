package assets

const (
	// PinNone re-checks the primary root on every request.
	PinNone = ""
	// PinPrimary always serves from the primary root.
	PinPrimary = "primary"
	// PinSecondary always serves from the secondary root.
	PinSecondary = "secondary"
)

// Config holds configuration for static asset resolution.
type Config struct {
	// PrimaryRoot is the packaged build output, preferred when it exists.
	PrimaryRoot string `mapstructure:"primary_root" default:"../yukari/build/yukari-ui"`
	// SecondaryRoot is the raw UI source tree used during development.
	SecondaryRoot string `mapstructure:"secondary_root" default:"../yukari-ui"`
	// PinRoot fixes the root choice (primary, secondary). Empty means per-request detection.
	PinRoot string `mapstructure:"pin_root" default:""`
}

// IsValidPin checks if the configured pin value is known.
func (c Config) IsValidPin() bool {
	switch c.PinRoot {
	case PinNone, PinPrimary, PinSecondary:
		return true
	default:
		return false
	}
}
