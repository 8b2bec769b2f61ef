package secret

// DefaultEnvName is the key name used in the persisted record and the mirrored
// environment variable.
const DefaultEnvName = "OPENAI_API_KEY"

// Config holds configuration for the API key store.
type Config struct {
	// File is the dotenv file holding the persisted key, relative to the working directory.
	File string `mapstructure:"file" default:".env"`
	// EnvName is the key name written to the file and mirrored to the environment.
	EnvName string `mapstructure:"env_name" default:"OPENAI_API_KEY"`
	// MirrorEnv exports every new key to the process environment for external collaborators.
	MirrorEnv bool `mapstructure:"mirror_env" default:"true"`
	// Strict makes a failed write to disk an error response instead of a partial success.
	Strict bool `mapstructure:"strict" default:"false"`
}

// KeyName returns the configured key name, falling back to DefaultEnvName.
func (c Config) KeyName() string {
	if c.EnvName == "" {
		return DefaultEnvName
	}
	return c.EnvName
}
