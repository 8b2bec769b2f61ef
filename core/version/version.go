// Package version holds the build identity reported by the server and the CLI.
package version

const (
	// Name is the product name.
	Name = "yukari-engine"
	// Number is the release version.
	Number = "0.1.0"
)

// String returns the identity in the "name: version" form the front end expects.
func String() string {
	return Name + ": " + Number
}
