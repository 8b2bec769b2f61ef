package secret

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// ErrUnencodable is returned by Save for values no dotenv quoting can reproduce,
// such as a value ending in a backslash.
var ErrUnencodable = errors.New("value cannot be stored in a dotenv file")

// DotenvFile persists the key as a single KEY=value line.
type DotenvFile struct {
	fs   afero.Fs
	path string
	key  string
}

// NewDotenvFile creates a persister writing key to path on fsys.
func NewDotenvFile(fsys afero.Fs, path, key string) *DotenvFile {
	return &DotenvFile{fs: fsys, path: path, key: key}
}

// Load parses the file and returns the value stored under the key.
func (d *DotenvFile) Load() (string, bool, error) {
	f, err := d.fs.Open(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse %s: %w", d.path, err)
	}
	value, ok := env[d.key]
	return value, ok, nil
}

// Save truncates the file and writes the single record.
func (d *DotenvFile) Save(value string) error {
	line, err := d.encode(value)
	if err != nil {
		return err
	}

	f, err := d.fs.OpenFile(d.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// encode picks the first form that parses back to value: plain KEY=value,
// godotenv's double-quoted form, then single quotes.
func (d *DotenvFile) encode(value string) (string, error) {
	var candidates []string
	if !strings.ContainsAny(value, " \t\r\n\"'`#=$\\") {
		candidates = append(candidates, d.key+"="+value)
	}
	if quoted, err := godotenv.Marshal(map[string]string{d.key: value}); err == nil {
		candidates = append(candidates, quoted)
	}
	if !strings.ContainsAny(value, "'\n") {
		candidates = append(candidates, d.key+"='"+value+"'")
	}

	for _, line := range candidates {
		if d.roundTrips(line, value) {
			return line, nil
		}
	}
	return "", ErrUnencodable
}

func (d *DotenvFile) roundTrips(line, value string) bool {
	env, err := godotenv.Unmarshal(line)
	if err != nil {
		return false
	}
	got, ok := env[d.key]
	return ok && got == value
}
