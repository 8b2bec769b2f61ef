package assets

import (
	"errors"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ReservedPrefix marks paths that belong to the API, never to the filesystem.
const ReservedPrefix = "api/"

// IndexFile is served for the root path.
const IndexFile = "index.html"

var (
	// ErrReservedPath is returned for paths under ReservedPrefix.
	ErrReservedPath = errors.New("reserved api path")
	// ErrAssetNotFound is returned when the file is absent or unreadable in the selected root.
	ErrAssetNotFound = errors.New("asset not found")
)

// Asset is a resolved static file.
type Asset struct {
	// Name is the cleaned path relative to Root.
	Name string
	// Root is the root directory the file was read from.
	Root string
	Body []byte
}

// Resolver maps request paths to files under the primary or secondary root.
// It holds no mutable state.
type Resolver struct {
	fs  afero.Fs
	cfg Config
}

// NewResolver creates a resolver reading from fsys.
func NewResolver(fsys afero.Fs, cfg Config) *Resolver {
	return &Resolver{fs: fsys, cfg: cfg}
}

// Resolve returns the file for requestPath.
func (r *Resolver) Resolve(requestPath string) (Asset, error) {
	name, err := Clean(requestPath)
	if err != nil {
		return Asset{}, err
	}

	root := r.Root()
	full := filepath.Join(root, filepath.FromSlash(name))

	info, err := r.fs.Stat(full)
	if err != nil || info.IsDir() {
		return Asset{}, ErrAssetNotFound
	}
	body, err := afero.ReadFile(r.fs, full)
	if err != nil {
		return Asset{}, ErrAssetNotFound
	}

	return Asset{Name: name, Root: root, Body: body}, nil
}

// Root returns the root the next request will be served from.
func (r *Resolver) Root() string {
	switch r.cfg.PinRoot {
	case PinPrimary:
		return r.cfg.PrimaryRoot
	case PinSecondary:
		return r.cfg.SecondaryRoot
	}
	if ok, err := afero.DirExists(r.fs, r.cfg.PrimaryRoot); err == nil && ok {
		return r.cfg.PrimaryRoot
	}
	return r.cfg.SecondaryRoot
}

// Clean strips the query, rejects reserved paths and normalizes the rest to a
// slash-separated path that cannot climb above the root. It never touches the filesystem.
func Clean(requestPath string) (string, error) {
	if i := strings.IndexByte(requestPath, '?'); i >= 0 {
		requestPath = requestPath[:i]
	}

	// dot segments are resolved first so x/../api/y is still reserved
	name := strings.TrimPrefix(path.Clean("/"+requestPath), "/")
	if strings.HasPrefix(name, ReservedPrefix) || name == strings.TrimSuffix(ReservedPrefix, "/") {
		return "", ErrReservedPath
	}

	if name == "" {
		name = IndexFile
	}
	return name, nil
}
