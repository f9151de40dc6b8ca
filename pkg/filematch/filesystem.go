package filematch

import "path/filepath"

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// fileSystem is the subset of filesystem calls path normalization needs.
type fileSystem interface {
	Abs(path string) (string, error)
	EvalSymlinks(path string) (string, error)
}

// defaultFileSystem implements fileSystem using the standard library.
type defaultFileSystem struct{}

func newDefaultFileSystem() fileSystem {
	return &defaultFileSystem{}
}

func (fs *defaultFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

func (fs *defaultFileSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
