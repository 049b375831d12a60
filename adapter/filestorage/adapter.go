package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

type Adapter struct {
	dir    string
	logger *zap.Logger
}

type Option func(*Adapter)

func WithDir(dir string) Option {
	return func(a *Adapter) {
		a.dir = dir
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

func New(opts ...Option) (*Adapter, error) {
	a := &Adapter{
		dir:    ".",
		logger: zap.NewNop(),
	}

	for _, o := range opts {
		o(a)
	}

	info, err := os.Stat(a.dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", a.dir)
	}

	a.logger.Sugar().With(
		"directory", a.dir,
	).Info("init filestorage adapter")

	return a, nil
}

// path resolves relative names under the storage directory.
func (a *Adapter) path(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(a.dir, filename)
}

// Write creates or truncates the file. A failure midway leaves a partial file.
func (a *Adapter) Write(filename string, data io.Reader) error {
	f, err := os.Create(a.path(filename))
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := io.Copy(f, data)
	if err != nil {
		return err
	}

	a.logger.Sugar().With(
		"file", a.path(filename),
		"size", n,
	).Info("wrote report")

	return f.Close()
}

func (a *Adapter) Exists(filename string) (bool, error) {
	_, err := os.Stat(a.path(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (a *Adapter) Read(filename string) (io.ReadSeekCloser, error) {
	return os.Open(a.path(filename))
}

func (a *Adapter) Delete(filename string) error {
	return os.Remove(a.path(filename))
}
