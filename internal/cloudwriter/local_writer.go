package cloudwriter

import (
	"os"
	"path/filepath"
)

type LocalWriterFactory struct {
	dir string
}

func NewLocalWriterFactory(dir string) *LocalWriterFactory {
	return &LocalWriterFactory{dir: dir}
}

func (f *LocalWriterFactory) NewWriter(objectPath string) (CloudWriter, error) {
	path := f.Location(objectPath)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return os.Create(path)
}

func (f *LocalWriterFactory) Location(objectPath string) string {
	return filepath.Join(f.dir, filepath.FromSlash(objectPath))
}
