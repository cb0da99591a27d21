// Package cloudwriter creates named object writers backed by the local
// filesystem or S3.
package cloudwriter

import (
	"fmt"
	"io"

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

// CloudWriter buffers or streams one object; Close publishes it.
type CloudWriter interface {
	io.Writer
	io.Closer
}

type CloudWriterFactory interface {
	// NewWriter opens the object at objectPath, a slash-separated path relative
	// to the factory root.
	NewWriter(objectPath string) (CloudWriter, error)
	// Location describes where objectPath ends up, for logs and reports.
	Location(objectPath string) string
}

// New returns the factory for the export destination in cfg.
func New(cfg models.ExportConfig) (CloudWriterFactory, error) {
	switch cfg.Destination {
	case "", "local":
		return NewLocalWriterFactory(cfg.Dir), nil
	case "s3":
		if cfg.S3.Bucket == "" {
			return nil, fmt.Errorf("export.s3.bucket is required for the s3 destination")
		}
		factory, err := NewS3WriterFactory(cfg.S3.Region, cfg.S3.Bucket, cfg.S3.Prefix)
		if err != nil {
			return nil, err
		}
		return factory, nil
	default:
		return nil, fmt.Errorf("unsupported export destination: %s", cfg.Destination)
	}
}
