package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/dapperagenda/barber-api/internal/config"
)

// Driver is the storage backend for uploaded media (barber photos).
type Driver interface {
	// Upload stores the object and returns its public URL.
	Upload(ctx context.Context, r io.Reader, path string, contentType string) (string, error)

	Delete(ctx context.Context, path string) error
}

func New(cfg config.StorageConfig) (Driver, error) {
	switch cfg.Driver {
	case "s3":
		return NewS3(cfg)
	case "local", "":
		return NewLocal(cfg.UploadsPath), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
