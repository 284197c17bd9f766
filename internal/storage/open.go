package storage

import (
	"context"
	"errors"
	"strings"

	logx "onepaslots/pkg/logx"
)

// Store is the persistence API used by the app pipeline.
type Store interface {
	// Save overwrites the stored document with v encoded as JSON.
	Save(ctx context.Context, v any) error
	// Location describes where Save writes, for logs.
	Location() string
	Close() error
}

// Open initializes the configured store.
func Open(cfg Config, log logx.Logger) (Store, error) {
	if log.IsZero() {
		log = logx.Nop()
	}
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	switch driver {
	case "", "file":
		return openFile(cfg, log)
	case "none":
		return noneStore{}, nil
	default:
		return nil, errors.New("unknown storage driver: " + driver)
	}
}

type noneStore struct{}

func (noneStore) Save(context.Context, any) error { return ErrDisabled }
func (noneStore) Location() string                 { return "none" }
func (noneStore) Close() error                     { return nil }
