// Package storage opens the record store engine selected in the config.
package storage

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Jeevana090908/stdgrd/core"
	"github.com/Jeevana090908/stdgrd/core/gradebook"
	"github.com/Jeevana090908/stdgrd/storage/database"
	"github.com/Jeevana090908/stdgrd/storage/kvstore"
)

type Store interface {
	gradebook.Repository
	Close() error
}

var ErrUnknownEngine = errors.New("unknown store engine")

func Open(ctx context.Context, conf *core.Config, logger core.Logger) (Store, error) {
	var (
		store Store
		err   error
	)
	switch conf.Store.Engine {
	case core.StoreBadger, "":
		store, err = kvstore.Open(conf, logger)
	case core.StorePostgres:
		store, err = database.Open(ctx, conf)
	default:
		return nil, errors.Wrap(ErrUnknownEngine, conf.Store.Engine)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}
