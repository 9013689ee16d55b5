package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/aanjelos/kaasi/internal/cli"
	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/config"
	"github.com/aanjelos/kaasi/internal/ledger"
	"github.com/aanjelos/kaasi/internal/service"
	"github.com/aanjelos/kaasi/internal/storage"
)

// initStore opens the SQLite store at the configured path, running any
// pending migrations.
func initStore(ctx context.Context) (service.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDataPath
	}
	return storage.NewSQLiteStore(ctx, config.ExpandPath(dbPath))
}

// openLedger loads the persisted state through the merge/repair
// pipeline. The returned cleanup closes the store.
func openLedger(ctx context.Context) (*ledger.Ledger, func(), error) {
	store, err := initStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	led, err := ledger.Open(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return led, func() { _ = store.Close() }, nil
}

// openConfiguredLedger is openLedger plus the first-run gate: mutating
// commands other than setup and import refuse until setup has completed.
func openConfiguredLedger(ctx context.Context) (*ledger.Ledger, func(), error) {
	led, cleanup, err := openLedger(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !led.SetupDone() {
		cleanup()
		return nil, nil, fmt.Errorf("%w: run 'kaasi setup' first", common.ErrSetupRequired)
	}
	return led, cleanup, nil
}

// reportSaveFailure prints the data-may-be-lost warning when an
// operation applied but could not be persisted. Returns true when err
// was a storage failure.
func reportSaveFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, common.ErrStorageQuotaExceeded) || errors.Is(err, common.ErrStorageWrite) {
		fmt.Println(cli.WarningStyle.Render(
			"Warning: the change was applied but could not be saved; it may be lost on exit."))
		return true
	}
	return false
}
