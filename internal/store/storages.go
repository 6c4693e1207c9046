package store

import (
	"context"
	"fmt"

	"github.com/mirovsky/passvault/internal/config"
	"github.com/mirovsky/passvault/internal/logger"
)

// LocalStorages groups the client-side repositories into a single value that
// can be passed around the service layer. Currently it holds only
// [LocalVaultRepository]; additional repositories can be added here as the
// feature set grows.
type LocalStorages struct {
	// VaultRepository is the SQLite-backed cache of encrypted vault items
	// stored locally on the client device.
	VaultRepository LocalVaultRepository
}

// NewLocalStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [LocalStorages] value wired to a fresh
//     [LocalVaultRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewLocalStorages(cfg config.ClientStorage, logger *logger.Logger) (*LocalStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &LocalStorages{
		VaultRepository: NewLocalVaultRepository(db, logger),
	}, nil
}
