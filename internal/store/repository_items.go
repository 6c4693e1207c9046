package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mirovsky/passvault/internal/logger"
	"github.com/mirovsky/passvault/models"
)

const cachedItemsTable = "cached_items"

var cachedItemColumns = []string{
	"item_id",
	"vault_id",
	"name",
	"url",
	"type",
	"tags",
	"item_key_wrapped",
	"username_ct",
	"password_ct",
	"totp_seed_ct",
	"note_ct",
	"version",
	"created_at",
	"updated_at",
}

type localVaultRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalVaultRepository(db *DB, logger *logger.Logger) LocalVaultRepository {
	return &localVaultRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localVaultRepository) SaveItem(ctx context.Context, item models.VaultItem) error {
	log := logger.FromContext(ctx)

	typeJSON, tagsJSON, err := marshalItemLists(item)
	if err != nil {
		log.Err(err).
			Str("func", "localVaultRepository.SaveItem").
			Str("item_id", item.ItemID).
			Msg("failed to encode item metadata lists")
		return fmt.Errorf("failed to encode item metadata: %w", err)
	}

	query, args, err := sq.Replace(cachedItemsTable).
		Columns(cachedItemColumns...).
		Values(
			item.ItemID,
			item.VaultID,
			item.Name,
			item.URL,
			typeJSON,
			tagsJSON,
			item.ItemKeyWrapped,
			item.UsernameCT,
			item.PasswordCT,
			item.TOTPSeedCT,
			item.NoteCT,
			item.Version,
			item.CreatedAt,
			item.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert query: %w", err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localVaultRepository.SaveItem").
			Str("item_id", item.ItemID).
			Msg("failed to execute upsert for cached item")
		return fmt.Errorf("failed to save cached item (item_id=%s): %w", item.ItemID, err)
	}

	return nil
}

func (l *localVaultRepository) GetItem(ctx context.Context, itemID string) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(cachedItemColumns...).
		From(cachedItemsTable).
		Where(sq.Eq{"item_id": itemID}).
		ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("failed to build select query: %w", err)
	}

	row := l.DB.QueryRowContext(ctx, query, args...)
	item, err := scanCachedItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultItem{}, fmt.Errorf("cached item %s: %w", itemID, ErrNotFound)
		}
		log.Err(err).
			Str("func", "localVaultRepository.GetItem").
			Str("item_id", itemID).
			Msg("failed to scan cached item row")
		return models.VaultItem{}, fmt.Errorf("failed to scan cached item row: %w", err)
	}

	return item, nil
}

func (l *localVaultRepository) ListItems(ctx context.Context, vaultID string) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(cachedItemColumns...).
		From(cachedItemsTable).
		Where(sq.Eq{"vault_id": vaultID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localVaultRepository.ListItems").
			Str("vault_id", vaultID).
			Msg("failed to query cached items")
		return nil, fmt.Errorf("failed to query cached items: %w", err)
	}
	defer rows.Close()

	var items []models.VaultItem
	for rows.Next() {
		item, scanErr := scanCachedItem(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localVaultRepository.ListItems").
				Str("vault_id", vaultID).
				Msg("failed to scan cached item row")
			return nil, fmt.Errorf("failed to scan cached item row: %w", scanErr)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached items: %w", err)
	}

	return items, nil
}

func (l *localVaultRepository) DeleteItem(ctx context.Context, itemID string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(cachedItemsTable).
		Where(sq.Eq{"item_id": itemID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localVaultRepository.DeleteItem").
			Str("item_id", itemID).
			Msg("failed to delete cached item")
		return fmt.Errorf("failed to delete cached item (item_id=%s): %w", itemID, err)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCachedItem(row rowScanner) (models.VaultItem, error) {
	var (
		item     models.VaultItem
		typeJSON string
		tagsJSON string
	)

	err := row.Scan(
		&item.ItemID,
		&item.VaultID,
		&item.Name,
		&item.URL,
		&typeJSON,
		&tagsJSON,
		&item.ItemKeyWrapped,
		&item.UsernameCT,
		&item.PasswordCT,
		&item.TOTPSeedCT,
		&item.NoteCT,
		&item.Version,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return models.VaultItem{}, err
	}

	if err = json.Unmarshal([]byte(typeJSON), &item.Type); err != nil {
		return models.VaultItem{}, fmt.Errorf("failed to decode item type list: %w", err)
	}
	if tagsJSON != "" {
		if err = json.Unmarshal([]byte(tagsJSON), &item.Tags); err != nil {
			return models.VaultItem{}, fmt.Errorf("failed to decode item tags: %w", err)
		}
	}

	return item, nil
}

func marshalItemLists(item models.VaultItem) (typeJSON, tagsJSON string, err error) {
	types := item.Type
	if types == nil {
		types = []models.ItemType{}
	}
	rawType, err := json.Marshal(types)
	if err != nil {
		return "", "", err
	}

	rawTags := []byte("")
	if len(item.Tags) > 0 {
		rawTags, err = json.Marshal(item.Tags)
		if err != nil {
			return "", "", err
		}
	}

	return string(rawType), string(rawTags), nil
}
