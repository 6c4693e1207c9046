package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirovsky/passvault/internal/logger"
	"github.com/mirovsky/passvault/models"
)

const (
	selectCachedItemSQL  = `SELECT item_id, vault_id, name, url, type, tags, item_key_wrapped, username_ct, password_ct, totp_seed_ct, note_ct, version, created_at, updated_at FROM cached_items`
	replaceCachedItemSQL = `REPLACE INTO cached_items (item_id,vault_id,name,url,type,tags,item_key_wrapped,username_ct,password_ct,totp_seed_ct,note_ct,version,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	deleteCachedItemSQL  = `DELETE FROM cached_items WHERE item_id = ?`
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, db *sql.DB) LocalVaultRepository {
	t.Helper()
	storeDB := &DB{DB: db, logger: logger.Nop()}
	return NewLocalVaultRepository(storeDB, logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func testItem(now time.Time) models.VaultItem {
	return models.VaultItem{
		ItemID:         "item-1",
		VaultID:        "vault-1",
		Name:           "github",
		URL:            "https://github.com",
		Type:           []models.ItemType{models.ItemTypeLogin, models.ItemTypeTOTP},
		Tags:           []string{"work"},
		ItemKeyWrapped: "wrapped-item-key",
		UsernameCT:     "ct-username",
		PasswordCT:     "ct-password",
		TOTPSeedCT:     "ct-totp",
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func itemRowArgs(item models.VaultItem, typeJSON, tagsJSON string) []driver.Value {
	return []driver.Value{
		item.ItemID, item.VaultID, item.Name, item.URL,
		typeJSON, tagsJSON,
		item.ItemKeyWrapped,
		item.UsernameCT, item.PasswordCT, item.TOTPSeedCT, item.NoteCT,
		item.Version, item.CreatedAt, item.UpdatedAt,
	}
}

func TestSaveItem(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	item := testItem(now)

	t.Run("upsert executed with encoded metadata", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(replaceCachedItemSQL)).
			WithArgs(
				item.ItemID, item.VaultID, item.Name, item.URL,
				`["login","totp"]`, `["work"]`,
				item.ItemKeyWrapped,
				item.UsernameCT, item.PasswordCT, item.TOTPSeedCT, item.NoteCT,
				item.Version, item.CreatedAt, item.UpdatedAt,
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.SaveItem(testContext(), item)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(replaceCachedItemSQL)).
			WillReturnError(errors.New("disk full"))

		err := repo.SaveItem(testContext(), item)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save cached item")
	})
}

func TestGetItem(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	item := testItem(now)

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		rows := sqlmock.NewRows(cachedItemColumns).
			AddRow(itemRowArgs(item, `["login","totp"]`, `["work"]`)...)
		mock.ExpectQuery(regexp.QuoteMeta(selectCachedItemSQL)).
			WithArgs(item.ItemID).
			WillReturnRows(rows)

		got, err := repo.GetItem(testContext(), item.ItemID)

		require.NoError(t, err)
		assert.Equal(t, item, got)
	})

	t.Run("not cached returns ErrNotFound", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectCachedItemSQL)).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(cachedItemColumns))

		_, err := repo.GetItem(testContext(), "missing")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty tags column decodes to nil", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		noTags := item
		noTags.Tags = nil

		rows := sqlmock.NewRows(cachedItemColumns).
			AddRow(itemRowArgs(noTags, `["login","totp"]`, "")...)
		mock.ExpectQuery(regexp.QuoteMeta(selectCachedItemSQL)).
			WithArgs(item.ItemID).
			WillReturnRows(rows)

		got, err := repo.GetItem(testContext(), item.ItemID)

		require.NoError(t, err)
		assert.Nil(t, got.Tags)
	})
}

func TestListItems(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	first := testItem(now)
	second := testItem(now.Add(time.Minute))
	second.ItemID = "item-2"
	second.Name = "gitlab"

	t.Run("all vault items returned", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		rows := sqlmock.NewRows(cachedItemColumns).
			AddRow(itemRowArgs(first, `["login","totp"]`, `["work"]`)...).
			AddRow(itemRowArgs(second, `["login","totp"]`, `["work"]`)...)
		mock.ExpectQuery(regexp.QuoteMeta(selectCachedItemSQL)).
			WithArgs(first.VaultID).
			WillReturnRows(rows)

		got, err := repo.ListItems(testContext(), first.VaultID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first, got[0])
		assert.Equal(t, second, got[1])
	})

	t.Run("query error is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(regexp.QuoteMeta(selectCachedItemSQL)).
			WillReturnError(errors.New("db closed"))

		_, err := repo.ListItems(testContext(), first.VaultID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query cached items")
	})
}

func TestDeleteItem(t *testing.T) {
	t.Run("delete executed", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(deleteCachedItemSQL)).
			WithArgs("item-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteItem(testContext(), "item-1")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleting absent item is not an error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(regexp.QuoteMeta(deleteCachedItemSQL)).
			WithArgs("ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteItem(testContext(), "ghost")

		require.NoError(t, err)
	})
}
