package services

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	_ "github.com/glebarez/sqlite"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"
	"github.com/stretchr/testify/require"
)

var registerBinds sync.Once

func newTestDB(t *testing.T) *sqlz.DB {
	t.Helper()

	registerBinds.Do(func() {
		binds.Register("sqlite", binds.BindByDriver("sqlite3"))
	})

	db, err := sqlz.Connect("sqlite", "file:"+filepath.Join(t.TempDir(), "artbrowser.db"))
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join("..", "..", "sql-migrations", "commit-0001-initial.sql"))
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), string(b))
	require.NoError(t, err)

	return db
}
