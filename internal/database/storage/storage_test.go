package storage

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/GoArmGo/PhotoBase/internal/logger"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "postgres"), mock
}

var testLogger = logger.Discard()
