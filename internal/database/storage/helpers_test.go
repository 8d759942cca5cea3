package storage

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/GoArmGo/SalesTrack/internal/domain"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestGorm открывает изолированную in-memory SQLite базу
// со схемой товаров и продаж.
func newTestGorm(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:storage_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.Sale{}))
	return db
}

// newTestSqlx открывает in-memory SQLite базу с таблицей пользователей.
func newTestSqlx(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// одна sqlite in-memory база живет ровно на одном соединении
	db.SetMaxOpenConns(1)

	db.MustExec(`
	CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username VARCHAR(255) NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL
	)`)

	return db
}
