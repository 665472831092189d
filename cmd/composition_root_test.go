package cmd_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"ordering/cmd"
	"ordering/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &logger.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func selectOne() (string, int64) {
	return "SELECT 1", 1
}

func TestNewGormLogger_DevModeLogsStatements(t *testing.T) {
	log, logs := observedLogger()
	gormLog := cmd.NewGormLogger(cmd.Config{LogMode: "dev"}, log)

	gormLog.Trace(context.Background(), time.Now(), selectOne, nil)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Contains(t, entry.Message, "SELECT 1")
	assert.Equal(t, "gorm", entry.ContextMap()["component"])
}

func TestNewGormLogger_ProdModeLogsErrorsOnly(t *testing.T) {
	log, logs := observedLogger()
	gormLog := cmd.NewGormLogger(cmd.Config{LogMode: "prod"}, log)
	ctx := context.Background()

	gormLog.Trace(ctx, time.Now(), selectOne, nil)
	gormLog.Trace(ctx, time.Now(), selectOne, gorm.ErrRecordNotFound)
	assert.Equal(t, 0, logs.Len())

	gormLog.Trace(ctx, time.Now(), selectOne, errors.New("relation does not exist"))
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "relation does not exist")
}

func TestOpenDatabase_SQLiteRoutesSQLThroughLogger(t *testing.T) {
	log, logs := observedLogger()
	cfg := cmd.Config{
		DBDriver:     "sqlite",
		DBSQLitePath: filepath.Join(t.TempDir(), "ordering.db"),
		LogMode:      "dev",
	}

	db, err := cmd.OpenDatabase(cfg, log)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.NotZero(t, logs.FilterMessageSnippet("CREATE TABLE").Len())
}
