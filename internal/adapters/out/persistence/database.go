package persistence

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/adapters/out/persistence/customerrepo"
	"ordering/internal/adapters/out/persistence/orderrepo"
	"ordering/internal/adapters/out/persistence/productrepo"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	sqliteMemory = ":memory:"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config selects and addresses the database.
type Config struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN renders the driver specific connection string.
// SQLite connections always enable foreign key enforcement.
func (c Config) DSN() string {
	switch strings.ToLower(c.Driver) {
	case DriverSQLite:
		path := c.SQLitePath
		if path == "" {
			path = sqliteMemory
		}
		return path + "?_foreign_keys=1"
	default:
		sslMode := c.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, sslMode)
	}
}

// Open connects to the configured database. A nil log silences GORM.
func Open(cfg Config, log gormLogger.Interface) (*gorm.DB, error) {
	if log == nil {
		log = gormLogger.Default.LogMode(gormLogger.Silent)
	}
	gormConfig := &gorm.Config{Logger: log}

	var dialector gorm.Dialector
	switch strings.ToLower(cfg.Driver) {
	case DriverPostgres, "":
		dialector = postgres.Open(cfg.DSN())
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	if strings.EqualFold(cfg.Driver, DriverSQLite) && (cfg.SQLitePath == "" || cfg.SQLitePath == sqliteMemory) {
		// every pooled connection would otherwise get its own empty in-memory database
		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return nil, dbErr
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates the schema. Parents are migrated before children
// so foreign keys can be created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}
