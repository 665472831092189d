package cmd

import (
	"errors"
	"io/fs"
	"os"

	"ordering/internal/adapters/out/persistence"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort             = "8080"
	defaultDBDriver             = persistence.DriverPostgres
	defaultLogMode              = "dev"
	defaultSalesSummarySchedule = "0 */5 * * * *"
)

type Config struct {
	HTTPPort     string
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	DBSQLitePath string
	LogMode      string

	SalesSummarySchedule  string
	ProductEmailRecipient string
}

// LoadConfig reads envFile into the environment, without overriding variables
// that are already set, and builds the Config from the environment.
// A missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	return Config{
		HTTPPort:              getEnv("HTTP_PORT", defaultHTTPPort),
		DBDriver:              getEnv("DB_DRIVER", defaultDBDriver),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5432"),
		DBUser:                getEnv("DB_USER", ""),
		DBPassword:            getEnv("DB_PASSWORD", ""),
		DBName:                getEnv("DB_NAME", ""),
		DBSslMode:             getEnv("DB_SSLMODE", "disable"),
		DBSQLitePath:          getEnv("DB_SQLITE_PATH", ""),
		LogMode:               getEnv("LOG_MODE", defaultLogMode),
		SalesSummarySchedule:  getEnv("SALES_SUMMARY_SCHEDULE", defaultSalesSummarySchedule),
		ProductEmailRecipient: getEnv("PRODUCT_EMAIL_RECIPIENT", "catalog@localhost"),
	}, nil
}

// Database returns the persistence settings.
func (c Config) Database() persistence.Config {
	return persistence.Config{
		Driver:     c.DBDriver,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SSLMode:    c.DBSslMode,
		SQLitePath: c.DBSQLitePath,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
