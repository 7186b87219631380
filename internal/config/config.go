package config

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

type Config struct {
	// StorageMode selects how place/amenity links are stored: "db" for the
	// join table, "file" for the amenity_ids list on the place.
	StorageMode string `validate:"oneof=db file"`
	DBDriver    string `validate:"oneof=mysql sqlite"`

	MySQLUser     string `validate:"required_if=DBDriver mysql"`
	MySQLPassword string
	MySQLHost     string `validate:"required_if=DBDriver mysql"`
	MySQLPort     string `validate:"required_if=DBDriver mysql"`
	MySQLDB       string `validate:"required_if=DBDriver mysql"`
	SQLitePath    string `validate:"required_if=DBDriver sqlite"`

	APIHost  string `validate:"required"`
	APIPort  string `validate:"required,numeric"`
	SeedFile string

	LogLevel  string `validate:"oneof=debug info warn warning error"`
	LogFormat string `validate:"oneof=json text"`
}

// Load reads the environment, after merging a .env file from the working
// directory when there is one. Variables already set win over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	mode := getenv("HBNB_TYPE_STORAGE", "file")
	if mode != "db" {
		mode = "file"
	}
	defaultDriver := "sqlite"
	if mode == "db" {
		defaultDriver = "mysql"
	}

	return Config{
		StorageMode:   mode,
		DBDriver:      getenv("HBNB_DB_DRIVER", defaultDriver),
		MySQLUser:     getenv("HBNB_MYSQL_USER", "hbnb_dev"),
		MySQLPassword: os.Getenv("HBNB_MYSQL_PWD"),
		MySQLHost:     getenv("HBNB_MYSQL_HOST", "localhost"),
		MySQLPort:     getenv("HBNB_MYSQL_PORT", "3306"),
		MySQLDB:       getenv("HBNB_MYSQL_DB", "hbnb_dev_db"),
		SQLitePath:    getenv("HBNB_SQLITE_PATH", "hbnb.db"),
		APIHost:       getenv("HBNB_API_HOST", "0.0.0.0"),
		APIPort:       getenv("HBNB_API_PORT", "5000"),
		SeedFile:      os.Getenv("HBNB_SEED_FILE"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "text"),
	}, nil
}

var validate = validator.New()

// Validate reports the first invalid field.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// DSN returns the data source name for DBDriver.
func (c Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.SQLitePath
	}
	cfg := mysql.NewConfig()
	cfg.User = c.MySQLUser
	cfg.Passwd = c.MySQLPassword
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.MySQLHost, c.MySQLPort)
	cfg.DBName = c.MySQLDB
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	// RowsAffected counts matched rows, not changed ones.
	cfg.ClientFoundRows = true
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	cfg.Params["charset"] = "utf8mb4"
	return cfg.FormatDSN()
}

// Addr is the listen address of the API server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.APIHost, c.APIPort)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
