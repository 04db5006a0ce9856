package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env          string        `yaml:"env"`
		Port         string        `yaml:"port"`
		ServiceName  string        `yaml:"service_name"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"app"`
	DB struct {
		Host            string        `yaml:"host"`
		Port            string        `yaml:"port"`
		User            string        `yaml:"user"`
		Password        string        `yaml:"password"`
		Name            string        `yaml:"name"`
		SSLMode         string        `yaml:"ssl_mode"`
		TimeZone        string        `yaml:"time_zone"`
		MaxIdleConns    int           `yaml:"max_idle_conns"`
		MaxOpenConns    int           `yaml:"max_open_conns"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
		LogLevel        string        `yaml:"log_level"`
	} `yaml:"db"`
	Log struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log"`
	Metrics struct {
		Enabled       bool          `yaml:"enabled"`
		StatsInterval time.Duration `yaml:"stats_interval"`
	} `yaml:"metrics"`
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// Default returns a configuration populated with the built-in defaults only.
func Default() *Config {
	cfg := &Config{}

	cfg.App.Env = "development"
	cfg.App.Port = "8088"
	cfg.App.ServiceName = "tourney"
	cfg.App.ReadTimeout = 5 * time.Second
	cfg.App.WriteTimeout = 10 * time.Second
	cfg.App.IdleTimeout = 120 * time.Second

	cfg.DB.Host = "localhost"
	cfg.DB.Port = "5432"
	cfg.DB.User = "postgres"
	cfg.DB.Password = "password"
	cfg.DB.Name = "tourney_db"
	cfg.DB.SSLMode = "disable"
	cfg.DB.TimeZone = "UTC"
	cfg.DB.MaxIdleConns = 10
	cfg.DB.MaxOpenConns = 50
	cfg.DB.ConnMaxLifetime = time.Hour
	cfg.DB.LogLevel = ""

	cfg.Log.Level = "info"
	cfg.Log.MaxSizeMB = 100
	cfg.Log.MaxBackups = 5
	cfg.Log.MaxAgeDays = 28

	cfg.Metrics.Enabled = true
	cfg.Metrics.StatsInterval = time.Minute

	return cfg
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// named by CONFIG_FILE, and finally environment variables (.env included).
func LoadConfig() (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := Default()

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	appConfig = cfg
	return cfg, nil
}

func (cfg *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	data = []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func (cfg *Config) applyEnv() error {
	var err error

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Port = getEnv("PORT", cfg.App.Port)
	cfg.App.ServiceName = getEnv("SERVICE_NAME", cfg.App.ServiceName)
	if cfg.App.ReadTimeout, err = getEnvAsDuration("HTTP_READ_TIMEOUT", cfg.App.ReadTimeout); err != nil {
		return err
	}
	if cfg.App.WriteTimeout, err = getEnvAsDuration("HTTP_WRITE_TIMEOUT", cfg.App.WriteTimeout); err != nil {
		return err
	}
	if cfg.App.IdleTimeout, err = getEnvAsDuration("HTTP_IDLE_TIMEOUT", cfg.App.IdleTimeout); err != nil {
		return err
	}

	// --- Database Configuration ---
	cfg.DB.Host = getEnv("DB_HOST", cfg.DB.Host)
	cfg.DB.Port = getEnv("DB_PORT", cfg.DB.Port)
	cfg.DB.User = getEnv("DB_USER", cfg.DB.User)
	cfg.DB.Password = getEnv("DB_PASSWORD", cfg.DB.Password)
	cfg.DB.Name = getEnv("DB_NAME", cfg.DB.Name)
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", cfg.DB.SSLMode)
	cfg.DB.TimeZone = getEnv("DB_TIMEZONE", cfg.DB.TimeZone)
	cfg.DB.LogLevel = getEnv("DB_LOG_LEVEL", cfg.DB.LogLevel)
	if cfg.DB.MaxIdleConns, err = getEnvAsInt("DB_MAX_IDLE_CONNS", cfg.DB.MaxIdleConns); err != nil {
		return err
	}
	if cfg.DB.MaxOpenConns, err = getEnvAsInt("DB_MAX_OPEN_CONNS", cfg.DB.MaxOpenConns); err != nil {
		return err
	}
	if cfg.DB.ConnMaxLifetime, err = getEnvAsDuration("DB_CONN_MAX_LIFETIME", cfg.DB.ConnMaxLifetime); err != nil {
		return err
	}

	// --- Logging ---
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("LOG_FILE", cfg.Log.File)
	if cfg.Log.MaxSizeMB, err = getEnvAsInt("LOG_MAX_SIZE_MB", cfg.Log.MaxSizeMB); err != nil {
		return err
	}
	if cfg.Log.MaxBackups, err = getEnvAsInt("LOG_MAX_BACKUPS", cfg.Log.MaxBackups); err != nil {
		return err
	}
	if cfg.Log.MaxAgeDays, err = getEnvAsInt("LOG_MAX_AGE_DAYS", cfg.Log.MaxAgeDays); err != nil {
		return err
	}

	// --- Metrics ---
	if cfg.Metrics.Enabled, err = getEnvAsBool("METRICS_ENABLED", cfg.Metrics.Enabled); err != nil {
		return err
	}
	if cfg.Metrics.StatsInterval, err = getEnvAsDuration("METRICS_STATS_INTERVAL", cfg.Metrics.StatsInterval); err != nil {
		return err
	}

	return nil
}

// DSN returns the postgres connection string for the DB section.
func (cfg *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		cfg.DB.TimeZone,
	)
}

// GormLogLevel maps DB.LogLevel to a gorm log level. An empty value follows
// the environment: SQL is logged in development and silenced elsewhere.
func (cfg *Config) GormLogLevel() logger.LogLevel {
	switch cfg.DB.LogLevel {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	}
	if cfg.App.Env == "development" {
		return logger.Info
	}
	return logger.Silent
}

// ConnectDB establishes a connection to the database using the provided configuration.
// It sets the global DB variable.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(dbCfg.GormLogLevel()),
		TranslateError: true,
	}

	gormDB, err := gorm.Open(postgres.Open(dbCfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(dbCfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbCfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(dbCfg.DB.ConnMaxLifetime)

	DB = gormDB
	return gormDB, nil
}

// Initialize loads all configurations and connects to the database.
// This should be called once at the start of your application (e.g., in main.go).
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		_, err = ConnectDB(*appConfig)
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It exits if the configuration has not been loaded yet.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected duration, got '%s'", key, valueStr)
	}
	return value, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected boolean, got '%s'", key, valueStr)
	}
	return value, nil
}
