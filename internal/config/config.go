package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything read from the environment.
type Config struct {
	Port string // API port

	DatabaseURL string // optional, overrides the discrete DB_* fields

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	APIURL        string // base URL the dashboard fetches from
	DashboardPort string
}

// Load reads the environment. The discrete DB_* variables are required unless
// DATABASE_URL is set.
func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "8000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		APIURL:        getenv("API_URL", "http://localhost:8000"),
		DashboardPort: getenv("DASHBOARD_PORT", "8050"),
	}

	if cfg.DatabaseURL != "" {
		return cfg, nil
	}

	if cfg.DBHost == "" {
		return Config{}, fmt.Errorf("DB_HOST is required")
	}
	if cfg.DBUser == "" {
		return Config{}, fmt.Errorf("DB_USER is required")
	}
	if cfg.DBPassword == "" {
		return Config{}, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.DBName == "" {
		return Config{}, fmt.Errorf("DB_NAME is required")
	}

	port, err := mustAtoi("DB_PORT")
	if err != nil {
		return Config{}, err
	}
	cfg.DBPort = port

	return cfg, nil
}

// LoadDashboard reads only what the dashboard needs. It never fails: the
// dashboard has no store access and both values have defaults.
func LoadDashboard() Config {
	return Config{
		APIURL:        getenv("API_URL", "http://localhost:8000"),
		DashboardPort: getenv("DASHBOARD_PORT", "8050"),
	}
}

// DSN builds the connection string for the discrete DB_* fields.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
		getenv("DB_SSLMODE", "disable"),
	)
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
