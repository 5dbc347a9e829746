package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Platform  PlatformConfig
	Sheets    SheetsConfig
	MongoDB   MongoDBConfig
	Dashboard DashboardConfig
	Snapshot  SnapshotConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// PlatformConfig contains credentials for the platform REST API that owns the
// raw sales and expense records.
type PlatformConfig struct {
	BaseURL  string
	APIToken string
}

// SheetsConfig contains configuration for the Google Sheets record source used
// by small-farm deployments that log sales and expenses in a workbook.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// MongoDBConfig holds settings for the snapshot store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// DashboardConfig tunes the financial series the dashboard endpoints serve.
type DashboardConfig struct {
	WindowDays  int
	Occupations []string
}

// SnapshotConfig holds the nightly snapshot job settings.
type SnapshotConfig struct {
	CronSchedule string
	Timezone     string
	UserID       string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	windowDays, err := getenvInt("DASHBOARD_WINDOW_DAYS", 180)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Platform: PlatformConfig{
			BaseURL:  os.Getenv("PLATFORM_BASE_URL"),
			APIToken: os.Getenv("PLATFORM_API_TOKEN"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "agrobooks"),
		},
		Dashboard: DashboardConfig{
			WindowDays:  windowDays,
			Occupations: splitList(os.Getenv("DASHBOARD_OCCUPATIONS")),
		},
		Snapshot: SnapshotConfig{
			CronSchedule: getenvWithDefault("SNAPSHOT_CRON_SCHEDULE", "0 21 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Africa/Conakry"),
			UserID:       os.Getenv("SNAPSHOT_USER_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// UsePlatformSource reports whether records come from the platform REST API
// rather than the Google Sheets workbook.
func (c *Config) UsePlatformSource() bool {
	return c.Platform.BaseURL != ""
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.UsePlatformSource() {
		if c.Platform.APIToken == "" {
			return errors.New("PLATFORM_API_TOKEN must be provided when PLATFORM_BASE_URL is set")
		}
	} else {
		switch {
		case c.Sheets.CredentialsPath == "":
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when no platform API is configured")
		case c.Sheets.SpreadsheetID == "":
			return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided when no platform API is configured")
		}
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}

	if c.Dashboard.WindowDays <= 0 {
		return errors.New("DASHBOARD_WINDOW_DAYS must be positive")
	}

	if c.Snapshot.CronSchedule == "" {
		return errors.New("SNAPSHOT_CRON_SCHEDULE must be provided")
	}

	if c.Snapshot.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
