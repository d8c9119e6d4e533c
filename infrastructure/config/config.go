package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mstoykov/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	DriverPlaywright = "playwright"
	DriverSelenium   = "selenium"

	DefaultEnvFile = ".env"
)

// Config holds everything needed to open a driver session against a console
type Config struct {
	Driver   string `envconfig:"E2E_DRIVER"`
	Browser  string `envconfig:"BROWSER"`
	Headless bool   `envconfig:"E2E_HEADLESS"`

	BaseURL      string        `envconfig:"STREAMPARK_URL"`
	WaitTimeout  time.Duration `envconfig:"E2E_WAIT_TIMEOUT"`
	PollInterval time.Duration `envconfig:"E2E_POLL_INTERVAL"`

	ChromeDriverPath string `envconfig:"BROWSER_DRIVER_PATH"`
	ChromeBinaryPath string `envconfig:"CHROME_BINARY_PATH"`
	SeleniumPort     int    `envconfig:"SELENIUM_PORT"`

	StateDir string `envconfig:"E2E_STATE_DIR"`
	LogLevel string `envconfig:"E2E_LOG_LEVEL"`
}

// Default - returns the configuration used when nothing is set
func Default() Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return Config{
		Driver:       DriverPlaywright,
		Browser:      "chromium",
		Headless:     true,
		BaseURL:      "http://localhost:10000",
		WaitTimeout:  10 * time.Second,
		PollInterval: 500 * time.Millisecond,
		SeleniumPort: 9515,
		StateDir:     filepath.Join(homeDir, ".streampark_e2e"),
		LogLevel:     "info",
	}
}

// Load reads env files, then overrides the defaults with environment
// variables. Without files the default .env is read when it exists; files
// named explicitly must exist.
func Load(files ...string) (Config, error) {
	optional := len(files) == 0
	if optional {
		files = []string{DefaultEnvFile}
	}
	if err := godotenv.Load(files...); err != nil && !(optional && os.IsNotExist(err)) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup - builds the configuration from an arbitrary variable source
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if err := envconfig.Process("", &cfg, lookup); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate - checks the values a session cannot start without
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPlaywright, DriverSelenium:
	default:
		return fmt.Errorf("unknown driver %q, expected %s or %s", c.Driver, DriverPlaywright, DriverSelenium)
	}

	switch c.Browser {
	case "chromium", "firefox", "webkit":
	default:
		return fmt.Errorf("unknown browser %q", c.Browser)
	}

	if c.WaitTimeout <= 0 {
		return fmt.Errorf("wait timeout must be positive, got %s", c.WaitTimeout)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("STREAMPARK_URL is empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// NewLogger - creates the logger shared by the drivers and the runner
func (c Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}
