// Package browser adapts browser automation libraries to the Driver interface
package browser

import (
	"fmt"

	"streampark_e2e/domain/interfaces"
	"streampark_e2e/infrastructure/config"

	"github.com/sirupsen/logrus"
)

// NewDriver - opens a session with the backend named in cfg.Driver
func NewDriver(cfg config.Config, logger *logrus.Logger) (interfaces.Driver, error) {
	switch cfg.Driver {
	case config.DriverPlaywright:
		driver, err := NewPlaywrightDriver(cfg, logger)
		if err != nil {
			return nil, err
		}
		return driver, nil
	case config.DriverSelenium:
		driver, err := NewSeleniumDriver(cfg, logger)
		if err != nil {
			return nil, err
		}
		return driver, nil
	default:
		return nil, fmt.Errorf("unknown driver: %s", cfg.Driver)
	}
}
