package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"streampark_e2e/domain/entities"
	"streampark_e2e/domain/interfaces"
	"streampark_e2e/infrastructure/config"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// SeleniumDriver runs the session through a local ChromeDriver
type SeleniumDriver struct {
	wd      selenium.WebDriver
	service *selenium.Service
	logger  *logrus.Logger
}

var _ interfaces.Driver = (*SeleniumDriver)(nil)

// findChromeDriver - finds ChromeDriver executable path
func findChromeDriver(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured, nil
		}
	}

	commonPaths := []string{
		"/usr/local/bin/chromedriver",
		"/usr/bin/chromedriver",
		"/opt/homebrew/bin/chromedriver",
		filepath.Join(os.Getenv("HOME"), "bin", "chromedriver"),
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath("chromedriver"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("chromedriver not found. Please install it or set BROWSER_DRIVER_PATH environment variable")
}

// findChromeBinary - finds Chrome/Chromium browser executable path
func findChromeBinary(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	chromePaths := []string{
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
	}

	for _, path := range chromePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	return ""
}

// chromeArgs - returns the chrome flags for the session
func chromeArgs(cfg config.Config) []string {
	args := []string{
		"--disable-dev-shm-usage",
		"--no-sandbox",
		"--window-size=1280,720",
	}
	if cfg.Headless {
		args = append(args, "--headless=new")
	}
	return args
}

// NewSeleniumDriver - starts ChromeDriver and opens a WebDriver session
func NewSeleniumDriver(cfg config.Config, logger *logrus.Logger) (*SeleniumDriver, error) {
	if cfg.Browser != "chromium" {
		return nil, fmt.Errorf("selenium driver supports chromium only, got %s", cfg.Browser)
	}

	driverPath, err := findChromeDriver(cfg.ChromeDriverPath)
	if err != nil {
		return nil, fmt.Errorf("failed to find chromedriver: %w", err)
	}
	logger.Infof("Using ChromeDriver at: %s", driverPath)

	service, err := selenium.NewChromeDriverService(driverPath, cfg.SeleniumPort)
	if err != nil {
		return nil, fmt.Errorf("failed to start chromedriver: %w", err)
	}

	caps := selenium.Capabilities{
		"browserName": "chrome",
	}
	chromeCaps := chrome.Capabilities{
		Args: chromeArgs(cfg),
	}
	if chromeBinary := findChromeBinary(cfg.ChromeBinaryPath); chromeBinary != "" {
		logger.Infof("Using Chrome binary at: %s", chromeBinary)
		chromeCaps.Path = chromeBinary
	}
	caps.AddChrome(chromeCaps)

	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", cfg.SeleniumPort))
	if err != nil {
		service.Stop()
		if strings.Contains(err.Error(), "cannot find Chrome binary") {
			return nil, fmt.Errorf("failed to create webdriver: Chrome browser not found. Please install Google Chrome or set CHROME_BINARY_PATH environment variable. Error: %w", err)
		}
		return nil, fmt.Errorf("failed to create webdriver: %w", err)
	}

	return &SeleniumDriver{
		wd:      wd,
		service: service,
		logger:  logger,
	}, nil
}

// Name - returns the backend name
func (s *SeleniumDriver) Name() string {
	return config.DriverSelenium
}

// Navigate - navigates browser to specified URL
func (s *SeleniumDriver) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.Debugf("Navigating to: %s", url)
	if err := s.wd.Get(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// FindAll - resolves each step inside the elements found by the previous one
func (s *SeleniumDriver) FindAll(ctx context.Context, selector entities.Selector) ([]interfaces.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	steps := selector.Steps()
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty selector")
	}

	by, value := seleniumBy(steps[0])
	found, err := s.wd.FindElements(by, value)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", selector, err)
	}

	for _, step := range steps[1:] {
		by, value := seleniumBy(step)
		var nested []selenium.WebElement
		for _, parent := range found {
			children, err := parent.FindElements(by, value)
			if err != nil {
				return nil, fmt.Errorf("failed to find %s: %w", selector, err)
			}
			nested = append(nested, children...)
		}
		if found, err = dedupeWebElements(nested); err != nil {
			return nil, fmt.Errorf("failed to find %s: %w", selector, err)
		}
	}

	elements := make([]interfaces.Element, len(found))
	for i, el := range found {
		elements[i] = &seleniumElement{wd: s.wd, element: el}
	}
	return elements, nil
}

// Close - closes browser and stops ChromeDriver service
func (s *SeleniumDriver) Close() error {
	var closeErr error

	if s.wd != nil {
		if err := s.wd.Quit(); err != nil {
			closeErr = fmt.Errorf("failed to quit webdriver: %w", err)
		}
		s.wd = nil
	}
	if s.service != nil {
		if err := s.service.Stop(); err != nil {
			closeErr = joinErr(closeErr, fmt.Errorf("failed to stop chromedriver: %w", err))
		}
		s.service = nil
	}

	return closeErr
}

type seleniumElement struct {
	wd      selenium.WebDriver
	element selenium.WebElement
}

func (e *seleniumElement) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return e.element.Text()
}

func (e *seleniumElement) IsVisible(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return e.element.IsDisplayed()
}

func (e *seleniumElement) IsEnabled(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return e.element.IsEnabled()
}

func (e *seleniumElement) Click(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.element.Click()
}

func (e *seleniumElement) Fill(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.element.Clear(); err != nil {
		return err
	}
	return e.element.SendKeys(text)
}

// Type sends the keys to the element that has focus after the click
func (e *seleniumElement) Type(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.element.Click(); err != nil {
		return err
	}
	active, err := e.wd.ActiveElement()
	if err != nil {
		return fmt.Errorf("failed to find focused element: %w", err)
	}
	return active.SendKeys(text)
}

// dedupeWebElements drops repeated elements, keeping the first occurrence.
// Nested parents yield the same child more than once. The WebDriver element
// reference identifies an element within a session.
func dedupeWebElements(elements []selenium.WebElement) ([]selenium.WebElement, error) {
	seen := make(map[string]struct{}, len(elements))
	out := make([]selenium.WebElement, 0, len(elements))
	for _, el := range elements {
		ref, err := json.Marshal(el)
		if err != nil {
			return nil, fmt.Errorf("failed to read element reference: %w", err)
		}
		if _, ok := seen[string(ref)]; ok {
			continue
		}
		seen[string(ref)] = struct{}{}
		out = append(out, el)
	}
	return out, nil
}

// seleniumBy - converts a selector step to a WebDriver locator strategy
func seleniumBy(step entities.Step) (string, string) {
	switch step.Strategy {
	case entities.ByXPath:
		return selenium.ByXPATH, step.Value
	case entities.ByID:
		return selenium.ByID, step.Value
	case entities.ByClassName:
		return selenium.ByClassName, step.Value
	default:
		return selenium.ByCSSSelector, step.Value
	}
}
