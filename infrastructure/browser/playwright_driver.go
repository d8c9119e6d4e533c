package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"streampark_e2e/domain/entities"
	"streampark_e2e/domain/interfaces"
	"streampark_e2e/infrastructure/config"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

const browserStateFile = "browser_state.json"

// PlaywrightDriver runs the session through playwright-go
type PlaywrightDriver struct {
	pw          *playwright.Playwright
	browser     playwright.Browser
	context     playwright.BrowserContext
	page        playwright.Page
	storagePath string
	logger      *logrus.Logger
}

var _ interfaces.Driver = (*PlaywrightDriver)(nil)

// NewPlaywrightDriver - starts playwright and opens one page. Cookies of the
// previous session are restored from the state directory so a logged in
// console stays logged in.
func NewPlaywrightDriver(cfg config.Config, logger *logrus.Logger) (*PlaywrightDriver, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	if err := os.MkdirAll(cfg.StateDir, 0755); err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	storagePath := filepath.Join(cfg.StateDir, browserStateFile)

	contextOptions := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
		AcceptDownloads:   playwright.Bool(true),
	}

	if data, err := os.ReadFile(storagePath); err == nil {
		var storageState playwright.StorageState
		if err := json.Unmarshal(data, &storageState); err == nil {
			contextOptions.StorageState = storageState.ToOptionalStorageState()
			logger.Debugf("Restored browser state from %s", storagePath)
		}
	}

	var browserType playwright.BrowserType
	switch cfg.Browser {
	case "firefox":
		browserType = pw.Firefox
	case "webkit":
		browserType = pw.WebKit
	default:
		browserType = pw.Chromium
	}

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.Browser == "chromium" {
		launchOptions.Args = []string{
			"--disable-dev-shm-usage",
			"--no-sandbox",
			"--disable-setuid-sandbox",
		}
	}

	browser, err := browserType.Launch(launchOptions)
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browserContext, err := browser.NewContext(contextOptions)
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}
	// Bounds a single driver action; element waits belong to the page objects.
	browserContext.SetDefaultTimeout(float64(cfg.WaitTimeout.Milliseconds()))

	page, err := browserContext.NewPage()
	if err != nil {
		browserContext.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.OnDialog(func(dialog playwright.Dialog) {
		logger.Debugf("Accepting dialog: %s", dialog.Message())
		dialog.Accept()
	})

	logger.Infof("Playwright %s session started (headless: %t)", cfg.Browser, cfg.Headless)

	return &PlaywrightDriver{
		pw:          pw,
		browser:     browser,
		context:     browserContext,
		page:        page,
		storagePath: storagePath,
		logger:      logger,
	}, nil
}

// Name - returns the backend name
func (d *PlaywrightDriver) Name() string {
	return config.DriverPlaywright
}

// Navigate - navigates to the specified URL and waits for the network to settle
func (d *PlaywrightDriver) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.logger.Debugf("Navigating to: %s", url)
	_, err := d.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	})
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// FindAll - resolves the selector chain to one locator per matched element
func (d *PlaywrightDriver) FindAll(ctx context.Context, selector entities.Selector) ([]interfaces.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	steps := selector.Steps()
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty selector")
	}

	locator := d.page.Locator(playwrightSelector(steps[0]))
	for _, step := range steps[1:] {
		locator = locator.Locator(playwrightSelector(step))
	}

	matched, err := locator.All()
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", selector, err)
	}

	elements := make([]interfaces.Element, len(matched))
	for i, l := range matched {
		elements[i] = &playwrightElement{page: d.page, locator: l}
	}
	return elements, nil
}

// SaveState - saves cookies and local storage for the next session
func (d *PlaywrightDriver) SaveState() error {
	if d.context == nil || d.storagePath == "" {
		return nil
	}

	if _, err := d.context.StorageState(d.storagePath); err != nil {
		if isClosedErr(err) {
			return nil
		}
		return fmt.Errorf("failed to save browser state: %w", err)
	}
	return nil
}

// Close - saves state, closes the browser and stops playwright
func (d *PlaywrightDriver) Close() error {
	var closeErr error

	if err := d.SaveState(); err != nil {
		closeErr = err
	}

	if d.context != nil {
		if err := d.context.Close(); err != nil && !isClosedErr(err) {
			closeErr = joinErr(closeErr, fmt.Errorf("failed to close context: %w", err))
		}
		d.context = nil
	}

	if d.browser != nil {
		if err := d.browser.Close(); err != nil && !isClosedErr(err) {
			closeErr = joinErr(closeErr, fmt.Errorf("failed to close browser: %w", err))
		}
		d.browser = nil
	}

	if d.pw != nil {
		if err := d.pw.Stop(); err != nil {
			closeErr = joinErr(closeErr, fmt.Errorf("failed to stop playwright: %w", err))
		}
		d.pw = nil
	}

	return closeErr
}

type playwrightElement struct {
	page    playwright.Page
	locator playwright.Locator
}

func (e *playwrightElement) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return e.locator.InnerText()
}

func (e *playwrightElement) IsVisible(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return e.locator.IsVisible()
}

func (e *playwrightElement) IsEnabled(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return e.locator.IsEnabled()
}

func (e *playwrightElement) Click(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.locator.Click()
}

func (e *playwrightElement) Fill(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.locator.Fill(text)
}

// Type clicks first: editors such as monaco move focus to a hidden textarea
func (e *playwrightElement) Type(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.locator.Click(); err != nil {
		return err
	}
	return e.page.Keyboard().Type(text)
}

// playwrightSelector - converts a selector step to playwright selector syntax
func playwrightSelector(step entities.Step) string {
	switch step.Strategy {
	case entities.ByXPath:
		return "xpath=" + step.Value
	case entities.ByID:
		return fmt.Sprintf("css=[id=%q]", step.Value)
	case entities.ByClassName:
		return fmt.Sprintf("css=[class~=%q]", step.Value)
	default:
		return "css=" + step.Value
	}
}

// isClosedErr reports errors raised by an already closed browser or page
func isClosedErr(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "closed") || strings.Contains(errStr, "target closed")
}

func joinErr(prev, err error) error {
	if prev == nil {
		return err
	}
	return fmt.Errorf("%v; %w", prev, err)
}
