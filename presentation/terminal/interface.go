package terminal

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"streampark_e2e/application/scenario"
	"streampark_e2e/application/wait"
	"streampark_e2e/domain/entities"
	"streampark_e2e/domain/interfaces"
	"streampark_e2e/infrastructure/browser"
	"streampark_e2e/infrastructure/config"
	"streampark_e2e/infrastructure/storage"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DriverFactory opens a browser session for a run
type DriverFactory func(cfg config.Config, logger *logrus.Logger) (interfaces.Driver, error)

type TerminalInterface struct {
	cfg       config.Config
	logger    *logrus.Logger
	fs        afero.Fs
	store     interfaces.ReportStore
	newDriver DriverFactory
	out       io.Writer
}

func NewTerminalInterface(cfg config.Config, out io.Writer) (*TerminalInterface, error) {
	return newTerminalInterface(cfg, cfg.NewLogger(), afero.NewOsFs(), browser.NewDriver, out)
}

func newTerminalInterface(cfg config.Config, logger *logrus.Logger, fs afero.Fs, newDriver DriverFactory, out io.Writer) (*TerminalInterface, error) {
	store, err := storage.NewReportStore(fs, cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report storage: %w", err)
	}

	return &TerminalInterface{
		cfg:       cfg,
		logger:    logger,
		fs:        fs,
		store:     store,
		newDriver: newDriver,
		out:       out,
	}, nil
}

// Run loads every scenario up front, then runs them one after another on a
// single browser session. A failed scenario does not stop the next one.
func (t *TerminalInterface) Run(ctx context.Context, paths []string) error {
	scenarios := make([]entities.Scenario, 0, len(paths))
	for _, path := range paths {
		sc, err := scenario.LoadFile(t.fs, path)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, sc)
	}

	driver, err := t.newDriver(t.cfg, t.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize browser: %w", err)
	}
	defer func() {
		if err := driver.Close(); err != nil {
			t.logger.WithError(err).Warn("Failed to close browser")
		}
	}()

	waiter := wait.NewWaiter(driver, t.cfg.WaitTimeout, t.cfg.PollInterval)
	runner := scenario.NewRunner(driver, waiter, t.store, t.logger, t.cfg.BaseURL)

	failed := 0
	for _, sc := range scenarios {
		report, err := runner.Run(ctx, sc)
		if err != nil {
			failed++
			fmt.Fprintf(t.out, "FAIL %s (%s): %v\n", sc.Name, report.ID, err)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		fmt.Fprintf(t.out, "PASS %s (%s) in %s\n", sc.Name, report.ID,
			report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(scenarios))
	}
	return nil
}

// History prints the last limit stored runs, newest first. A limit of zero
// prints everything.
func (t *TerminalInterface) History(limit int) error {
	reports, err := t.store.LoadReports()
	if err != nil {
		return fmt.Errorf("failed to load run reports: %w", err)
	}

	if len(reports) == 0 {
		fmt.Fprintln(t.out, "No runs recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tSCENARIO\tDRIVER\tSTATUS\tSTEPS\tID")
	shown := 0
	for i := len(reports) - 1; i >= 0; i-- {
		if limit > 0 && shown == limit {
			break
		}
		r := reports[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			r.StartedAt.Local().Format(time.DateTime), r.Scenario, r.Driver, r.Status, len(r.Steps), r.ID)
		shown++
	}
	return w.Flush()
}
