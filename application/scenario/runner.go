package scenario

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"streampark_e2e/application/pages"
	"streampark_e2e/application/wait"
	"streampark_e2e/domain/entities"
	"streampark_e2e/domain/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Runner executes scenarios step by step on one driver session
type Runner struct {
	driver    interfaces.Driver
	waiter    *wait.Waiter
	store     interfaces.ReportStore
	logger    *logrus.Logger
	baseURL   string
	selectors pages.FormSelectors
	now       func() time.Time
}

// NewRunner - creates new runner bound to a driver session
func NewRunner(driver interfaces.Driver, waiter *wait.Waiter, store interfaces.ReportStore, logger *logrus.Logger, baseURL string) *Runner {
	return &Runner{
		driver:    driver,
		waiter:    waiter,
		store:     store,
		logger:    logger,
		baseURL:   baseURL,
		selectors: pages.DefaultFormSelectors(),
		now:       time.Now,
	}
}

// Run executes the steps in order and stops at the first failure. Nothing is
// retried; the returned error is the failing step's error unchanged.
func (r *Runner) Run(ctx context.Context, sc entities.Scenario) (entities.RunReport, error) {
	report := entities.RunReport{
		ID:        uuid.NewString(),
		Scenario:  sc.Name,
		Driver:    r.driver.Name(),
		Status:    entities.RunStatusInProgress,
		StartedAt: r.now(),
		Steps:     make([]entities.StepResult, 0, len(sc.Steps)),
	}

	log := r.logger.WithFields(logrus.Fields{
		"scenario": sc.Name,
		"run":      report.ID,
	})
	log.Info("Scenario started")

	var runErr error
	if err := Validate(sc); err != nil {
		runErr = err
	}

	for i, step := range sc.Steps {
		if runErr != nil {
			break
		}

		select {
		case <-ctx.Done():
			runErr = fmt.Errorf("scenario canceled: %w", ctx.Err())
			continue
		default:
		}

		stepLog := log.WithFields(logrus.Fields{
			"step":   i + 1,
			"action": step.Action,
		})
		if step.Description != "" {
			stepLog.Info(step.Description)
		}

		started := r.now()
		err := r.executeStep(ctx, stepLog, step)
		result := entities.StepResult{
			Action:     step.Action,
			Success:    err == nil,
			DurationMS: r.now().Sub(started).Milliseconds(),
		}
		if err != nil {
			result.Error = err.Error()
			stepLog.WithError(err).Error("Step failed")
			runErr = err
		} else {
			stepLog.Debug("Step done")
		}
		report.Steps = append(report.Steps, result)
	}

	report.FinishedAt = r.now()
	if runErr != nil {
		report.Status = entities.RunStatusFailed
		report.Error = runErr.Error()
		log.WithError(runErr).Error("Scenario failed")
	} else {
		report.Status = entities.RunStatusPassed
		log.Info("Scenario passed")
	}

	if r.store != nil {
		if err := r.store.SaveReport(report); err != nil {
			log.WithError(err).Warn("Failed to save run report")
		}
	}

	return report, runErr
}

// executeStep - executes single step with fresh page objects
func (r *Runner) executeStep(ctx context.Context, log *logrus.Entry, step entities.ScenarioStep) error {
	switch step.Action {
	case entities.ActionNavigate:
		target, err := r.resolveURL(step.URL)
		if err != nil {
			return err
		}
		log.Infof("Navigating to: %s", target)
		return r.driver.Navigate(ctx, target)

	case entities.ActionAddApplication:
		if step.Application == nil {
			return fmt.Errorf("application parameter is required for add_application action")
		}
		form := pages.NewApplicationForm(pages.NewPage(r.driver, r.waiter), r.selectors)
		if plan, err := form.Plan(*step.Application); err == nil {
			log.Debugf("Form steps: %v", plan)
		}
		log.Infof("Adding application %q (%s, %s)", step.Application.Name,
			step.Application.DevelopmentMode, step.Application.ExecutionMode)
		_, err := form.AddApplication(ctx, *step.Application)
		return err

	case entities.ActionCancelApplication:
		form := pages.NewApplicationForm(pages.NewPage(r.driver, r.waiter), r.selectors)
		_, err := form.Cancel(ctx)
		return err

	default:
		return &entities.UnsupportedVariantError{Kind: "scenario action", Value: string(step.Action)}
	}
}

// resolveURL - joins relative step URLs to the console base URL
func (r *Runner) resolveURL(raw string) (string, error) {
	ref, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}

	base, err := url.Parse(r.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", r.baseURL, err)
	}
	return base.ResolveReference(ref).String(), nil
}
