package scraper

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/asp-revenue-pipeline/internal/browser"
	"github.com/vfg2006/asp-revenue-pipeline/internal/config"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/log"
)

type state int

const (
	stateIdle state = iota
	stateLoggedIn
	stateOnReportPage
	stateExtracted
	stateClosed
)

// Adapter drives one ASP site through login, report navigation and raw row
// extraction. The three operations must be called in that order; Close is
// safe at any point and mandatory once the adapter has been used.
type Adapter interface {
	AspName() string
	MonthlySource() domain.MonthlySource
	Login(ctx context.Context, cred *domain.Credential) error
	NavigateToReport(ctx context.Context, period domain.Period) error
	ExtractRawRows(ctx context.Context) (domain.Extraction, error)
	Close()
}

// Factory builds an adapter for an ASP, failing when no site profile is
// registered for it.
type Factory interface {
	Adapter(asp *domain.Asp) (Adapter, error)
}

type factory struct {
	registry *Registry
	engine   browser.Engine
	notifier browser.Notifier
	browserCfg config.Browser
}

func NewFactory(
	registry *Registry,
	engine browser.Engine,
	notifier browser.Notifier,
	browserCfg config.Browser,
) Factory {
	return &factory{
		registry:   registry,
		engine:     engine,
		notifier:   notifier,
		browserCfg: browserCfg,
	}
}

func (f *factory) Adapter(asp *domain.Asp) (Adapter, error) {
	profile, ok := f.registry.Get(asp.Name)
	if !ok {
		return nil, errors.Errorf("no site profile registered for ASP %q", asp.Name)
	}

	return &siteAdapter{
		profile:       profile,
		asp:           asp,
		engine:        f.engine,
		notifier:      f.notifier,
		manualEnabled: f.browserCfg.ManualLoginEnabled,
		manualTimeout: f.browserCfg.ManualLoginTimeout,
	}, nil
}

type siteAdapter struct {
	profile       SiteProfile
	asp           *domain.Asp
	engine        browser.Engine
	notifier      browser.Notifier
	manualEnabled bool
	manualTimeout time.Duration

	session *browser.Session
	state   state
}

func (a *siteAdapter) AspName() string {
	return a.profile.AspName
}

func (a *siteAdapter) MonthlySource() domain.MonthlySource {
	return a.profile.MonthlySource
}

func (a *siteAdapter) Login(ctx context.Context, cred *domain.Credential) error {
	if a.state != stateIdle {
		return errors.New("login called on an already started adapter")
	}

	manual := a.manualLoginWanted()

	session, err := a.engine.NewSession(ctx, slugify(a.asp.Name), manual)
	if err != nil {
		return domain.NewAdapterError(a.asp.Name, domain.StageLogin, err)
	}
	a.session = session

	if err := a.session.Navigate(a.profile.LoginURL); err != nil {
		return a.fail(domain.StageLogin, err)
	}

	if a.profile.LoginVariant != ManualOnly {
		if err := a.submitLoginForm(cred); err != nil {
			return a.fail(domain.StageLogin, err)
		}
	}

	if err := a.confirmLogin(); err != nil {
		if !manual || !errors.Is(err, domain.ErrLoginTimeout) {
			return a.fail(domain.StageLogin, err)
		}

		// Automated confirmation failed; let a human finish the login in
		// the already-open window.
		if err := a.waitForManualLogin(); err != nil {
			return a.fail(domain.StageLogin, err)
		}
	}

	a.session.Screenshot(browser.CheckpointPostLogin)
	a.state = stateLoggedIn

	log.L.WithField("asp", a.asp.Name).Info("Login confirmed")

	return nil
}

func (a *siteAdapter) NavigateToReport(ctx context.Context, period domain.Period) error {
	if a.state != stateLoggedIn {
		return errors.New("navigate called before a confirmed login")
	}

	if a.profile.ReportURL != nil {
		if err := a.session.Navigate(a.profile.ReportURL(period)); err != nil {
			return a.fail(domain.StageNavigate, err)
		}
	}

	for _, step := range a.profile.ReportNav {
		if err := a.runNavStep(step); err != nil {
			return a.fail(domain.StageNavigate, err)
		}
	}

	a.session.Screenshot(browser.CheckpointPreExtraction)
	a.state = stateOnReportPage

	return nil
}

func (a *siteAdapter) ExtractRawRows(ctx context.Context) (domain.Extraction, error) {
	if a.state != stateOnReportPage {
		return domain.Extraction{}, errors.New("extract called before reaching the report page")
	}

	var tables []domain.RawTable
	if err := a.session.Evaluate(dumpTablesJS, &tables); err != nil {
		return domain.Extraction{}, a.fail(domain.StageExtract, err)
	}

	extraction, err := SelectRevenueTable(tables, a.profile.AmountLexicon)
	if err != nil {
		return domain.Extraction{}, a.fail(domain.StageExtract, err)
	}

	a.state = stateExtracted

	log.L.WithFields(log.Fields{
		"asp":     a.asp.Name,
		"rows":    len(extraction.Rows),
		"dropped": extraction.Dropped,
	}).Info("Raw rows extracted")

	return extraction, nil
}

func (a *siteAdapter) Close() {
	if a.session != nil {
		a.session.Close()
		a.session = nil
	}
	a.state = stateClosed
}

func (a *siteAdapter) manualLoginWanted() bool {
	if !a.manualEnabled {
		return false
	}

	return a.profile.ManualLogin ||
		a.profile.LoginVariant == ManualOnly ||
		a.asp.BotDetected
}

func (a *siteAdapter) submitLoginForm(cred *domain.Credential) error {
	if cred == nil {
		return errors.New("form login requires a credential")
	}

	if a.profile.LoginVariant == PartnerSubLogin && a.profile.Selectors.PartnerSubmit != "" {
		if err := a.session.Click(a.profile.Selectors.PartnerSubmit); err != nil {
			return err
		}
	}

	if err := a.session.SendKeys(a.profile.Selectors.Username, cred.Username); err != nil {
		return err
	}

	if err := a.session.SendKeys(a.profile.Selectors.Password, cred.Password); err != nil {
		return err
	}

	return a.session.Click(a.profile.Selectors.Submit)
}

// confirmLogin checks the success marker element or the URL hint. Either one
// is enough; both absent within the wait means the login did not land.
func (a *siteAdapter) confirmLogin() error {
	if a.profile.Selectors.SuccessMarker != "" {
		if err := a.session.WaitVisible(a.profile.Selectors.SuccessMarker); err == nil {
			return nil
		}
	}

	if a.profile.SuccessURLHint != "" {
		return a.session.WaitForURLContains(a.profile.SuccessURLHint, 15*time.Second)
	}

	return errors.Wrap(domain.ErrLoginTimeout, "no success marker appeared")
}

func (a *siteAdapter) waitForManualLogin() error {
	prompt := a.asp.OperationPrompt
	if prompt == "" {
		prompt = "Complete the login in the opened browser window."
	}

	if a.notifier != nil {
		a.notifier.ManualLoginRequired(a.asp.Name, a.profile.LoginURL, prompt)
	}

	log.L.WithFields(log.Fields{
		"asp":     a.asp.Name,
		"timeout": a.manualTimeout,
	}).Warn("Waiting for manual login")

	return a.session.WaitForURLContains(a.profile.SuccessURLHint, a.manualTimeout)
}

func (a *siteAdapter) runNavStep(step NavStep) error {
	switch step.Kind {
	case NavClick:
		return a.session.Click(step.Selector)
	case NavNavigate:
		return a.session.Navigate(step.URL)
	case NavWait:
		return a.session.WaitVisible(step.Selector)
	default:
		return errors.Errorf("unknown nav step kind %q", step.Kind)
	}
}

// fail captures the on-error screenshot and wraps the error with the failed
// stage so the coordinator can classify it without string matching.
func (a *siteAdapter) fail(stage domain.Stage, err error) error {
	if a.session != nil {
		a.session.Screenshot(browser.CheckpointOnError)
	}

	return domain.NewAdapterError(a.asp.Name, stage, err)
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, ".", "")
	return slug
}
