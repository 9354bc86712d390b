package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"

	"github.com/vfg2006/asp-revenue-pipeline/internal/config"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/log"
)

// Checkpoint names the moments a session captures a screenshot at.
type Checkpoint string

const (
	CheckpointPostLogin     Checkpoint = "post_login"
	CheckpointPreExtraction Checkpoint = "pre_extraction"
	CheckpointOnError       Checkpoint = "on_error"
)

// Notifier alerts an operator that a manual login is required. The
// implementation decides the channel (stdout, chat webhook, etc).
type Notifier interface {
	ManualLoginRequired(aspName, loginURL, prompt string)
}

// Engine builds browser sessions with a shared anti-detection setup.
type Engine interface {
	NewSession(ctx context.Context, aspSlug string, manual bool) (*Session, error)
}

type engine struct {
	browser     config.Browser
	screenshots config.Screenshot
}

func NewEngine(browser config.Browser, screenshots config.Screenshot) Engine {
	return &engine{
		browser:     browser,
		screenshots: screenshots,
	}
}

// Session owns one Chrome instance and guarantees its teardown via Close.
type Session struct {
	ctx         context.Context
	cancels     []context.CancelFunc
	aspSlug     string
	stepTimeout time.Duration
	shotDir     string
}

// NewSession launches Chrome. Manual sessions run headful with a persistent
// per-ASP profile so cookies survive between runs and the operator can type
// into the window.
func (e *engine) NewSession(ctx context.Context, aspSlug string, manual bool) (*Session, error) {
	headless := e.browser.Headless
	if manual {
		headless = false
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("log-level", "3"), // suppress Chrome logs
		chromedp.UserAgent(e.browser.UserAgent),
		chromedp.WindowSize(e.browser.WindowWidth, e.browser.WindowHeight),
	)

	if manual {
		profileDir := filepath.Join(e.browser.ProfileDir, aspSlug)
		if err := os.MkdirAll(profileDir, 0o755); err != nil {
			return nil, errors.Wrap(err, "creating browser profile directory")
		}
		opts = append(opts, chromedp.UserDataDir(profileDir))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	session := &Session{
		ctx:         browserCtx,
		cancels:     []context.CancelFunc{cancelBrowser, cancelAlloc},
		aspSlug:     aspSlug,
		stepTimeout: e.browser.StepTimeout,
		shotDir:     e.screenshots.Dir,
	}

	// Starting the browser before any navigation surfaces launch failures
	// (missing binary, bad profile dir) as a single clear error.
	if err := chromedp.Run(browserCtx, hideAutomationMarkers()); err != nil {
		session.Close()
		return nil, errors.Wrap(err, "launching browser")
	}

	return session, nil
}

// hideAutomationMarkers masks navigator.webdriver and friends before any
// page script runs. Several ASPs check these on the login page.
func hideAutomationMarkers() chromedp.Action {
	const script = `
		Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
		Object.defineProperty(navigator, 'languages', { get: () => ['ja-JP', 'ja', 'en-US'] });
		Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3] });
		window.chrome = window.chrome || { runtime: {} };
	`

	return chromedp.ActionFunc(func(ctx context.Context) error {
		_, err := page.AddScriptToEvaluateOnNewDocument(script).Do(ctx)
		return err
	})
}

func (s *Session) run(actions ...chromedp.Action) error {
	stepCtx, cancel := context.WithTimeout(s.ctx, s.stepTimeout)
	defer cancel()

	return chromedp.Run(stepCtx, actions...)
}

func (s *Session) Navigate(url string) error {
	if err := s.run(chromedp.Navigate(url)); err != nil {
		return errors.Wrapf(err, "navigating to %s", url)
	}
	return nil
}

func (s *Session) WaitVisible(selector string) error {
	if err := s.run(chromedp.WaitVisible(selector, chromedp.ByQuery)); err != nil {
		return errors.Wrapf(err, "waiting for %q", selector)
	}
	return nil
}

func (s *Session) SendKeys(selector, value string) error {
	if err := s.run(
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Clear(selector, chromedp.ByQuery),
		chromedp.SendKeys(selector, value, chromedp.ByQuery),
	); err != nil {
		return errors.Wrapf(err, "typing into %q", selector)
	}
	return nil
}

func (s *Session) Click(selector string) error {
	if err := s.run(
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Click(selector, chromedp.ByQuery),
	); err != nil {
		return errors.Wrapf(err, "clicking %q", selector)
	}
	return nil
}

// Evaluate runs js in the page and unmarshals the result into out.
func (s *Session) Evaluate(js string, out interface{}) error {
	if err := s.run(chromedp.Evaluate(js, out)); err != nil {
		return errors.Wrap(err, "evaluating script")
	}
	return nil
}

func (s *Session) CurrentURL() (string, error) {
	var url string
	if err := s.run(chromedp.Location(&url)); err != nil {
		return "", errors.Wrap(err, "reading current url")
	}
	return url, nil
}

// WaitForURLContains polls the location until it contains hint. Used to
// detect a completed manual login, so the timeout is the operator's window
// rather than the regular step timeout.
func (s *Session) WaitForURLContains(hint string, timeout time.Duration) error {
	if hint == "" {
		return errors.New("url hint is empty, refusing a wait that would always pass")
	}

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		url, err := s.CurrentURL()
		if err != nil {
			return err
		}

		if strings.Contains(url, hint) {
			return nil
		}

		if time.Now().After(deadline) {
			return errors.Wrapf(domain.ErrLoginTimeout, "url never reached %q", hint)
		}

		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		case <-ticker.C:
		}
	}
}

// Screenshot captures the full page into the configured directory. A failed
// screenshot is logged, never fatal, since it only exists for diagnosis.
func (s *Session) Screenshot(checkpoint Checkpoint) {
	var buf []byte
	if err := s.run(chromedp.CaptureScreenshot(&buf)); err != nil {
		log.L.WithError(err).WithField("asp", s.aspSlug).Warn("Screenshot capture failed")
		return
	}

	if err := os.MkdirAll(s.shotDir, 0o755); err != nil {
		log.L.WithError(err).Warn("Screenshot directory unavailable")
		return
	}

	name := fmt.Sprintf("%s_%s_%s.png", s.aspSlug, checkpoint, time.Now().Format("20060102T150405"))
	path := filepath.Join(s.shotDir, name)

	if err := os.WriteFile(path, buf, 0o644); err != nil {
		log.L.WithError(err).WithField("path", path).Warn("Screenshot write failed")
		return
	}

	log.L.WithFields(log.Fields{"asp": s.aspSlug, "path": path}).Debug("Screenshot saved")
}

// Close tears the browser down. Safe to call more than once.
func (s *Session) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}
