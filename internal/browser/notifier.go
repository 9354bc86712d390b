package browser

import "github.com/vfg2006/asp-revenue-pipeline/pkg/log"

// LogNotifier announces a required manual login on the application log. The
// operator watching the run (or tailing the log) completes the login in the
// opened window.
type LogNotifier struct{}

func (LogNotifier) ManualLoginRequired(aspName, loginURL, prompt string) {
	log.L.WithFields(log.Fields{
		"asp":       aspName,
		"login_url": loginURL,
	}).Warnf("MANUAL LOGIN REQUIRED: %s", prompt)
}
