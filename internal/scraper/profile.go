package scraper

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

// LoginVariant selects how the adapter performs the login step.
type LoginVariant string

const (
	// FormLogin fills the user/password fields and submits.
	FormLogin LoginVariant = "form"
	// PartnerSubLogin clicks through to a partner-side login form first.
	PartnerSubLogin LoginVariant = "partnerSub"
	// ManualOnly always hands the login to a human operator.
	ManualOnly LoginVariant = "manualOnly"
)

// LoginSelectors are the CSS selectors of the login form elements.
type LoginSelectors struct {
	Username      string
	Password      string
	Submit        string
	PartnerSubmit string
	SuccessMarker string
}

// NavStepKind is the action a NavStep performs on the report path.
type NavStepKind string

const (
	NavClick    NavStepKind = "click"
	NavNavigate NavStepKind = "navigate"
	NavWait     NavStepKind = "wait"
)

// NavStep is one scripted step from the post-login landing page to the
// revenue report page.
type NavStep struct {
	Kind     NavStepKind
	Selector string // click / wait target
	URL      string // navigate target
}

// SiteProfile describes everything site-specific about one ASP. The generic
// adapter is driven entirely by this structure; adding an ASP means adding a
// profile, not code.
type SiteProfile struct {
	AspName        string
	LoginURL       string
	LoginVariant   LoginVariant
	Selectors      LoginSelectors
	SuccessURLHint string
	ReportNav      []NavStep
	ReportURL      func(domain.Period) string
	AmountLexicon  []string
	MonthlySource  domain.MonthlySource
	ManualLogin    bool
}

// Registry holds the site profiles known to this build, keyed by ASP name.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]SiteProfile
}

func NewRegistry() *Registry {
	return &Registry{profiles: map[string]SiteProfile{}}
}

// Register adds a profile. A profile without a monthly source is rejected:
// without it the persister cannot tell native monthly rows from derived ones
// and could count a month twice.
func (r *Registry) Register(profile SiteProfile) error {
	if profile.AspName == "" {
		return errors.New("site profile requires an ASP name")
	}

	if profile.MonthlySource != domain.MonthlySourceNative &&
		profile.MonthlySource != domain.MonthlySourceDerivedFromDaily {
		return errors.Errorf("site profile %q requires a monthly source", profile.AspName)
	}

	if profile.LoginURL == "" {
		return errors.Errorf("site profile %q requires a login URL", profile.AspName)
	}

	if profile.Selectors.SuccessMarker == "" && profile.SuccessURLHint == "" {
		return errors.Errorf("site profile %q requires a success marker or URL hint", profile.AspName)
	}

	// The manual login wait can only watch the URL, and an empty hint would
	// match any page, reporting success before the operator touched anything.
	if (profile.ManualLogin || profile.LoginVariant == ManualOnly) && profile.SuccessURLHint == "" {
		return errors.Errorf("site profile %q allows manual login and requires a success URL hint", profile.AspName)
	}

	// A hint that already appears in the login URL confirms the login while
	// still sitting on the login page.
	if profile.SuccessURLHint != "" && strings.Contains(profile.LoginURL, profile.SuccessURLHint) {
		return errors.Errorf("site profile %q success URL hint matches its own login URL", profile.AspName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[profile.AspName]; exists {
		return errors.Errorf("site profile %q already registered", profile.AspName)
	}

	r.profiles[profile.AspName] = profile

	return nil
}

// Get returns the profile for an ASP name.
func (r *Registry) Get(aspName string) (SiteProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[aspName]
	return profile, ok
}

// Names returns the registered ASP names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
