package scraper

import (
	"fmt"

	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

// revenueLexicon are the column header words the extraction heuristic
// recognizes as the revenue column across Japanese ASP report tables.
var revenueLexicon = []string{
	"報酬額",
	"成果報酬",
	"成果金額",
	"発生報酬",
	"売上",
	"報酬",
	"金額",
}

// DefaultRegistry returns the registry with the profiles this build ships.
// Panics on a bad seed profile since that is a programming error caught at
// startup, not a runtime condition.
func DefaultRegistry() *Registry {
	registry := NewRegistry()

	for _, profile := range []SiteProfile{
		a8Profile(),
		valueCommerceProfile(),
		afbProfile(),
		rentracksProfile(),
		linkShareProfile(),
		amazonAssociatesProfile(),
	} {
		if err := registry.Register(profile); err != nil {
			panic(err)
		}
	}

	return registry
}

// A8.net publishes daily figures; the monthly number is derived by summing
// them, never read from the site.
func a8Profile() SiteProfile {
	return SiteProfile{
		AspName:      "A8.net",
		LoginURL:     "https://www.a8.net/login.html",
		LoginVariant: FormLogin,
		Selectors: LoginSelectors{
			Username:      `input[name="login"]`,
			Password:      `input[name="passwd"]`,
			Submit:        `input[type="submit"]`,
			SuccessMarker: `#reportHeader`,
		},
		SuccessURLHint: "as.a8.net",
		ReportURL: func(p domain.Period) string {
			return fmt.Sprintf(
				"https://pub.a8.net/a8v2/asResultListDailyAction.do?targetYm=%04d%02d",
				p.Year, int(p.Month),
			)
		},
		AmountLexicon: revenueLexicon,
		MonthlySource: domain.MonthlySourceDerivedFromDaily,
	}
}

func valueCommerceProfile() SiteProfile {
	return SiteProfile{
		AspName:      "ValueCommerce",
		LoginURL:     "https://aff.valuecommerce.ne.jp/",
		LoginVariant: FormLogin,
		Selectors: LoginSelectors{
			Username:      `input[name="ecuser_id"]`,
			Password:      `input[name="password"]`,
			Submit:        `button[type="submit"]`,
			SuccessMarker: `.vc-report-summary`,
		},
		SuccessURLHint: "aff.valuecommerce.ne.jp/report",
		ReportNav: []NavStep{
			{Kind: NavClick, Selector: `a[href*="report"]`},
			{Kind: NavWait, Selector: `table`},
		},
		AmountLexicon: revenueLexicon,
		MonthlySource: domain.MonthlySourceDerivedFromDaily,
	}
}

func afbProfile() SiteProfile {
	return SiteProfile{
		AspName:      "afb",
		LoginURL:     "https://www.afi-b.com/",
		LoginVariant: PartnerSubLogin,
		Selectors: LoginSelectors{
			PartnerSubmit: `a[href*="partner_login"]`,
			Username:      `input[name="login_name"]`,
			Password:      `input[name="password"]`,
			Submit:        `button.login-btn`,
			SuccessMarker: `.partner-dashboard`,
		},
		SuccessURLHint: "partner.afi-b.com",
		ReportNav: []NavStep{
			{Kind: NavClick, Selector: `a[href*="report/daily"]`},
			{Kind: NavWait, Selector: `table`},
		},
		AmountLexicon: revenueLexicon,
		MonthlySource: domain.MonthlySourceDerivedFromDaily,
	}
}

// Rentracks only reports per month; its monthly figure is taken as-is.
func rentracksProfile() SiteProfile {
	return SiteProfile{
		AspName:      "Rentracks",
		LoginURL:     "https://www.rentracks.jp/manage/login/",
		LoginVariant: FormLogin,
		Selectors: LoginSelectors{
			Username:      `input[name="idpass"]`,
			Password:      `input[name="password"]`,
			Submit:        `input[type="submit"]`,
			SuccessMarker: `.manage-menu`,
		},
		SuccessURLHint: "rentracks.jp/manage/top",
		ReportNav: []NavStep{
			{Kind: NavClick, Selector: `a[href*="report"]`},
			{Kind: NavWait, Selector: `table`},
		},
		AmountLexicon: revenueLexicon,
		MonthlySource: domain.MonthlySourceNative,
	}
}

func linkShareProfile() SiteProfile {
	return SiteProfile{
		AspName:      "LinkShare",
		LoginURL:     "https://login.linkshare.com/",
		LoginVariant: FormLogin,
		Selectors: LoginSelectors{
			Username:      `input[name="username"]`,
			Password:      `input[name="password"]`,
			Submit:        `button[type="submit"]`,
			SuccessMarker: `#dashboard`,
		},
		SuccessURLHint: "cli.linksynergy.com",
		ReportNav: []NavStep{
			{Kind: NavClick, Selector: `a[href*="reports"]`},
			{Kind: NavWait, Selector: `table`},
		},
		AmountLexicon: append([]string{"Commissions", "Revenue"}, revenueLexicon...),
		MonthlySource: domain.MonthlySourceNative,
	}
}

// Amazon fingerprints automation aggressively; login is always handed to an
// operator and the session profile keeps the cookies between runs.
func amazonAssociatesProfile() SiteProfile {
	return SiteProfile{
		AspName:        "Amazon Associates",
		LoginURL:       "https://affiliate.amazon.co.jp/home",
		LoginVariant:   ManualOnly,
		// The login URL itself lives under /home, so the confirmation hint
		// has to be a page only an authenticated session can reach.
		SuccessURLHint: "affiliate.amazon.co.jp/home/reports",
		ReportNav: []NavStep{
			{Kind: NavNavigate, URL: "https://affiliate.amazon.co.jp/home/reports"},
			{Kind: NavWait, Selector: `table`},
		},
		AmountLexicon: append([]string{"紹介料", "Earnings"}, revenueLexicon...),
		MonthlySource: domain.MonthlySourceNative,
		ManualLogin:   true,
	}
}
