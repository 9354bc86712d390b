package runner

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/vfg2006/asp-revenue-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
	scrapermocks "github.com/vfg2006/asp-revenue-pipeline/internal/scraper/mocks"
	"github.com/vfg2006/asp-revenue-pipeline/internal/usecases/ingesting"
	ingestmocks "github.com/vfg2006/asp-revenue-pipeline/internal/usecases/ingesting/mocks"
	resolvemocks "github.com/vfg2006/asp-revenue-pipeline/internal/usecases/resolving/mocks"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/log"
)

type coordinatorFixture struct {
	resolver *resolvemocks.MockCredentialResolver
	factory  *scrapermocks.MockFactory
	ingester *ingestmocks.MockIngester
	aspRepo  *repomocks.MockAspRepository
	coord    Coordinator
}

func newCoordinatorFixture(t *testing.T) *coordinatorFixture {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)

	f := &coordinatorFixture{
		resolver: resolvemocks.NewMockCredentialResolver(ctrl),
		factory:  scrapermocks.NewMockFactory(ctrl),
		ingester: ingestmocks.NewMockIngester(ctrl),
		aspRepo:  repomocks.NewMockAspRepository(ctrl),
	}

	f.coord = NewCoordinator(f.resolver, f.factory, f.ingester, f.aspRepo, 0)

	return f
}

func testRoster(names ...string) Roster {
	media := &domain.Media{ID: "media-1", Name: "Example Media", Slug: "example"}

	asps := make([]*domain.Asp, 0, len(names))
	for i, name := range names {
		asps = append(asps, &domain.Asp{ID: "asp-" + string(rune('1'+i)), Name: name, IsActive: true})
	}

	return Roster{Media: media, Asps: asps}
}

func (f *coordinatorFixture) expectSuccessfulAsp(ctrl *gomock.Controller, asp *domain.Asp, rows int, amount float64) {
	cred := &domain.Credential{Username: "u", Password: "p"}
	f.resolver.EXPECT().Resolve(gomock.Any(), asp.ID, "media-1").Return(cred, nil)

	adapter := scrapermocks.NewMockAdapter(ctrl)
	adapter.EXPECT().Login(gomock.Any(), cred).Return(nil)
	adapter.EXPECT().NavigateToReport(gomock.Any(), gomock.Any()).Return(nil)
	adapter.EXPECT().ExtractRawRows(gomock.Any()).Return(domain.Extraction{
		Rows: make([]domain.RawRow, rows),
	}, nil)
	adapter.EXPECT().MonthlySource().Return(domain.MonthlySourceDerivedFromDaily)
	adapter.EXPECT().Close()

	f.factory.EXPECT().Adapter(asp).Return(adapter, nil)

	f.ingester.EXPECT().
		IngestExtraction(gomock.Any(), asp, gomock.Any(), domain.MonthlySourceDerivedFromDaily, gomock.Any(), gomock.Any()).
		Return(&ingesting.IngestStats{RowsUpserted: rows, TotalAmount: amount}, nil)

	f.aspRepo.EXPECT().UpdateScrapeStatus(asp.ID, domain.ScrapeStatusSuccess, gomock.Any()).Return(nil)
}

func TestRunAllFailureIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newCoordinatorFixture(t)

	roster := testRoster("A8.net", "ValueCommerce", "Rentracks")
	asp1, asp2, asp3 := roster.Asps[0], roster.Asps[1], roster.Asps[2]

	f.expectSuccessfulAsp(ctrl, asp1, 10, 1500)

	// ASP2 times out on login; ASP3 must still run and succeed.
	cred := &domain.Credential{Username: "u", Password: "p"}
	f.resolver.EXPECT().Resolve(gomock.Any(), asp2.ID, "media-1").Return(cred, nil)

	failing := scrapermocks.NewMockAdapter(ctrl)
	failing.EXPECT().Login(gomock.Any(), cred).
		Return(domain.NewAdapterError(asp2.Name, domain.StageLogin, domain.ErrLoginTimeout))
	failing.EXPECT().Close()

	f.factory.EXPECT().Adapter(asp2).Return(failing, nil)
	f.aspRepo.EXPECT().UpdateScrapeStatus(asp2.ID, domain.ScrapeStatusFailed, gomock.Any()).Return(nil)

	f.expectSuccessfulAsp(ctrl, asp3, 4, 320)

	report := f.coord.RunAll(context.Background(), roster, domain.Period{Year: 2025, Month: 10})

	require.Len(t, report.Succeeded, 2)
	require.Len(t, report.Failed, 1)
	assert.Empty(t, report.Skipped)

	assert.Equal(t, "A8.net", report.Succeeded[0].AspName)
	assert.Equal(t, "Rentracks", report.Succeeded[1].AspName)
	assert.Equal(t, "ValueCommerce", report.Failed[0].AspName)
	assert.Equal(t, domain.StageLogin, report.Failed[0].Stage)
	assert.True(t, report.HasFailures())
	assert.Equal(t, 14, report.TotalRows())
}

func TestRunAllMissingCredentialSkipsWithoutLogin(t *testing.T) {
	f := newCoordinatorFixture(t)

	roster := testRoster("A8.net")
	asp := roster.Asps[0]

	// No adapter is ever built: factory and ingester expect zero calls.
	f.resolver.EXPECT().Resolve(gomock.Any(), asp.ID, "media-1").
		Return(nil, errors.Wrap(domain.ErrCredentialMissing, "asp=asp-1"))
	f.aspRepo.EXPECT().UpdateScrapeStatus(asp.ID, domain.ScrapeStatusSkipped, gomock.Any()).Return(nil)

	report := f.coord.RunAll(context.Background(), roster, domain.Period{Year: 2025, Month: 10})

	assert.Empty(t, report.Succeeded)
	assert.Empty(t, report.Failed)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "A8.net", report.Skipped[0].AspName)
	assert.False(t, report.HasFailures())
}

func TestRunAllIngestFailureReportsIngestStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newCoordinatorFixture(t)

	roster := testRoster("Rentracks")
	asp := roster.Asps[0]

	cred := &domain.Credential{Username: "u", Password: "p"}
	f.resolver.EXPECT().Resolve(gomock.Any(), asp.ID, "media-1").Return(cred, nil)

	adapter := scrapermocks.NewMockAdapter(ctrl)
	adapter.EXPECT().Login(gomock.Any(), cred).Return(nil)
	adapter.EXPECT().NavigateToReport(gomock.Any(), gomock.Any()).Return(nil)
	adapter.EXPECT().ExtractRawRows(gomock.Any()).Return(domain.Extraction{}, nil)
	adapter.EXPECT().MonthlySource().Return(domain.MonthlySourceNative)
	adapter.EXPECT().Close()

	f.factory.EXPECT().Adapter(asp).Return(adapter, nil)
	f.ingester.EXPECT().
		IngestExtraction(gomock.Any(), asp, gomock.Any(), domain.MonthlySourceNative, gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrAccountItemMissing)
	f.aspRepo.EXPECT().UpdateScrapeStatus(asp.ID, domain.ScrapeStatusFailed, gomock.Any()).Return(nil)

	report := f.coord.RunAll(context.Background(), roster, domain.Period{Year: 2025, Month: 10})

	require.Len(t, report.Failed, 1)
	assert.Equal(t, domain.StageIngest, report.Failed[0].Stage)
}

func TestRunAllSuccessOutcomeCarriesStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newCoordinatorFixture(t)

	roster := testRoster("A8.net")
	f.expectSuccessfulAsp(ctrl, roster.Asps[0], 7, 1234.567)

	report := f.coord.RunAll(context.Background(), roster, domain.Period{Year: 2025, Month: 10})

	require.Len(t, report.Succeeded, 1)
	outcome := report.Succeeded[0]
	assert.Equal(t, 7, outcome.Rows)
	assert.Equal(t, 1234.57, outcome.Amount)
	assert.NotEmpty(t, report.RunID)
}

func TestRunAllCancelledContextSkipsRemaining(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newCoordinatorFixture(t)

	roster := testRoster("A8.net", "Rentracks")
	asp1, asp2 := roster.Asps[0], roster.Asps[1]

	ctx, cancel := context.WithCancel(context.Background())

	cred := &domain.Credential{Username: "u", Password: "p"}
	f.resolver.EXPECT().Resolve(gomock.Any(), asp1.ID, "media-1").Return(cred, nil)

	adapter := scrapermocks.NewMockAdapter(ctrl)
	adapter.EXPECT().Login(gomock.Any(), cred).DoAndReturn(func(context.Context, *domain.Credential) error {
		// Simulates the run deadline expiring mid-session.
		cancel()
		return domain.NewAdapterError(asp1.Name, domain.StageLogin, context.Canceled)
	})
	adapter.EXPECT().Close()

	f.factory.EXPECT().Adapter(asp1).Return(adapter, nil)
	f.aspRepo.EXPECT().UpdateScrapeStatus(asp1.ID, domain.ScrapeStatusFailed, gomock.Any()).Return(nil)
	f.aspRepo.EXPECT().UpdateScrapeStatus(asp2.ID, domain.ScrapeStatusSkipped, gomock.Any()).Return(nil)

	report := f.coord.RunAll(ctx, roster, domain.Period{Year: 2025, Month: 10})

	require.Len(t, report.Failed, 1)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "Rentracks", report.Skipped[0].AspName)
}
