package ingesting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
	"github.com/vfg2006/asp-revenue-pipeline/pkg/log"
)

type serviceFixture struct {
	itemRepo    *mocks.MockAccountItemRepository
	dailyRepo   *mocks.MockDailyActualRepository
	monthlyRepo *mocks.MockMonthlyActualRepository
	service     *Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		itemRepo:    mocks.NewMockAccountItemRepository(ctrl),
		dailyRepo:   mocks.NewMockDailyActualRepository(ctrl),
		monthlyRepo: mocks.NewMockMonthlyActualRepository(ctrl),
	}

	f.service = NewService(f.itemRepo, f.dailyRepo, f.monthlyRepo)

	return f
}

var (
	testAsp   = &domain.Asp{ID: "asp-1", Name: "A8.net"}
	testMedia = &domain.Media{ID: "media-1", Slug: "example"}
	testItem  = &domain.AccountItem{ID: "item-1", MediaID: "media-1", IsAffiliate: true}
	october   = domain.Period{Year: 2025, Month: time.October}
)

func TestIngestExtractionDailyRowsAndDerivedMonthly(t *testing.T) {
	f := newServiceFixture(t)

	f.itemRepo.EXPECT().GetAffiliateItem("media-1", "asp-1").Return(testItem, nil)

	var upserted []*domain.RevenueRecord
	f.dailyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Times(2).
		DoAndReturn(func(rec *domain.RevenueRecord) error {
			upserted = append(upserted, rec)
			return nil
		})

	f.dailyRepo.EXPECT().GetByMonth("asp-1", "media-1", "item-1", october).Return([]*domain.RevenueRecord{
		{Amount: 1200},
		{Amount: 800},
	}, nil)

	var monthly *domain.RevenueRecord
	f.monthlyRepo.EXPECT().SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(rec *domain.RevenueRecord) error {
			monthly = rec
			return nil
		})

	extraction := domain.Extraction{Rows: []domain.RawRow{
		{DateText: "2025/10/01", AmountText: "¥1,200"},
		{DateText: "2025/10/02", AmountText: "800円"},
	}}

	stats, err := f.service.IngestExtraction(
		context.Background(), testAsp, testMedia, domain.MonthlySourceDerivedFromDaily, october, extraction)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.RowsUpserted)
	assert.Equal(t, 2000.0, stats.TotalAmount)
	assert.Zero(t, stats.UnparsableDates)
	assert.Zero(t, stats.UnparsableAmounts)

	require.Len(t, upserted, 2)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), upserted[0].Date)
	assert.Equal(t, 1200.0, upserted[0].Amount)

	// The derived monthly row equals the month's daily sum and is dated the
	// last day of the month, never the first.
	require.NotNil(t, monthly)
	assert.Equal(t, 2000.0, monthly.Amount)
	assert.Equal(t, time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC), monthly.Date)
}

func TestIngestExtractionNativeMonthlyRow(t *testing.T) {
	f := newServiceFixture(t)

	f.itemRepo.EXPECT().GetAffiliateItem("media-1", "asp-1").Return(testItem, nil)

	var monthly *domain.RevenueRecord
	f.monthlyRepo.EXPECT().SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(rec *domain.RevenueRecord) error {
			monthly = rec
			return nil
		})

	extraction := domain.Extraction{Rows: []domain.RawRow{
		{DateText: "2025年10月", AmountText: "34,500"},
	}}

	stats, err := f.service.IngestExtraction(
		context.Background(), testAsp, testMedia, domain.MonthlySourceNative, october, extraction)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.RowsUpserted)
	require.NotNil(t, monthly)
	assert.Equal(t, time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC), monthly.Date)
	assert.Equal(t, 34500.0, monthly.Amount)
}

func TestIngestExtractionMonthlyRowFromDerivedSourceIsNotPersisted(t *testing.T) {
	f := newServiceFixture(t)

	f.itemRepo.EXPECT().GetAffiliateItem("media-1", "asp-1").Return(testItem, nil)

	// The month-granularity row must not reach the monthly ledger: the
	// same month will be reconciled from daily rows on another run, and
	// keeping both would count the revenue twice. No daily rows here, so
	// no derivation happens either.
	extraction := domain.Extraction{Rows: []domain.RawRow{
		{DateText: "2025年10月", AmountText: "34,500"},
	}}

	stats, err := f.service.IngestExtraction(
		context.Background(), testAsp, testMedia, domain.MonthlySourceDerivedFromDaily, october, extraction)
	require.NoError(t, err)

	assert.Zero(t, stats.RowsUpserted)
}

func TestIngestExtractionCountsUnparsableRows(t *testing.T) {
	f := newServiceFixture(t)

	f.itemRepo.EXPECT().GetAffiliateItem("media-1", "asp-1").Return(testItem, nil)

	f.dailyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	f.dailyRepo.EXPECT().GetByMonth("asp-1", "media-1", "item-1", october).
		Return([]*domain.RevenueRecord{{Amount: 500}}, nil)
	f.monthlyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	extraction := domain.Extraction{
		Rows: []domain.RawRow{
			{DateText: "総計", AmountText: "9,999"},      // no date
			{DateText: "2025/10/03", AmountText: "未確定"}, // no digits
			{DateText: "2025/10/04", AmountText: "500"},
		},
		Dropped: 2,
	}

	stats, err := f.service.IngestExtraction(
		context.Background(), testAsp, testMedia, domain.MonthlySourceDerivedFromDaily, october, extraction)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.RowsUpserted)
	assert.Equal(t, 1, stats.UnparsableDates)
	assert.Equal(t, 1, stats.UnparsableAmounts)
	assert.Equal(t, 2, stats.DroppedByHeuristic)
}

func TestIngestExtractionMissingAccountItem(t *testing.T) {
	f := newServiceFixture(t)

	f.itemRepo.EXPECT().GetAffiliateItem("media-1", "asp-1").Return(nil, nil)

	_, err := f.service.IngestExtraction(
		context.Background(), testAsp, testMedia, domain.MonthlySourceNative, october, domain.Extraction{})

	assert.ErrorIs(t, err, domain.ErrAccountItemMissing)
}

func TestIngestExtractionFailedUpsertDoesNotAbortRemainingRows(t *testing.T) {
	f := newServiceFixture(t)

	f.itemRepo.EXPECT().GetAffiliateItem("media-1", "asp-1").Return(testItem, nil)

	first := f.dailyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("deadlock detected"))
	f.dailyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).After(first)

	f.dailyRepo.EXPECT().GetByMonth("asp-1", "media-1", "item-1", october).
		Return([]*domain.RevenueRecord{{Amount: 800}}, nil)
	f.monthlyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	extraction := domain.Extraction{Rows: []domain.RawRow{
		{DateText: "2025/10/01", AmountText: "1200"},
		{DateText: "2025/10/02", AmountText: "800"},
	}}

	stats, err := f.service.IngestExtraction(
		context.Background(), testAsp, testMedia, domain.MonthlySourceDerivedFromDaily, october, extraction)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.RowsUpserted)
	assert.Equal(t, 1, stats.FailedUpserts)
	assert.Equal(t, 800.0, stats.TotalAmount)
}

func TestDeriveMonthlyFromDailyEmptyMonthWritesZero(t *testing.T) {
	f := newServiceFixture(t)

	f.dailyRepo.EXPECT().GetByMonth("asp-1", "media-1", "item-1", october).
		Return(nil, nil)

	var monthly *domain.RevenueRecord
	f.monthlyRepo.EXPECT().SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(rec *domain.RevenueRecord) error {
			monthly = rec
			return nil
		})

	record, err := f.service.DeriveMonthlyFromDaily(context.Background(), "asp-1", "media-1", "item-1", october)
	require.NoError(t, err)

	assert.Equal(t, 0.0, record.Amount)
	assert.Equal(t, monthly, record)
}

func TestResetPeriodDeletesDailyAndMonthlyRows(t *testing.T) {
	f := newServiceFixture(t)

	f.itemRepo.EXPECT().GetAffiliateItem("media-1", "asp-1").Return(testItem, nil)
	f.dailyRepo.EXPECT().DeleteByMonth("asp-1", "media-1", "item-1", october).Return(int64(31), nil)
	f.monthlyRepo.EXPECT().DeleteByPeriod("asp-1", "media-1", "item-1", october).Return(int64(1), nil)

	deleted, err := f.service.ResetPeriod(context.Background(), testAsp, testMedia, october)
	require.NoError(t, err)
	assert.Equal(t, int64(32), deleted)
}

func TestResetPeriodMissingAccountItem(t *testing.T) {
	f := newServiceFixture(t)

	f.itemRepo.EXPECT().GetAffiliateItem("media-1", "asp-1").Return(nil, nil)

	_, err := f.service.ResetPeriod(context.Background(), testAsp, testMedia, october)
	require.ErrorIs(t, err, domain.ErrAccountItemMissing)
}
