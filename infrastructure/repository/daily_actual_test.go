package repository

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

var revenueColumns = []string{
	"date", "media_id", "account_item_id", "asp_id", "amount", "created_at", "updated_at",
}

// stubState plays back canned result sets and records every statement the
// repositories send, so the squirrel-built SQL and the scan path can be
// exercised without a live PostgreSQL. DATE columns come back as time.Time
// values, matching what lib/pq hands to database/sql.
type stubState struct {
	columns []string
	rows    [][]driver.Value
	execs   []stubStatement
	queries []stubStatement
}

type stubStatement struct {
	sql  string
	args []driver.Value
}

type stubDriver struct{ state *stubState }

func (d *stubDriver) Open(string) (driver.Conn, error) {
	return &stubConn{state: d.state}, nil
}

type stubConn struct{ state *stubState }

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
	return &stubStmt{state: c.state, query: query}, nil
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) { return nil, driver.ErrSkip }

type stubStmt struct {
	state *stubState
	query string
}

func (s *stubStmt) Close() error { return nil }

func (s *stubStmt) NumInput() int { return -1 }

func (s *stubStmt) Exec(args []driver.Value) (driver.Result, error) {
	s.state.execs = append(s.state.execs, stubStatement{sql: s.query, args: args})
	return driver.RowsAffected(1), nil
}

func (s *stubStmt) Query(args []driver.Value) (driver.Rows, error) {
	s.state.queries = append(s.state.queries, stubStatement{sql: s.query, args: args})
	return &stubRows{columns: s.state.columns, rows: s.state.rows}, nil
}

type stubRows struct {
	columns []string
	rows    [][]driver.Value
	idx     int
}

func (r *stubRows) Columns() []string { return r.columns }

func (r *stubRows) Close() error { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.idx])
	r.idx++
	return nil
}

var stubDriverSeq atomic.Int64

func newStubConnection(t *testing.T, state *stubState) *postgres.Connection {
	t.Helper()

	name := fmt.Sprintf("pgstub-%d", stubDriverSeq.Add(1))
	sql.Register(name, &stubDriver{state: state})

	db, err := sql.Open(name, name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &postgres.Connection{DB: db}
}

func TestDailyActualSaveOrUpdateUpsertsOnNaturalKey(t *testing.T) {
	state := &stubState{}
	repo := NewDailyActualRepository(newStubConnection(t, state))

	record := &domain.RevenueRecord{
		Date:          time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC),
		MediaID:       "media-1",
		AccountItemID: "item-1",
		AspID:         "asp-1",
		Amount:        1200,
	}

	require.NoError(t, repo.SaveOrUpdate(record))

	require.Len(t, state.execs, 1)
	executed := state.execs[0]
	assert.Contains(t, executed.sql, "INSERT INTO daily_actuals")
	assert.Contains(t, executed.sql, "ON CONFLICT (date, media_id, account_item_id, asp_id) DO UPDATE SET")
	assert.Contains(t, executed.sql, "amount = EXCLUDED.amount")
	assert.Equal(t, []driver.Value{"2025-10-03", "media-1", "item-1", "asp-1", float64(1200)}, executed.args)
}

func TestDailyActualSaveOrUpdateSecondAmountWins(t *testing.T) {
	state := &stubState{}
	repo := NewDailyActualRepository(newStubConnection(t, state))

	record := &domain.RevenueRecord{
		Date:          time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC),
		MediaID:       "media-1",
		AccountItemID: "item-1",
		AspID:         "asp-1",
		Amount:        1200,
	}
	require.NoError(t, repo.SaveOrUpdate(record))

	record.Amount = 980
	require.NoError(t, repo.SaveOrUpdate(record))

	// Both statements target the same natural key, so the conflict clause
	// leaves a single row holding the later amount.
	require.Len(t, state.execs, 2)
	assert.Equal(t, state.execs[0].args[:4], state.execs[1].args[:4])
	assert.Contains(t, state.execs[1].sql, "amount = EXCLUDED.amount")
	assert.Equal(t, float64(980), state.execs[1].args[4])
}

func TestDailyActualGetByKeyScansDateColumn(t *testing.T) {
	date := time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.November, 1, 9, 0, 0, 0, time.UTC)

	state := &stubState{
		columns: revenueColumns,
		rows: [][]driver.Value{
			{date, "media-1", "item-1", "asp-1", 1234.5, now, now},
		},
	}
	repo := NewDailyActualRepository(newStubConnection(t, state))

	record, err := repo.GetByKey(date, "media-1", "item-1", "asp-1")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.True(t, record.Date.Equal(date))
	assert.Equal(t, "asp-1", record.AspID)
	assert.Equal(t, 1234.5, record.Amount)
}

func TestDailyActualGetByKeyMissingRowReturnsNil(t *testing.T) {
	state := &stubState{columns: revenueColumns}
	repo := NewDailyActualRepository(newStubConnection(t, state))

	record, err := repo.GetByKey(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), "media-1", "item-1", "asp-1")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestDailyActualGetByMonthScansDateColumns(t *testing.T) {
	first := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.November, 1, 9, 0, 0, 0, time.UTC)

	state := &stubState{
		columns: revenueColumns,
		rows: [][]driver.Value{
			{first, "media-1", "item-1", "asp-1", 100.0, now, now},
			{second, "media-1", "item-1", "asp-1", 250.0, now, now},
		},
	}
	repo := NewDailyActualRepository(newStubConnection(t, state))

	records, err := repo.GetByMonth("asp-1", "media-1", "item-1", domain.Period{Year: 2025, Month: time.October})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, records[0].Date.Equal(first))
	assert.True(t, records[1].Date.Equal(second))
	assert.Equal(t, 250.0, records[1].Amount)

	require.Len(t, state.queries, 1)
	assert.Contains(t, state.queries[0].sql, "da.date >= ")
	assert.Contains(t, state.queries[0].sql, "da.date <= ")
	assert.Contains(t, state.queries[0].args, driver.Value("2025-10-01"))
	assert.Contains(t, state.queries[0].args, driver.Value("2025-10-31"))
}

func TestDailyActualDeleteByMonthScopesToPeriod(t *testing.T) {
	state := &stubState{}
	repo := NewDailyActualRepository(newStubConnection(t, state))

	deleted, err := repo.DeleteByMonth("asp-1", "media-1", "item-1", domain.Period{Year: 2025, Month: time.October})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	require.Len(t, state.execs, 1)
	executed := state.execs[0]
	assert.Contains(t, executed.sql, "DELETE FROM daily_actuals")
	assert.Contains(t, executed.args, driver.Value("2025-10-01"))
	assert.Contains(t, executed.args, driver.Value("2025-10-31"))
}
