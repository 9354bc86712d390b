package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

const (
	// Monthly figures live in "actuals"; rows are always dated the last
	// calendar day of their month.
	monthlyActualsTable = "actuals ma"
)

type MonthlyActualRepository interface {
	// SaveOrUpdate upserts on (date, media_id, account_item_id, asp_id).
	SaveOrUpdate(record *domain.RevenueRecord) error
	GetByPeriod(aspID, mediaID, accountItemID string, period domain.Period) (*domain.RevenueRecord, error)
	DeleteByPeriod(aspID, mediaID, accountItemID string, period domain.Period) (int64, error)
}

type monthlyActualRepository struct {
	conn *postgres.Connection
}

func NewMonthlyActualRepository(conn *postgres.Connection) MonthlyActualRepository {
	return &monthlyActualRepository{
		conn: conn,
	}
}

func (r *monthlyActualRepository) SaveOrUpdate(record *domain.RevenueRecord) error {
	query := squirrel.StatementBuilder.
		Insert("actuals").
		Columns("date", "media_id", "account_item_id", "asp_id", "amount").
		Values(
			record.Date.Format("2006-01-02"),
			record.MediaID,
			record.AccountItemID,
			record.AspID,
			record.Amount,
		).
		Suffix(`
			ON CONFLICT (date, media_id, account_item_id, asp_id) DO UPDATE SET
				amount = EXCLUDED.amount,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *monthlyActualRepository) GetByPeriod(aspID, mediaID, accountItemID string, period domain.Period) (*domain.RevenueRecord, error) {
	query, args, err := squirrel.
		Select("ma.date, ma.media_id, ma.account_item_id, ma.asp_id, ma.amount, ma.created_at, ma.updated_at").
		From(monthlyActualsTable).
		Where(squirrel.Eq{
			"ma.asp_id":          aspID,
			"ma.media_id":        mediaID,
			"ma.account_item_id": accountItemID,
			"ma.date":            period.LastDay().Format("2006-01-02"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	record, err := scanRevenueRecord(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan monthly actual: %w", err)
	}

	return record, nil
}

// DeleteByPeriod supports correction tooling, e.g. re-dating rows written
// with a wrong month date by an earlier normalization bug.
func (r *monthlyActualRepository) DeleteByPeriod(aspID, mediaID, accountItemID string, period domain.Period) (int64, error) {
	query, args, err := squirrel.
		Delete("actuals").
		Where(squirrel.Eq{
			"asp_id":          aspID,
			"media_id":        mediaID,
			"account_item_id": accountItemID,
		}).
		Where(squirrel.GtOrEq{"date": period.FirstDay().Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": period.LastDay().Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rowsAffected, nil
}
