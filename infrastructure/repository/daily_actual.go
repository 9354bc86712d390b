package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

const (
	dailyActualsTable = "daily_actuals da"
)

type DailyActualRepository interface {
	// SaveOrUpdate upserts on the natural key (date, media_id,
	// account_item_id, asp_id). Insert-or-update, never delete-then-insert:
	// repeated runs land on the same row with the latest amount.
	SaveOrUpdate(record *domain.RevenueRecord) error
	GetByKey(date time.Time, mediaID, accountItemID, aspID string) (*domain.RevenueRecord, error)
	// GetByMonth returns all daily rows for the (asp, media, account item)
	// tuple inside the given month, ordered by date.
	GetByMonth(aspID, mediaID, accountItemID string, period domain.Period) ([]*domain.RevenueRecord, error)
	DeleteByMonth(aspID, mediaID, accountItemID string, period domain.Period) (int64, error)
}

type dailyActualRepository struct {
	conn *postgres.Connection
}

func NewDailyActualRepository(conn *postgres.Connection) DailyActualRepository {
	return &dailyActualRepository{
		conn: conn,
	}
}

func (r *dailyActualRepository) SaveOrUpdate(record *domain.RevenueRecord) error {
	query := squirrel.StatementBuilder.
		Insert("daily_actuals").
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

func (r *dailyActualRepository) GetByKey(date time.Time, mediaID, accountItemID, aspID string) (*domain.RevenueRecord, error) {
	query, args, err := squirrel.
		Select("da.date, da.media_id, da.account_item_id, da.asp_id, da.amount, da.created_at, da.updated_at").
		From(dailyActualsTable).
		Where(squirrel.Eq{
			"da.date":            date.Format("2006-01-02"),
			"da.media_id":        mediaID,
			"da.account_item_id": accountItemID,
			"da.asp_id":          aspID,
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
		return nil, fmt.Errorf("failed to scan daily actual: %w", err)
	}

	return record, nil
}

func (r *dailyActualRepository) GetByMonth(aspID, mediaID, accountItemID string, period domain.Period) ([]*domain.RevenueRecord, error) {
	query, args, err := squirrel.
		Select("da.date, da.media_id, da.account_item_id, da.asp_id, da.amount, da.created_at, da.updated_at").
		From(dailyActualsTable).
		Where(squirrel.Eq{
			"da.asp_id":          aspID,
			"da.media_id":        mediaID,
			"da.account_item_id": accountItemID,
		}).
		Where(squirrel.GtOrEq{"da.date": period.FirstDay().Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"da.date": period.LastDay().Format("2006-01-02")}).
		OrderBy("da.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.RevenueRecord, 0)
	for rows.Next() {
		record, err := scanRevenueRecordRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily actual: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed during row iteration: %w", err)
	}

	return records, nil
}

// DeleteByMonth exists for explicit backfill/correction tooling only; the
// pipeline itself never deletes, it upserts.
func (r *dailyActualRepository) DeleteByMonth(aspID, mediaID, accountItemID string, period domain.Period) (int64, error) {
	query, args, err := squirrel.
		Delete("daily_actuals").
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

// The date column is a DATE, which lib/pq hands back as a time.Time, so it
// scans straight into the record.
func scanRevenueRecord(row *sql.Row) (*domain.RevenueRecord, error) {
	record := &domain.RevenueRecord{}

	err := row.Scan(
		&record.Date,
		&record.MediaID,
		&record.AccountItemID,
		&record.AspID,
		&record.Amount,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func scanRevenueRecordRows(rows *sql.Rows) (*domain.RevenueRecord, error) {
	record := &domain.RevenueRecord{}

	err := rows.Scan(
		&record.Date,
		&record.MediaID,
		&record.AccountItemID,
		&record.AspID,
		&record.Amount,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}
