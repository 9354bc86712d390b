package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

const (
	aspsTable = "asps a"
)

type AspRepository interface {
	ListActive() ([]*domain.Asp, error)
	ListByNames(names []string) ([]*domain.Asp, error)
	UpdateScrapeStatus(id string, status domain.ScrapeStatus, at time.Time) error
}

type aspRepository struct {
	conn *postgres.Connection
}

func NewAspRepository(conn *postgres.Connection) AspRepository {
	return &aspRepository{
		conn: conn,
	}
}

func (r *aspRepository) ListActive() ([]*domain.Asp, error) {
	return r.list(squirrel.Eq{"a.is_active": true})
}

func (r *aspRepository) ListByNames(names []string) ([]*domain.Asp, error) {
	return r.list(squirrel.Eq{"a.is_active": true, "a.name": names})
}

func (r *aspRepository) list(pred interface{}) ([]*domain.Asp, error) {
	query, args, err := squirrel.
		Select("a.id, a.name, a.login_url, a.operation_prompt, a.is_active, a.bot_detected, a.last_scrape_at, a.last_scrape_status").
		From(aspsTable).
		Where(pred).
		OrderBy("a.name ASC").
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

	asps := make([]*domain.Asp, 0)
	for rows.Next() {
		asp, err := scanAsp(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asp: %w", err)
		}
		asps = append(asps, asp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed during row iteration: %w", err)
	}

	return asps, nil
}

func (r *aspRepository) UpdateScrapeStatus(id string, status domain.ScrapeStatus, at time.Time) error {
	query, args, err := squirrel.
		Update("asps").
		Set("last_scrape_at", at).
		Set("last_scrape_status", string(status)).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func scanAsp(rows *sql.Rows) (*domain.Asp, error) {
	asp := &domain.Asp{}
	var prompt sql.NullString
	var lastAt sql.NullTime
	var lastStatus sql.NullString

	err := rows.Scan(
		&asp.ID,
		&asp.Name,
		&asp.LoginURL,
		&prompt,
		&asp.IsActive,
		&asp.BotDetected,
		&lastAt,
		&lastStatus,
	)
	if err != nil {
		return nil, err
	}

	fillAspNullables(asp, prompt, lastAt, lastStatus)
	return asp, nil
}

func fillAspNullables(asp *domain.Asp, prompt sql.NullString, lastAt sql.NullTime, lastStatus sql.NullString) {
	if prompt.Valid {
		asp.OperationPrompt = prompt.String
	}
	if lastAt.Valid {
		t := lastAt.Time
		asp.LastScrapeAt = &t
	}
	if lastStatus.Valid {
		asp.LastScrapeStatus = domain.ScrapeStatus(lastStatus.String)
	} else {
		asp.LastScrapeStatus = domain.ScrapeStatusNever
	}
}
