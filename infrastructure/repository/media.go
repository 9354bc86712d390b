package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

const (
	mediaTable = "media m"
)

type MediaRepository interface {
	List() ([]*domain.Media, error)
	GetBySlug(slug string) (*domain.Media, error)
}

type mediaRepository struct {
	conn *postgres.Connection
}

func NewMediaRepository(conn *postgres.Connection) MediaRepository {
	return &mediaRepository{
		conn: conn,
	}
}

func (r *mediaRepository) List() ([]*domain.Media, error) {
	query, args, err := squirrel.
		Select("m.id, m.name, m.slug").
		From(mediaTable).
		OrderBy("m.name ASC").
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

	list := make([]*domain.Media, 0)
	for rows.Next() {
		media := &domain.Media{}
		if err := rows.Scan(&media.ID, &media.Name, &media.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan media: %w", err)
		}
		list = append(list, media)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed during row iteration: %w", err)
	}

	return list, nil
}

func (r *mediaRepository) GetBySlug(slug string) (*domain.Media, error) {
	query, args, err := squirrel.
		Select("m.id, m.name, m.slug").
		From(mediaTable).
		Where(squirrel.Eq{"m.slug": slug}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	media := &domain.Media{}
	err = r.conn.QueryRow(query, args...).Scan(&media.ID, &media.Name, &media.Slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan media: %w", err)
	}

	return media, nil
}
