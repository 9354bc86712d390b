package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

const (
	aspCredentialsTable = "asp_credentials ac"
)

type AspCredentialRepository interface {
	// Get returns the secret references for an (asp, media) pair, or nil
	// when the pair is not onboarded. Unique on (asp_id, media_id).
	Get(aspID, mediaID string) (*domain.AspCredential, error)
}

type aspCredentialRepository struct {
	conn *postgres.Connection
}

func NewAspCredentialRepository(conn *postgres.Connection) AspCredentialRepository {
	return &aspCredentialRepository{
		conn: conn,
	}
}

func (r *aspCredentialRepository) Get(aspID, mediaID string) (*domain.AspCredential, error) {
	query, args, err := squirrel.
		Select("ac.asp_id, ac.media_id, ac.username_secret_key, ac.password_secret_key").
		From(aspCredentialsTable).
		Where(squirrel.Eq{"ac.asp_id": aspID, "ac.media_id": mediaID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	cred := &domain.AspCredential{}
	err = r.conn.QueryRow(query, args...).Scan(
		&cred.AspID,
		&cred.MediaID,
		&cred.UsernameSecretKey,
		&cred.PasswordSecretKey,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan asp credential: %w", err)
	}

	return cred, nil
}
