package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/asp-revenue-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/asp-revenue-pipeline/internal/domain"
)

const (
	accountItemsTable = "account_items ai"
)

type AccountItemRepository interface {
	// GetAffiliateItem finds the affiliate-flagged leaf that books revenue
	// for the (media, asp) pair. Nil when onboarding has not created it yet.
	GetAffiliateItem(mediaID, aspID string) (*domain.AccountItem, error)
}

type accountItemRepository struct {
	conn *postgres.Connection
}

func NewAccountItemRepository(conn *postgres.Connection) AccountItemRepository {
	return &accountItemRepository{
		conn: conn,
	}
}

func (r *accountItemRepository) GetAffiliateItem(mediaID, aspID string) (*domain.AccountItem, error) {
	query, args, err := squirrel.
		Select("ai.id, ai.name, ai.parent_id, ai.media_id, ai.asp_id, ai.display_order, ai.is_affiliate").
		From(accountItemsTable).
		Where(squirrel.Eq{"ai.media_id": mediaID, "ai.asp_id": aspID, "ai.is_affiliate": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	item := &domain.AccountItem{}
	var parentID, aspIDCol sql.NullString
	err = row.Scan(&item.ID, &item.Name, &parentID, &item.MediaID, &aspIDCol, &item.DisplayOrder, &item.IsAffiliate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan account item: %w", err)
	}

	fillAccountItemNullables(item, parentID, aspIDCol)
	return item, nil
}

func fillAccountItemNullables(item *domain.AccountItem, parentID, aspID sql.NullString) {
	if parentID.Valid {
		v := parentID.String
		item.ParentID = &v
	}
	if aspID.Valid {
		v := aspID.String
		item.AspID = &v
	}
}
