package domain

// Media is a managed publishing property. It owns account items and is the
// scoping dimension for all revenue.
type Media struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// AccountItem is a ledger line item, tree-structured two levels deep.
// Affiliate-flagged leaves carry the owning ASP and are written exclusively
// by the ingestion pipeline; everything else is human-edited.
type AccountItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ParentID     *string `json:"parent_id"`
	MediaID      string  `json:"media_id"`
	AspID        *string `json:"asp_id"`
	DisplayOrder int     `json:"display_order"`
	IsAffiliate  bool    `json:"is_affiliate"`
}
