package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"donatehub/internal/domain"
)

// CampaignRepositoryPG implements domain.CampaignRepository using PostgreSQL.
type CampaignRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository creates a new campaign repo.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepositoryPG {
	return &CampaignRepositoryPG{pool: pool}
}

const campaignColumns = `id, title, description, category, goal_amount, raised_amount, owner_id, status, created_at`

// Create inserts a new campaign record.
func (r *CampaignRepositoryPG) Create(ctx context.Context, campaign *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO campaigns (id, title, description, category, goal_amount, raised_amount, owner_id, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`,
		campaign.ID,
		campaign.Title,
		campaign.Description,
		campaign.Category,
		campaign.GoalAmount,
		campaign.RaisedAmount,
		campaign.OwnerID,
		campaign.Status,
		campaign.CreatedAt,
	)
	return err
}

// GetByID fetches a campaign by id.
func (r *CampaignRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1;`, id)
	return scanCampaign(row)
}

// List returns campaigns matching the filter, newest first. Empty filter
// fields are not applied; the search matches title or description
// case-insensitively.
func (r *CampaignRepositoryPG) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+campaignColumns+`
FROM campaigns
WHERE ($1::text = '' OR category = $1)
  AND ($2::text = '' OR status = $2)
  AND ($3::text = '' OR title ILIKE '%' || $3 || '%' OR description ILIKE '%' || $3 || '%')
ORDER BY created_at DESC;
`, string(filter.Category), string(filter.Status), filter.Search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCampaigns(rows)
}

// ListByOwner returns every campaign owned by ownerID, newest first.
func (r *CampaignRepositoryPG) ListByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+campaignColumns+`
FROM campaigns
WHERE owner_id = $1
ORDER BY created_at DESC;
`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCampaigns(rows)
}

// Update overwrites the mutable campaign fields. The raised amount is
// deliberately excluded; only the ledger's transactional increment may
// change it.
func (r *CampaignRepositoryPG) Update(ctx context.Context, campaign *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE campaigns
SET title = $2, description = $3, category = $4, goal_amount = $5, status = $6
WHERE id = $1;
`,
		campaign.ID,
		campaign.Title,
		campaign.Description,
		campaign.Category,
		campaign.GoalAmount,
		campaign.Status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the campaign record. Donations referencing it are kept.
func (r *CampaignRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	if err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Category,
		&c.GoalAmount,
		&c.RaisedAmount,
		&c.OwnerID,
		&c.Status,
		&c.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func collectCampaigns(rows pgx.Rows) ([]domain.Campaign, error) {
	var items []domain.Campaign
	for rows.Next() {
		var c domain.Campaign
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.Category,
			&c.GoalAmount,
			&c.RaisedAmount,
			&c.OwnerID,
			&c.Status,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
