package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"donatehub/internal/domain"
)

// DonationRepositoryPG implements domain.DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepositoryPG {
	return &DonationRepositoryPG{pool: pool}
}

// Record inserts the donation fact and bumps the campaign's raised amount
// in one transaction. The increment runs against the stored value, never
// a value read earlier, so concurrent donations cannot lose updates.
func (r *DonationRepositoryPG) Record(ctx context.Context, donation *domain.Donation) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
INSERT INTO donations (id, supporter_id, campaign_id, amount, created_at)
VALUES ($1, $2, $3, $4, $5);
`, donation.ID, donation.SupporterID, donation.CampaignID, donation.Amount, donation.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert donation: %w", err)
	}

	var raisedAfter int64
	err = tx.QueryRow(ctx, `
UPDATE campaigns
SET raised_amount = raised_amount + $2
WHERE id = $1
RETURNING raised_amount;
`, donation.CampaignID, donation.Amount).Scan(&raisedAfter)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("increment raised amount: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return raisedAfter, nil
}

const donationDetailColumns = `
d.id, d.supporter_id, d.campaign_id, d.amount, d.created_at,
COALESCE(c.id, ''), COALESCE(c.title, ''), COALESCE(c.description, ''),
COALESCE(c.goal_amount, 0), COALESCE(c.raised_amount, 0), COALESCE(c.owner_id, ''),
COALESCE(u.id, ''), COALESCE(u.name, ''), COALESCE(u.email, '')`

// ListBySupporter returns the supporter's donations joined with the
// current campaign fields, newest first. Campaigns deleted after the
// donation leave empty summary fields; the fact itself is retained.
func (r *DonationRepositoryPG) ListBySupporter(ctx context.Context, supporterID string) ([]domain.DonationDetail, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+donationDetailColumns+`
FROM donations d
LEFT JOIN campaigns c ON c.id = d.campaign_id
LEFT JOIN users u ON u.id = d.supporter_id
WHERE d.supporter_id = $1
ORDER BY d.created_at DESC;
`, supporterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDetails(rows)
}

// ListByCampaign returns the campaign's donations joined with supporter
// identity, newest first.
func (r *DonationRepositoryPG) ListByCampaign(ctx context.Context, campaignID string) ([]domain.DonationDetail, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+donationDetailColumns+`
FROM donations d
LEFT JOIN campaigns c ON c.id = d.campaign_id
LEFT JOIN users u ON u.id = d.supporter_id
WHERE d.campaign_id = $1
ORDER BY d.created_at DESC;
`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDetails(rows)
}

// StatsByOwner aggregates donations over the owner's campaigns: totals,
// a per-campaign-title breakdown, and the most recent donations. The
// average is left for the caller to derive.
func (r *DonationRepositoryPG) StatsByOwner(ctx context.Context, ownerID string, recentLimit int) (*domain.DonationStats, error) {
	stats := &domain.DonationStats{ByCampaign: make(map[string]domain.CampaignGroupStat)}

	err := r.pool.QueryRow(ctx, `
SELECT COUNT(*), COALESCE(SUM(d.amount), 0)
FROM donations d
JOIN campaigns c ON c.id = d.campaign_id
WHERE c.owner_id = $1;
`, ownerID).Scan(&stats.TotalDonations, &stats.TotalAmount)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
SELECT c.title, COUNT(*), COALESCE(SUM(d.amount), 0)
FROM donations d
JOIN campaigns c ON c.id = d.campaign_id
WHERE c.owner_id = $1
GROUP BY c.title;
`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var title string
		var group domain.CampaignGroupStat
		if err := rows.Scan(&title, &group.Count, &group.Total); err != nil {
			return nil, err
		}
		stats.ByCampaign[title] = group
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recent, err := r.pool.Query(ctx, `
SELECT `+donationDetailColumns+`
FROM donations d
JOIN campaigns c ON c.id = d.campaign_id
LEFT JOIN users u ON u.id = d.supporter_id
WHERE c.owner_id = $1
ORDER BY d.created_at DESC
LIMIT $2;
`, ownerID, recentLimit)
	if err != nil {
		return nil, err
	}
	defer recent.Close()
	stats.Recent, err = collectDetails(recent)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func collectDetails(rows pgx.Rows) ([]domain.DonationDetail, error) {
	var items []domain.DonationDetail
	for rows.Next() {
		var d domain.DonationDetail
		if err := rows.Scan(
			&d.ID,
			&d.SupporterID,
			&d.CampaignID,
			&d.Amount,
			&d.CreatedAt,
			&d.Campaign.ID,
			&d.Campaign.Title,
			&d.Campaign.Description,
			&d.Campaign.GoalAmount,
			&d.Campaign.RaisedAmount,
			&d.Campaign.OwnerID,
			&d.Supporter.ID,
			&d.Supporter.Name,
			&d.Supporter.Email,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
