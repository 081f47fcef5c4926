package domain

import "context"

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// CampaignRepository defines persistence for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *Campaign) error
	GetByID(ctx context.Context, id string) (*Campaign, error)
	List(ctx context.Context, filter CampaignFilter) ([]Campaign, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Campaign, error)
	Update(ctx context.Context, campaign *Campaign) error
	Delete(ctx context.Context, id string) error
}

// DonationRepository handles donation persistence and the joined views
// derived from it.
type DonationRepository interface {
	// Record inserts the donation and increments the campaign's raised
	// amount in a single transaction, returning the raised amount after
	// the increment. Neither effect may be observed without the other.
	Record(ctx context.Context, donation *Donation) (raisedAfter int64, err error)

	ListBySupporter(ctx context.Context, supporterID string) ([]DonationDetail, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]DonationDetail, error)

	// StatsByOwner aggregates donations across every campaign owned by
	// ownerID: totals, a per-campaign-title breakdown, and the most
	// recent donations limited to recentLimit.
	StatsByOwner(ctx context.Context, ownerID string, recentLimit int) (*DonationStats, error)
}
