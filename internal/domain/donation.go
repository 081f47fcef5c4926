package domain

import "time"

// Donation is an immutable contribution fact. Once recorded it is never
// edited or deleted; deleting a campaign leaves its donations in place so
// supporter history survives.
type Donation struct {
	ID          string
	SupporterID string
	CampaignID  string
	Amount      int64
	CreatedAt   time.Time
}

// DonationDetail is a donation joined with the current campaign summary
// and the supporter identity, as returned by the ledger and history views.
type DonationDetail struct {
	Donation
	Campaign  CampaignSummary
	Supporter UserSummary
}

// CampaignGroupStat aggregates donations per campaign title.
type CampaignGroupStat struct {
	Count int64
	Total int64
}

// DonationStats aggregates all donations across an organization's
// campaigns. AverageAmount is rounded to two decimal places and zero when
// there are no donations.
type DonationStats struct {
	TotalDonations int64
	TotalAmount    int64
	AverageAmount  float64
	ByCampaign     map[string]CampaignGroupStat
	Recent         []DonationDetail
}
