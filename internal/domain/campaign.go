package domain

import "time"

// CampaignCategory enumerates supported campaign categories.
type CampaignCategory string

const (
	CategoryHealth    CampaignCategory = "health"
	CategoryEducation CampaignCategory = "education"
	CategoryDisaster  CampaignCategory = "disaster"
	CategoryOther     CampaignCategory = "other"
)

// ValidCategory reports whether the value is a known category.
func ValidCategory(c CampaignCategory) bool {
	switch c {
	case CategoryHealth, CategoryEducation, CategoryDisaster, CategoryOther:
		return true
	}
	return false
}

// CampaignStatus enumerates campaign lifecycle states.
type CampaignStatus string

const (
	CampaignActive CampaignStatus = "active"
	CampaignClosed CampaignStatus = "closed"
)

// ValidStatus reports whether the value is a known status.
func ValidStatus(s CampaignStatus) bool {
	return s == CampaignActive || s == CampaignClosed
}

// Campaign is a fundraising goal owned by an organization. RaisedAmount
// only ever grows through the funding ledger; lowering the goal below the
// raised amount is permitted and not reconciled server-side.
type Campaign struct {
	ID           string
	Title        string
	Description  string
	Category     CampaignCategory
	GoalAmount   int64
	RaisedAmount int64
	OwnerID      string
	Status       CampaignStatus
	CreatedAt    time.Time
}

// Progress returns the raised/goal percentage capped at 100. The stored
// raised amount itself is never clamped.
func (c Campaign) Progress() float64 {
	if c.GoalAmount <= 0 {
		return 0
	}
	p := float64(c.RaisedAmount) / float64(c.GoalAmount) * 100
	if p > 100 {
		return 100
	}
	return p
}

// IsActive reports whether the campaign accepts donations.
func (c Campaign) IsActive() bool {
	return c.Status == CampaignActive
}

// CampaignSummary carries the campaign fields joined into donation views.
type CampaignSummary struct {
	ID           string
	Title        string
	Description  string
	GoalAmount   int64
	RaisedAmount int64
	OwnerID      string
}

// Summary returns the projection of the campaign used in joined views.
func (c Campaign) Summary() CampaignSummary {
	return CampaignSummary{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		GoalAmount:   c.GoalAmount,
		RaisedAmount: c.RaisedAmount,
		OwnerID:      c.OwnerID,
	}
}

// CampaignFilter narrows campaign listings. Status defaults to active when
// left empty; Search matches title or description case-insensitively.
type CampaignFilter struct {
	Category CampaignCategory
	Search   string
	Status   CampaignStatus
}

// CampaignPatch carries optional replacement values for an update. A nil
// field leaves the stored value untouched; a present field overwrites it
// unconditionally.
type CampaignPatch struct {
	Title       *string
	Description *string
	Category    *CampaignCategory
	GoalAmount  *int64
	Status      *CampaignStatus
}
