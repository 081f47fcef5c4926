package handlers

import (
	"time"

	"donatehub/internal/domain"
	"donatehub/internal/i18n"
)

type userDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type campaignDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	GoalAmount    int64     `json:"goalAmount"`
	RaisedAmount  int64     `json:"raisedAmount"`
	Progress      float64   `json:"progress"`
	GoalDisplay   string    `json:"goalDisplay"`
	RaisedDisplay string    `json:"raisedDisplay"`
	OwnerID       string    `json:"ownerId"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toCampaignDTO(c *domain.Campaign, locale string) campaignDTO {
	return campaignDTO{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Category:      string(c.Category),
		GoalAmount:    c.GoalAmount,
		RaisedAmount:  c.RaisedAmount,
		Progress:      c.Progress(),
		GoalDisplay:   i18n.FormatAmount(locale, c.GoalAmount),
		RaisedDisplay: i18n.FormatAmount(locale, c.RaisedAmount),
		OwnerID:       c.OwnerID,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
	}
}

func toCampaignDTOs(campaigns []domain.Campaign, locale string) []campaignDTO {
	out := make([]campaignDTO, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, toCampaignDTO(&campaigns[i], locale))
	}
	return out
}

type campaignSummaryDTO struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	GoalAmount   int64  `json:"goalAmount"`
	RaisedAmount int64  `json:"raisedAmount"`
	OwnerID      string `json:"ownerId"`
}

type supporterDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type donationDTO struct {
	ID        string             `json:"id"`
	Amount    int64              `json:"amount"`
	CreatedAt time.Time          `json:"createdAt"`
	Campaign  campaignSummaryDTO `json:"campaign"`
	Supporter supporterDTO       `json:"supporter"`
}

func toDonationDTO(d *domain.DonationDetail) donationDTO {
	return donationDTO{
		ID:        d.ID,
		Amount:    d.Amount,
		CreatedAt: d.CreatedAt,
		Campaign: campaignSummaryDTO{
			ID:           d.Campaign.ID,
			Title:        d.Campaign.Title,
			Description:  d.Campaign.Description,
			GoalAmount:   d.Campaign.GoalAmount,
			RaisedAmount: d.Campaign.RaisedAmount,
			OwnerID:      d.Campaign.OwnerID,
		},
		Supporter: supporterDTO{
			ID:    d.Supporter.ID,
			Name:  d.Supporter.Name,
			Email: d.Supporter.Email,
		},
	}
}

func toDonationDTOs(details []domain.DonationDetail) []donationDTO {
	out := make([]donationDTO, 0, len(details))
	for i := range details {
		out = append(out, toDonationDTO(&details[i]))
	}
	return out
}

type groupStatDTO struct {
	Count int64 `json:"count"`
	Total int64 `json:"total"`
}

type statsDTO struct {
	TotalDonations  int64                   `json:"totalDonations"`
	TotalAmount     int64                   `json:"totalAmount"`
	AverageDonation float64                 `json:"averageDonation"`
	ByCampaign      map[string]groupStatDTO `json:"donationsByCampaign"`
	Recent          []donationDTO           `json:"recentDonations"`
}

func toStatsDTO(s *domain.DonationStats) statsDTO {
	byCampaign := make(map[string]groupStatDTO, len(s.ByCampaign))
	for title, group := range s.ByCampaign {
		byCampaign[title] = groupStatDTO{Count: group.Count, Total: group.Total}
	}
	return statsDTO{
		TotalDonations:  s.TotalDonations,
		TotalAmount:     s.TotalAmount,
		AverageDonation: s.AverageAmount,
		ByCampaign:      byCampaign,
		Recent:          toDonationDTOs(s.Recent),
	}
}
