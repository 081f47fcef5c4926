package service

import (
	"context"
	"fmt"
	"math"

	"donatehub/internal/domain"
)

const recentDonationsLimit = 10

// ReportService derives donation history and aggregate statistics.
type ReportService struct {
	campaigns domain.CampaignRepository
	donations domain.DonationRepository
}

func NewReportService(campaigns domain.CampaignRepository, donations domain.DonationRepository) *ReportService {
	return &ReportService{campaigns: campaigns, donations: donations}
}

// DonationHistory returns the actor's own donations, newest first, each
// joined with the current campaign fields.
func (s *ReportService) DonationHistory(ctx context.Context, actor *domain.User) ([]domain.DonationDetail, error) {
	if err := domain.CanDonate(actor); err != nil {
		return nil, err
	}
	return s.donations.ListBySupporter(ctx, actor.ID)
}

// CampaignDonations returns every donation for the campaign, newest
// first, for the owning organization only.
func (s *ReportService) CampaignDonations(ctx context.Context, actor *domain.User, campaignID string) ([]domain.DonationDetail, error) {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanViewCampaignDonations(actor, campaign); err != nil {
		return nil, err
	}
	return s.donations.ListByCampaign(ctx, campaignID)
}

// DonationStats aggregates donations across all of the actor's
// campaigns. The average is rounded to two decimal places and zero when
// there are no donations.
func (s *ReportService) DonationStats(ctx context.Context, actor *domain.User) (*domain.DonationStats, error) {
	if err := domain.CanCreateCampaign(actor); err != nil {
		return nil, err
	}
	stats, err := s.donations.StatsByOwner(ctx, actor.ID, recentDonationsLimit)
	if err != nil {
		return nil, fmt.Errorf("load donation stats: %w", err)
	}
	if stats.TotalDonations > 0 {
		avg := float64(stats.TotalAmount) / float64(stats.TotalDonations)
		stats.AverageAmount = math.Round(avg*100) / 100
	}
	return stats, nil
}
