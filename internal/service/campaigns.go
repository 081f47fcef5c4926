package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"donatehub/internal/domain"
)

// CampaignInput carries the writable fields for campaign creation.
type CampaignInput struct {
	Title       string
	Description string
	Category    domain.CampaignCategory
	GoalAmount  int64
}

// CampaignService implements campaign management on top of the campaign
// repository. Authorization decisions are delegated to the domain policy.
type CampaignService struct {
	campaigns domain.CampaignRepository
}

func NewCampaignService(campaigns domain.CampaignRepository) *CampaignService {
	return &CampaignService{campaigns: campaigns}
}

// Create validates the input and persists a new active campaign owned by
// the actor with a zero raised amount.
func (s *CampaignService) Create(ctx context.Context, actor *domain.User, input CampaignInput) (*domain.Campaign, error) {
	if err := domain.CanCreateCampaign(actor); err != nil {
		return nil, err
	}
	if err := domain.ValidateCampaignInput(input.Title, input.Description, input.Category, input.GoalAmount).OrNil(); err != nil {
		return nil, err
	}
	campaign := &domain.Campaign{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		GoalAmount:   input.GoalAmount,
		RaisedAmount: 0,
		OwnerID:      actor.ID,
		Status:       domain.CampaignActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return campaign, nil
}

// Get returns a single campaign by id.
func (s *CampaignService) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.campaigns.GetByID(ctx, id)
}

// List returns campaigns matching the filter, newest first. An empty
// status filters to active campaigns.
func (s *CampaignService) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	if filter.Status == "" {
		filter.Status = domain.CampaignActive
	}
	return s.campaigns.List(ctx, filter)
}

// ListByOwner returns every campaign owned by the given organization,
// newest first, regardless of status.
func (s *CampaignService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	return s.campaigns.ListByOwner(ctx, ownerID)
}

// Update applies the patch to the campaign after the ownership check.
// Present patch fields overwrite stored values unconditionally; lowering
// the goal below the raised amount is allowed.
func (s *CampaignService) Update(ctx context.Context, actor *domain.User, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CanManageCampaign(actor, campaign); err != nil {
		return nil, err
	}
	if patch.Title != nil {
		campaign.Title = *patch.Title
	}
	if patch.Description != nil {
		campaign.Description = *patch.Description
	}
	if patch.Category != nil {
		campaign.Category = *patch.Category
	}
	if patch.GoalAmount != nil {
		campaign.GoalAmount = *patch.GoalAmount
	}
	if patch.Status != nil {
		campaign.Status = *patch.Status
	}
	if err := domain.ValidateCampaignInput(campaign.Title, campaign.Description, campaign.Category, campaign.GoalAmount).OrNil(); err != nil {
		return nil, err
	}
	if !domain.ValidStatus(campaign.Status) {
		return nil, domain.Violations{{Field: "status", Message: "status must be active or closed"}}
	}
	if err := s.campaigns.Update(ctx, campaign); err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return campaign, nil
}

// Delete removes the campaign after the ownership check. Donations that
// reference the campaign are retained.
func (s *CampaignService) Delete(ctx context.Context, actor *domain.User, id string) error {
	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.CanManageCampaign(actor, campaign); err != nil {
		return err
	}
	if err := s.campaigns.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	return nil
}
