package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"donatehub/internal/domain"
)

// Ledger records donations. Creating the donation fact and incrementing
// the campaign's raised amount happen in one repository transaction, so
// readers never observe one effect without the other.
type Ledger struct {
	campaigns domain.CampaignRepository
	donations domain.DonationRepository
	users     domain.UserRepository
	log       zerolog.Logger
}

func NewLedger(campaigns domain.CampaignRepository, donations domain.DonationRepository, users domain.UserRepository, log zerolog.Logger) *Ledger {
	return &Ledger{campaigns: campaigns, donations: donations, users: users, log: log}
}

// RecordDonation validates the request, then writes the donation and the
// raised-amount increment atomically. All checks run before any write.
// The returned detail carries the campaign summary with the raised amount
// as observed after the increment.
func (l *Ledger) RecordDonation(ctx context.Context, actor *domain.User, campaignID string, amount int64) (*domain.DonationDetail, error) {
	if err := domain.CanDonate(actor); err != nil {
		return nil, err
	}
	if err := domain.ValidateDonationInput(amount).OrNil(); err != nil {
		return nil, err
	}

	campaign, err := l.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.IsActive() {
		return nil, domain.ErrCampaignClosed
	}

	donation := &domain.Donation{
		ID:          uuid.NewString(),
		SupporterID: actor.ID,
		CampaignID:  campaign.ID,
		Amount:      amount,
		CreatedAt:   time.Now().UTC(),
	}
	raisedAfter, err := l.donations.Record(ctx, donation)
	if err != nil {
		return nil, fmt.Errorf("record donation: %w", err)
	}

	l.log.Info().
		Str("donation_id", donation.ID).
		Str("campaign_id", campaign.ID).
		Int64("amount", amount).
		Int64("raised_after", raisedAfter).
		Msg("donation recorded")

	supporter, err := l.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("load supporter: %w", err)
	}

	summary := campaign.Summary()
	summary.RaisedAmount = raisedAfter
	return &domain.DonationDetail{
		Donation:  *donation,
		Campaign:  summary,
		Supporter: supporter.Summary(),
	}, nil
}
