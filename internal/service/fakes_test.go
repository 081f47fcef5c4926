package service

import (
	"context"
	"sort"
	"strings"

	"donatehub/internal/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeCampaignRepo struct {
	campaigns  map[string]*domain.Campaign
	lastFilter domain.CampaignFilter
}

func newFakeCampaignRepo(campaigns ...*domain.Campaign) *fakeCampaignRepo {
	repo := &fakeCampaignRepo{campaigns: make(map[string]*domain.Campaign)}
	for _, c := range campaigns {
		repo.campaigns[c.ID] = c
	}
	return repo
}

func (r *fakeCampaignRepo) Create(_ context.Context, campaign *domain.Campaign) error {
	copied := *campaign
	r.campaigns[campaign.ID] = &copied
	return nil
}

func (r *fakeCampaignRepo) GetByID(_ context.Context, id string) (*domain.Campaign, error) {
	if c, ok := r.campaigns[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeCampaignRepo) List(_ context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	r.lastFilter = filter
	var out []domain.Campaign
	for _, c := range r.campaigns {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(c.Title), needle) &&
				!strings.Contains(strings.ToLower(c.Description), needle) {
				continue
			}
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCampaignRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Campaign, error) {
	var out []domain.Campaign
	for _, c := range r.campaigns {
		if c.OwnerID == ownerID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCampaignRepo) Update(_ context.Context, campaign *domain.Campaign) error {
	if _, ok := r.campaigns[campaign.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *campaign
	r.campaigns[campaign.ID] = &copied
	return nil
}

func (r *fakeCampaignRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.campaigns[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.campaigns, id)
	return nil
}

// fakeDonationRepo mimics the transactional Record contract: when
// recordErr is set, neither the donation nor the increment is applied.
type fakeDonationRepo struct {
	campaigns *fakeCampaignRepo
	users     *fakeUserRepo
	donations []domain.Donation
	recordErr error
}

func newFakeDonationRepo(campaigns *fakeCampaignRepo, users *fakeUserRepo) *fakeDonationRepo {
	return &fakeDonationRepo{campaigns: campaigns, users: users}
}

func (r *fakeDonationRepo) Record(_ context.Context, donation *domain.Donation) (int64, error) {
	if r.recordErr != nil {
		return 0, r.recordErr
	}
	campaign, ok := r.campaigns.campaigns[donation.CampaignID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	r.donations = append(r.donations, *donation)
	campaign.RaisedAmount += donation.Amount
	return campaign.RaisedAmount, nil
}

func (r *fakeDonationRepo) detail(d domain.Donation) domain.DonationDetail {
	detail := domain.DonationDetail{Donation: d}
	if c, ok := r.campaigns.campaigns[d.CampaignID]; ok {
		detail.Campaign = c.Summary()
	}
	if u, ok := r.users.users[d.SupporterID]; ok {
		detail.Supporter = u.Summary()
	}
	return detail
}

func (r *fakeDonationRepo) ListBySupporter(_ context.Context, supporterID string) ([]domain.DonationDetail, error) {
	var out []domain.DonationDetail
	for _, d := range r.donations {
		if d.SupporterID == supporterID {
			out = append(out, r.detail(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeDonationRepo) ListByCampaign(_ context.Context, campaignID string) ([]domain.DonationDetail, error) {
	var out []domain.DonationDetail
	for _, d := range r.donations {
		if d.CampaignID == campaignID {
			out = append(out, r.detail(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeDonationRepo) StatsByOwner(_ context.Context, ownerID string, recentLimit int) (*domain.DonationStats, error) {
	stats := &domain.DonationStats{ByCampaign: make(map[string]domain.CampaignGroupStat)}
	var details []domain.DonationDetail
	for _, d := range r.donations {
		campaign, ok := r.campaigns.campaigns[d.CampaignID]
		if !ok || campaign.OwnerID != ownerID {
			continue
		}
		stats.TotalDonations++
		stats.TotalAmount += d.Amount
		group := stats.ByCampaign[campaign.Title]
		group.Count++
		group.Total += d.Amount
		stats.ByCampaign[campaign.Title] = group
		details = append(details, r.detail(d))
	}
	sort.Slice(details, func(i, j int) bool { return details[i].CreatedAt.After(details[j].CreatedAt) })
	if len(details) > recentLimit {
		details = details[:recentLimit]
	}
	stats.Recent = details
	return stats, nil
}
