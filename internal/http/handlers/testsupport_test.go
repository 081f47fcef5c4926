package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"donatehub/internal/domain"
	"donatehub/internal/middleware"
	"donatehub/internal/security"
	"donatehub/internal/service"
)

// In-memory repositories backing the full handler stack in tests.

type memUserRepo struct{ users map[string]*domain.User }

func (r *memUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memCampaignRepo struct{ campaigns map[string]*domain.Campaign }

func (r *memCampaignRepo) Create(_ context.Context, c *domain.Campaign) error {
	copied := *c
	r.campaigns[c.ID] = &copied
	return nil
}

func (r *memCampaignRepo) GetByID(_ context.Context, id string) (*domain.Campaign, error) {
	if c, ok := r.campaigns[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memCampaignRepo) List(_ context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
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

func (r *memCampaignRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Campaign, error) {
	var out []domain.Campaign
	for _, c := range r.campaigns {
		if c.OwnerID == ownerID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memCampaignRepo) Update(_ context.Context, c *domain.Campaign) error {
	stored, ok := r.campaigns[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	// Raised amount is ledger-owned; keep the stored value.
	copied := *c
	copied.RaisedAmount = stored.RaisedAmount
	r.campaigns[c.ID] = &copied
	return nil
}

func (r *memCampaignRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.campaigns[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.campaigns, id)
	return nil
}

type memDonationRepo struct {
	campaigns *memCampaignRepo
	users     *memUserRepo
	donations []domain.Donation
}

func (r *memDonationRepo) Record(_ context.Context, d *domain.Donation) (int64, error) {
	campaign, ok := r.campaigns.campaigns[d.CampaignID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	r.donations = append(r.donations, *d)
	campaign.RaisedAmount += d.Amount
	return campaign.RaisedAmount, nil
}

func (r *memDonationRepo) detail(d domain.Donation) domain.DonationDetail {
	out := domain.DonationDetail{Donation: d}
	if c, ok := r.campaigns.campaigns[d.CampaignID]; ok {
		out.Campaign = c.Summary()
	}
	if u, ok := r.users.users[d.SupporterID]; ok {
		out.Supporter = u.Summary()
	}
	return out
}

func (r *memDonationRepo) ListBySupporter(_ context.Context, supporterID string) ([]domain.DonationDetail, error) {
	var out []domain.DonationDetail
	for _, d := range r.donations {
		if d.SupporterID == supporterID {
			out = append(out, r.detail(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memDonationRepo) ListByCampaign(_ context.Context, campaignID string) ([]domain.DonationDetail, error) {
	var out []domain.DonationDetail
	for _, d := range r.donations {
		if d.CampaignID == campaignID {
			out = append(out, r.detail(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memDonationRepo) StatsByOwner(_ context.Context, ownerID string, recentLimit int) (*domain.DonationStats, error) {
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

// testEnv wires the real services and handlers over in-memory storage.
type testEnv struct {
	app       *App
	issuer    *security.TokenIssuer
	users     *memUserRepo
	campaigns *memCampaignRepo
	donations *memDonationRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := &memUserRepo{users: make(map[string]*domain.User)}
	campaigns := &memCampaignRepo{campaigns: make(map[string]*domain.Campaign)}
	donations := &memDonationRepo{campaigns: campaigns, users: users}

	issuer := security.NewTokenIssuer("test-secret", time.Hour)
	hasher := security.NewPasswordHasher(security.Argon2Params{
		Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32,
	})
	logger := zerolog.Nop()

	app := NewApp(
		service.NewIdentityService(users, hasher, issuer),
		service.NewCampaignService(campaigns),
		service.NewLedger(campaigns, donations, users, logger),
		service.NewReportService(campaigns, donations),
		logger,
	)
	return &testEnv{app: app, issuer: issuer, users: users, campaigns: campaigns, donations: donations}
}

// seedUser stores a user directly and returns the identity the auth
// middleware would inject for it.
func (e *testEnv) seedUser(t *testing.T, id, name, email string, role domain.UserRole) *security.Identity {
	t.Helper()
	e.users.users[id] = &domain.User{ID: id, Name: name, Email: email, Role: role, CreatedAt: time.Now().UTC()}
	return &security.Identity{UserID: id, Role: string(role), Email: email}
}

// do invokes a handler directly, mimicking what the router middleware
// would have injected: the verified identity and the chi URL params.
func (e *testEnv) do(t *testing.T, handler http.HandlerFunc, method, target string, identity *security.Identity, params map[string]string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	ctx := req.Context()
	if identity != nil {
		ctx = middleware.ContextWithIdentity(ctx, identity)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	rr := httptest.NewRecorder()
	handler(rr, req.WithContext(ctx))
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
