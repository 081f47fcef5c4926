package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"donatehub/internal/domain"
	"donatehub/internal/middleware"
	"donatehub/internal/service"
)

type createCampaignRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=1000"`
	Category    string `json:"category" validate:"required,oneof=health education disaster other"`
	GoalAmount  int64  `json:"goalAmount" validate:"required,gt=0"`
}

type updateCampaignRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Category    *string `json:"category" validate:"omitempty,oneof=health education disaster other"`
	GoalAmount  *int64  `json:"goalAmount" validate:"omitempty,gt=0"`
	Status      *string `json:"status" validate:"omitempty,oneof=active closed"`
}

// CampaignsList is public: filters by category, free-text search and
// status (active when unspecified), newest first.
func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.CampaignFilter{
		Search: q.Get("search"),
		Status: domain.CampaignStatus(q.Get("status")),
	}
	if category := q.Get("category"); category != "" && category != "all" {
		filter.Category = domain.CampaignCategory(category)
	}
	campaigns, err := a.Campaigns.List(r.Context(), filter)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.json(w, http.StatusOK, toCampaignDTOs(campaigns, middleware.LocaleFromContext(r.Context())))
}

func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	campaign, err := a.Campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.json(w, http.StatusOK, toCampaignDTO(campaign, middleware.LocaleFromContext(r.Context())))
}

func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	actor := a.currentActor(r)
	var req createCampaignRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	campaign, err := a.Campaigns.Create(r.Context(), actor, service.CampaignInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.CampaignCategory(req.Category),
		GoalAmount:  req.GoalAmount,
	})
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toCampaignDTO(campaign, middleware.LocaleFromContext(r.Context())))
}

func (a *App) CampaignsUpdate(w http.ResponseWriter, r *http.Request) {
	actor := a.currentActor(r)
	var req updateCampaignRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	patch := domain.CampaignPatch{
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
	}
	if req.Category != nil {
		category := domain.CampaignCategory(*req.Category)
		patch.Category = &category
	}
	if req.Status != nil {
		status := domain.CampaignStatus(*req.Status)
		patch.Status = &status
	}
	campaign, err := a.Campaigns.Update(r.Context(), actor, chi.URLParam(r, "id"), patch)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.json(w, http.StatusOK, toCampaignDTO(campaign, middleware.LocaleFromContext(r.Context())))
}

func (a *App) CampaignsDelete(w http.ResponseWriter, r *http.Request) {
	actor := a.currentActor(r)
	if err := a.Campaigns.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err)
		return
	}
	a.message(w, http.StatusOK, "campaign deleted")
}

// CampaignsByOwner lists every campaign of one organization, any status.
func (a *App) CampaignsByOwner(w http.ResponseWriter, r *http.Request) {
	campaigns, err := a.Campaigns.ListByOwner(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.json(w, http.StatusOK, toCampaignDTOs(campaigns, middleware.LocaleFromContext(r.Context())))
}
