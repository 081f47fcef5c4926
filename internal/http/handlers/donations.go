package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type donationRequest struct {
	CampaignID string `json:"campaignId" validate:"required"`
	Amount     int64  `json:"amount" validate:"required,gt=0"`
}

func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	actor := a.currentActor(r)
	var req donationRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	detail, err := a.Ledger.RecordDonation(r.Context(), actor, req.CampaignID, req.Amount)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toDonationDTO(detail))
}

func (a *App) DonationsHistory(w http.ResponseWriter, r *http.Request) {
	history, err := a.Reports.DonationHistory(r.Context(), a.currentActor(r))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.json(w, http.StatusOK, toDonationDTOs(history))
}

func (a *App) DonationsByCampaign(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Reports.CampaignDonations(r.Context(), a.currentActor(r), chi.URLParam(r, "campaignId"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.json(w, http.StatusOK, toDonationDTOs(donations))
}

func (a *App) DonationsStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Reports.DonationStats(r.Context(), a.currentActor(r))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.json(w, http.StatusOK, toStatsDTO(stats))
}
