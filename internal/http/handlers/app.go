package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"donatehub/internal/domain"
	"donatehub/internal/middleware"
	"donatehub/internal/service"
)

// App bundles the services the HTTP handlers depend on.
type App struct {
	Identity  *service.IdentityService
	Campaigns *service.CampaignService
	Ledger    *service.Ledger
	Reports   *service.ReportService
	Logger    zerolog.Logger

	validate *validator.Validate
}

func NewApp(identity *service.IdentityService, campaigns *service.CampaignService, ledger *service.Ledger, reports *service.ReportService, logger zerolog.Logger) *App {
	return &App{
		Identity:  identity,
		Campaigns: campaigns,
		Ledger:    ledger,
		Reports:   reports,
		Logger:    logger,
		validate:  validator.New(),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) message(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"message": msg})
}

// writeError maps domain sentinels to HTTP statuses. Validation failures
// carry the structured violations list alongside the message.
func (a *App) writeError(w http.ResponseWriter, err error) {
	var violations domain.Violations
	switch {
	case errors.As(err, &violations):
		a.json(w, http.StatusBadRequest, map[string]any{
			"message":    "validation failed",
			"violations": violations,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		a.message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.message(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		a.message(w, http.StatusForbidden, "access denied")
	case errors.Is(err, domain.ErrUnauthenticated):
		a.message(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrCampaignClosed):
		a.message(w, http.StatusConflict, "campaign is not accepting donations")
	case errors.Is(err, domain.ErrEmailTaken):
		a.message(w, http.StatusConflict, "email already registered")
	default:
		a.Logger.Error().Err(err).Msg("request failed")
		a.message(w, http.StatusInternalServerError, "internal error")
	}
}

// decode parses the JSON body and runs the struct-tag validation,
// returning structured violations on failure.
func (a *App) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.Violations{{Field: "body", Message: "invalid JSON payload"}}
	}
	if err := a.validate.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			violations := make(domain.Violations, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				violations = append(violations, domain.Violation{
					Field:   fe.Field(),
					Message: "failed on " + fe.Tag(),
				})
			}
			return violations
		}
		return domain.Violations{{Field: "body", Message: "invalid payload"}}
	}
	return nil
}

// currentActor builds the acting identity from the verified token claims.
// The role claim is trustworthy because roles are immutable after
// registration.
func (a *App) currentActor(r *http.Request) *domain.User {
	id := middleware.IdentityFromContext(r.Context())
	if id == nil {
		return nil
	}
	return &domain.User{
		ID:    id.UserID,
		Email: id.Email,
		Role:  domain.UserRole(id.Role),
	}
}
