package handlers

import (
	"net/http"

	"donatehub/internal/domain"
	"donatehub/internal/service"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=organization supporter"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	user, token, err := a.Identity.Register(r.Context(), service.RegistrationInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.UserRole(req.Role),
	})
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.json(w, http.StatusCreated, authResponse{Token: token, User: toUserDTO(user)})
}

func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	user, token, err := a.Identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.json(w, http.StatusOK, authResponse{Token: token, User: toUserDTO(user)})
}

func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	actor := a.currentActor(r)
	if actor == nil {
		a.writeError(w, domain.ErrUnauthenticated)
		return
	}
	user, err := a.Identity.Profile(r.Context(), actor.ID)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.json(w, http.StatusOK, toUserDTO(user))
}
