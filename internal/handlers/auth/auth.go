package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/tipsters/internal/domain"
	"github.com/GlebRadaev/tipsters/internal/dto"
	"github.com/GlebRadaev/tipsters/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/tipsters/pkg/auth"
	"github.com/GlebRadaev/tipsters/pkg/utils"
	"github.com/GlebRadaev/tipsters/pkg/validate"
)

type Service interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Me(ctx context.Context, userID int) (*domain.Profile, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a bearer token with the user profile
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials or blocked account"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Email o password non valide")
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials), errors.Is(err, authservice.ErrUserBlocked):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	w.Header().Set("Authorization", "Bearer "+session.Token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Success: true,
		Token:   session.Token,
		User:    dto.NewUserDTO(session.Profile),
	})
}

// Me godoc
//
//	@Summary		Current user
//	@Description	Profile of the authenticated user with GP and advisor balances
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MeResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	profile, err := h.authService.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MeResponseDTO{Success: true, User: dto.NewUserDTO(*profile)})
}
