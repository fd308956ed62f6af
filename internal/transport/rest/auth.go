package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/precinct-records/internal/domain"
	"github.com/heartmarshall/precinct-records/internal/service/session"
	"github.com/heartmarshall/precinct-records/internal/transport/middleware"
)

//go:generate moq -out auth_service_mock_test.go -pkg rest . authService

type authService interface {
	SignUp(ctx context.Context, in session.SignUpInput) (*domain.AuthSession, error)
	SignIn(ctx context.Context, in session.SignInInput) (*domain.AuthSession, error)
	SignOut(ctx context.Context, st session.State) error
}

// AuthHandler serves sign-up, sign-in and sign-out.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type signUpRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FullName    string  `json:"fullName"`
	BadgeNumber *string `json:"badgeNumber"`
	Department  *string `json:"department"`
	Role        string  `json:"role"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken  string           `json:"accessToken,omitempty"`
	RefreshToken string           `json:"refreshToken,omitempty"`
	ExpiresAt    *time.Time       `json:"expiresAt,omitempty"`
	User         identityResponse `json:"user"`
}

func toAuthResponse(s *domain.AuthSession) authResponse {
	resp := authResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		User:         identityResponse{ID: s.Identity.ID, Email: s.Identity.Email},
	}
	if !s.ExpiresAt.IsZero() {
		resp.ExpiresAt = &s.ExpiresAt
	}
	return resp
}

// SignUp handles POST /auth/signup. When the backend requires email
// confirmation no tokens are returned.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.SignUp(r.Context(), session.SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		BadgeNumber: req.BadgeNumber,
		Department:  req.Department,
		Role:        req.Role,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if result.AccessToken != "" {
		setSessionCookie(w, r, result)
	}
	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// SignIn handles POST /auth/signin. The access token is returned in the
// body and also set as a cookie for browser clients.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.SignIn(r.Context(), session.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	setSessionCookie(w, r, result)
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// SignOut handles POST /auth/signout.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SignOut(r.Context(), middleware.StateFromCtx(r.Context())); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, s *domain.AuthSession) {
	c := &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    s.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
	if !s.ExpiresAt.IsZero() {
		c.Expires = s.ExpiresAt
	}
	http.SetCookie(w, c)
}
