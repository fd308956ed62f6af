package backend

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/precinct-records/internal/domain"
)

type signUpRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     signUpMetadata `json:"data"`
}

type signUpMetadata struct {
	FullName    string  `json:"full_name"`
	BadgeNumber *string `json:"badge_number,omitempty"`
	Department  *string `json:"department,omitempty"`
	Role        string  `json:"role"`
}

type passwordGrant struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type apiUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// sessionResponse is returned by token and signup endpoints. When email
// confirmation is on, signup returns a bare user (ID/Email at top level).
type sessionResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int      `json:"expires_in"`
	User         *apiUser `json:"user"`
	ID           string   `json:"id"`
	Email        string   `json:"email"`
}

func (s sessionResponse) toDomain() (*domain.AuthSession, error) {
	u := s.User
	if u == nil {
		u = &apiUser{ID: s.ID, Email: s.Email}
	}
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return nil, fmt.Errorf("backend: parse user id %q: %w", u.ID, err)
	}

	out := &domain.AuthSession{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		Identity:     domain.Identity{ID: id, Email: u.Email},
	}
	if s.ExpiresIn > 0 {
		out.ExpiresAt = time.Now().Add(time.Duration(s.ExpiresIn) * time.Second)
	}
	return out, nil
}

// SignUp registers a new identity with profile metadata. The returned
// session has an empty AccessToken when email confirmation is pending.
func (c *Client) SignUp(ctx context.Context, email, password string, meta domain.SignUpMetadata) (*domain.AuthSession, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/auth/v1/signup", signUpRequest{
		Email:    email,
		Password: password,
		Data: signUpMetadata{
			FullName:    meta.FullName,
			BadgeNumber: meta.BadgeNumber,
			Department:  meta.Department,
			Role:        string(meta.Role),
		},
	})
	if err != nil {
		return nil, err
	}

	var resp sessionResponse
	if err := c.do(req, "signup", &resp); err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "identity signed up", slog.String("email", email))
	return resp.toDomain()
}

// SignIn exchanges email and password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", passwordGrant{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var resp sessionResponse
	if err := c.do(req, "signin", &resp); err != nil {
		return nil, err
	}

	return resp.toDomain()
}

// SignOut revokes the session behind accessToken.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	return c.do(req, "signout", nil)
}
