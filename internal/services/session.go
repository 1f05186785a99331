package service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/itemshop/storefront/internal/models"
	"github.com/itemshop/storefront/pkg/commerce"
)

type SessionService interface {
	// Probe resolves the current session state, best effort: any failure,
	// network faults included, reads as "not authenticated" and is logged
	// rather than surfaced.
	Probe(ctx context.Context, cookies []*http.Cookie) models.SessionState

	Login(ctx context.Context, req *models.LoginRequest) ([]*http.Cookie, error)
	Logout(ctx context.Context, cookies []*http.Cookie) ([]*http.Cookie, error)
	Signup(ctx context.Context, req *models.SignupRequest) error
}

type sessionService struct {
	client commerce.Client
}

func NewSessionService(client commerce.Client) SessionService {
	return &sessionService{client: client}
}

func (s *sessionService) Probe(ctx context.Context, cookies []*http.Cookie) models.SessionState {

	session, err := s.client.GetSession(ctx, cookies)
	if err != nil {
		slog.Debug("Session probe resolved unauthenticated", slog.String("error", err.Error()))

		return models.SessionState{Authenticated: false}
	}

	return models.SessionState{
		Authenticated: true,
		UserID:        session.UserID,
	}
}

func (s *sessionService) Login(ctx context.Context, req *models.LoginRequest) ([]*http.Cookie, error) {
	return s.client.Login(ctx, req)
}

// Logout posts the upstream logout and hands back whatever Set-Cookie the
// upstream answered with. Callers treat the user as logged out even when
// this returns an error; a stale "logged in" flag after a failed logout
// would gate UI the user can no longer use.
func (s *sessionService) Logout(ctx context.Context, cookies []*http.Cookie) ([]*http.Cookie, error) {
	return s.client.Logout(ctx, cookies)
}

func (s *sessionService) Signup(ctx context.Context, req *models.SignupRequest) error {
	return s.client.Signup(ctx, req)
}
