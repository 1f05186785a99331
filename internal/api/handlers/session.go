package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/itemshop/storefront/internal/api/middleware"
	apperrors "github.com/itemshop/storefront/internal/errors"
	"github.com/itemshop/storefront/internal/models"
	"github.com/itemshop/storefront/internal/ratelimit"
	service "github.com/itemshop/storefront/internal/services"
	"github.com/itemshop/storefront/internal/utils"
	"github.com/itemshop/storefront/internal/utils/response"
)

type SessionHandler struct {
	sessionService service.SessionService
	limiter        ratelimit.Limiter
	validator      *validator.Validate
}

func NewSessionHandler(sessionService service.SessionService, limiter ratelimit.Limiter) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		limiter:        limiter,
		validator:      validator.New(),
	}
}

// GetSession probes the upstream session once per call. A full page reload
// re-probes; nothing is cached here.
func (h *SessionHandler) GetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state := h.sessionService.Probe(r.Context(), r.Cookies())

		response.Success(w, http.StatusOK, state)

	}
}

func (h *SessionHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		// The limiter failing must not lock everyone out; the upstream
		// still rejects bad credentials on its own.
		if limit, err := h.limiter.CheckLoginAttempt(r.Context(), req.Email); err != nil {
			logger.Warn("Rate limiter unavailable, allowing attempt", "error", err.Error())
		} else if !limit.Allowed {
			logger.Warn("Login attempt rate limited", "retryAfterSeconds", limit.RetryAfter)
			response.Error(w, apperrors.RateLimitedError(
				fmt.Sprintf("Too many login attempts. Try again in %d seconds", limit.RetryAfter)))
			return
		}

		cookies, err := h.sessionService.Login(r.Context(), &req)

		if err != nil {
			logger.Warn("Login rejected", "error", err.Error())
			response.Error(w, err)
			return
		}

		// Relay the upstream session cookie onto our own domain.
		for _, cookie := range cookies {
			http.SetCookie(w, cookie)
		}

		logger.Info("Login succeeded")
		response.Success(w, http.StatusOK, models.SessionState{Authenticated: true})

	}
}

// Logout reports the user as logged out whatever the upstream answered. A
// failed logout call surfaces its message in the envelope, but leaving the
// client believing it is still logged in would gate UI behind a session the
// server no longer honors.
func (h *SessionHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cookies, err := h.sessionService.Logout(r.Context(), r.Cookies())

		for _, cookie := range cookies {
			http.SetCookie(w, cookie)
		}

		if err != nil {
			logger.Warn("Logout failed upstream, treating session as ended", "error", err.Error())
			response.Success(w, http.StatusOK, &models.LogoutResponse{
				Session: models.SessionState{Authenticated: false},
				Message: err.Error(),
			})
			return
		}

		logger.Info("Logout succeeded")
		response.Success(w, http.StatusOK, &models.LogoutResponse{
			Session: models.SessionState{Authenticated: false},
		})

	}
}

func (h *SessionHandler) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SignupRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.sessionService.Signup(r.Context(), &req); err != nil {
			logger.Warn("Signup rejected", "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Signup succeeded")
		response.Success(w, http.StatusCreated, nil)

	}
}
