package service_test

import (
	"net/http"
	"testing"

	appErrors "github.com/itemshop/storefront/internal/errors"
	"github.com/itemshop/storefront/internal/models"
	service "github.com/itemshop/storefront/internal/services"
	"github.com/itemshop/storefront/internal/services/mocks"
	"github.com/itemshop/storefront/pkg/commerce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSession(t *testing.T) (*mocks.CommerceClient, service.SessionService) {
	t.Helper()

	mockClient := new(mocks.CommerceClient)

	return mockClient, service.NewSessionService(mockClient)
}

func TestProbe(t *testing.T) {
	sessionCookies := []*http.Cookie{{Name: "connect.sid", Value: "abc"}}

	t.Run("Success - Acknowledged Session", func(t *testing.T) {
		// Arrange
		mockClient, sessionService := setupSession(t)
		ctx := t.Context()

		mockClient.On("GetSession", ctx, sessionCookies).Return(&commerce.Session{UserID: "42"}, nil).Once()

		// Act
		state := sessionService.Probe(ctx, sessionCookies)

		// Assert
		assert.True(t, state.Authenticated)
		assert.Equal(t, "42", state.UserID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Success - Rejection Reads Unauthenticated", func(t *testing.T) {
		mockClient, sessionService := setupSession(t)
		ctx := t.Context()

		mockClient.On("GetSession", ctx, sessionCookies).Return(nil, appErrors.UnauthorizedError("not logged in")).Once()

		state := sessionService.Probe(ctx, sessionCookies)

		assert.False(t, state.Authenticated)
		assert.Empty(t, state.UserID)
	})

	t.Run("Success - Network Failure Reads Unauthenticated", func(t *testing.T) {
		// The probe is best effort: a dead upstream must not become a
		// blocking fault.
		mockClient, sessionService := setupSession(t)
		ctx := t.Context()

		mockClient.On("GetSession", ctx, sessionCookies).Return(nil, appErrors.NetworkError("Commerce API is unreachable")).Once()

		state := sessionService.Probe(ctx, sessionCookies)

		assert.False(t, state.Authenticated)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success - Session Cookies Returned", func(t *testing.T) {
		// Arrange
		mockClient, sessionService := setupSession(t)
		ctx := t.Context()
		req := &models.LoginRequest{Email: "a@b.c", Password: "pw"}
		fresh := []*http.Cookie{{Name: "connect.sid", Value: "fresh"}}

		mockClient.On("Login", ctx, req).Return(fresh, nil).Once()

		// Act
		cookies, err := sessionService.Login(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, fresh, cookies)
	})

	t.Run("Failure - Upstream Rejection Passed Through", func(t *testing.T) {
		mockClient, sessionService := setupSession(t)
		ctx := t.Context()
		req := &models.LoginRequest{Email: "a@b.c", Password: "bad"}

		mockClient.On("Login", ctx, req).Return(nil, appErrors.UpstreamError("invalid credentials")).Once()

		cookies, err := sessionService.Login(ctx, req)

		require.Error(t, err)
		assert.Nil(t, cookies)
		assert.Equal(t, "invalid credentials", err.Error())
	})
}

func TestLogout(t *testing.T) {
	sessionCookies := []*http.Cookie{{Name: "connect.sid", Value: "abc"}}

	t.Run("Success - Upstream Set-Cookie Relayed", func(t *testing.T) {
		mockClient, sessionService := setupSession(t)
		ctx := t.Context()
		expired := []*http.Cookie{{Name: "connect.sid", Value: "", MaxAge: -1}}

		mockClient.On("Logout", ctx, sessionCookies).Return(expired, nil).Once()

		cookies, err := sessionService.Logout(ctx, sessionCookies)

		require.NoError(t, err)
		assert.Equal(t, expired, cookies)
	})

	t.Run("Failure - Error Surfaced For Caller To Handle Defensively", func(t *testing.T) {
		mockClient, sessionService := setupSession(t)
		ctx := t.Context()

		mockClient.On("Logout", ctx, sessionCookies).Return(nil, appErrors.NetworkError("Commerce API is unreachable")).Once()

		cookies, err := sessionService.Logout(ctx, sessionCookies)

		require.Error(t, err)
		assert.Nil(t, cookies)
	})
}

func TestSignup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient, sessionService := setupSession(t)
		ctx := t.Context()
		req := &models.SignupRequest{Email: "a@b.c", Password: "secret1", FirstName: "Ada", LastName: "Lovelace"}

		mockClient.On("Signup", ctx, req).Return(nil).Once()

		require.NoError(t, sessionService.Signup(ctx, req))
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		mockClient, sessionService := setupSession(t)
		ctx := t.Context()
		req := &models.SignupRequest{Email: "a@b.c", Password: "secret1", FirstName: "Ada", LastName: "Lovelace"}

		mockClient.On("Signup", ctx, req).Return(appErrors.UpstreamError("email already registered")).Once()

		err := sessionService.Signup(ctx, req)

		require.Error(t, err)
		assert.Equal(t, "email already registered", err.Error())
	})
}
