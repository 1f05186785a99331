package mocks

import (
	"context"
	"net/http"
	"time"

	"github.com/itemshop/storefront/internal/models"
	"github.com/itemshop/storefront/internal/ratelimit"
	"github.com/itemshop/storefront/pkg/commerce"
	"github.com/stretchr/testify/mock"
)

// CommerceClient is a testify mock of the upstream commerce API client.
type CommerceClient struct {
	mock.Mock
}

func (m *CommerceClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *CommerceClient) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *CommerceClient) GetSession(ctx context.Context, cookies []*http.Cookie) (*commerce.Session, error) {
	args := m.Called(ctx, cookies)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*commerce.Session), args.Error(1)
}

func (m *CommerceClient) Login(ctx context.Context, req *models.LoginRequest) ([]*http.Cookie, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*http.Cookie), args.Error(1)
}

func (m *CommerceClient) Logout(ctx context.Context, cookies []*http.Cookie) ([]*http.Cookie, error) {
	args := m.Called(ctx, cookies)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*http.Cookie), args.Error(1)
}

func (m *CommerceClient) Signup(ctx context.Context, req *models.SignupRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *CommerceClient) Purchase(ctx context.Context, cookies []*http.Cookie, payload *models.PurchasePayload) error {
	return m.Called(ctx, cookies, payload).Error(0)
}

// Cache is a testify mock of the cache interface.
type Cache struct {
	mock.Mock
}

func (m *Cache) Get(ctx context.Context, key string, value any) (bool, error) {
	args := m.Called(ctx, key, value)

	return args.Bool(0), args.Error(1)
}

func (m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *Cache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *Cache) Close() error {
	return m.Called().Error(0)
}

// CatalogService mocks the catalog service for handler and checkout tests.
type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *CatalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *CatalogService) ReconcileCart(products []models.Product, cartIDs []int64) *models.CartSnapshot {
	args := m.Called(products, cartIDs)

	return args.Get(0).(*models.CartSnapshot)
}

// SessionService mocks the session service.
type SessionService struct {
	mock.Mock
}

func (m *SessionService) Probe(ctx context.Context, cookies []*http.Cookie) models.SessionState {
	args := m.Called(ctx, cookies)

	return args.Get(0).(models.SessionState)
}

func (m *SessionService) Login(ctx context.Context, req *models.LoginRequest) ([]*http.Cookie, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*http.Cookie), args.Error(1)
}

func (m *SessionService) Logout(ctx context.Context, cookies []*http.Cookie) ([]*http.Cookie, error) {
	args := m.Called(ctx, cookies)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*http.Cookie), args.Error(1)
}

func (m *SessionService) Signup(ctx context.Context, req *models.SignupRequest) error {
	return m.Called(ctx, req).Error(0)
}

// CheckoutService mocks the checkout coordinator.
type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) Submit(ctx context.Context, cookies []*http.Cookie, session models.SessionState, form *models.CheckoutRequest, cartIDs []int64) (*models.CheckoutResult, error) {
	args := m.Called(ctx, cookies, session, form, cartIDs)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CheckoutResult), args.Error(1)
}

// RateLimiter mocks the login rate limiter.
type RateLimiter struct {
	mock.Mock
}

func (m *RateLimiter) CheckLoginAttempt(ctx context.Context, email string) (*ratelimit.Result, error) {
	args := m.Called(ctx, email)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*ratelimit.Result), args.Error(1)
}
