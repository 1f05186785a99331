package poller_test

import (
	"sync/atomic"
	"testing"
	"time"

	appErrors "github.com/itemshop/storefront/internal/errors"
	"github.com/itemshop/storefront/internal/models"
	"github.com/itemshop/storefront/internal/poller"
	"github.com/itemshop/storefront/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPollerRefreshes(t *testing.T) {
	// Arrange
	mockCatalog := new(mocks.CatalogService)

	var calls atomic.Int32
	mockCatalog.On("ListProducts", mock.Anything).Run(func(mock.Arguments) {
		calls.Add(1)
	}).Return([]models.Product{{ID: 1}}, nil)

	p := poller.New(mockCatalog, 5*time.Millisecond)

	// Act
	p.Start(t.Context())

	assert.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, time.Millisecond, "expected at least two refresh ticks")

	p.Stop()
	settled := calls.Load()
	time.Sleep(25 * time.Millisecond)

	// Assert
	assert.Equal(t, settled, calls.Load(), "no ticks may fire after Stop")
}

func TestPollerSurvivesRefreshFailure(t *testing.T) {
	// Arrange
	mockCatalog := new(mocks.CatalogService)

	var calls atomic.Int32
	mockCatalog.On("ListProducts", mock.Anything).Run(func(mock.Arguments) {
		calls.Add(1)
	}).Return(nil, appErrors.NetworkError("Commerce API is unreachable"))

	p := poller.New(mockCatalog, 5*time.Millisecond)

	// Act
	p.Start(t.Context())

	// Assert
	assert.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, time.Millisecond, "a failed refresh must not stop the loop")

	p.Stop()
}

func TestPollerStopIsIdempotent(t *testing.T) {
	mockCatalog := new(mocks.CatalogService)
	mockCatalog.On("ListProducts", mock.Anything).Return([]models.Product{}, nil)

	p := poller.New(mockCatalog, time.Millisecond)
	p.Start(t.Context())

	p.Stop()
	p.Stop()
}
