package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/itemshop/storefront/internal/api/handlers"
	appErrors "github.com/itemshop/storefront/internal/errors"
	"github.com/itemshop/storefront/internal/models"
	"github.com/itemshop/storefront/internal/services/mocks"
	"github.com/itemshop/storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCatalogTest() (*mocks.CatalogService, *handlers.CatalogHandler) {
	mockCatalog := new(mocks.CatalogService)
	catalogHandler := handlers.NewCatalogHandler(mockCatalog)

	return mockCatalog, catalogHandler
}

func TestListProducts(t *testing.T) {
	t.Run("Success - Returns Catalog", func(t *testing.T) {
		// Arrange
		mockCatalog, catalogHandler := setupCatalogTest()
		req := testutils.NewRequest("GET", "/api/v1/products", nil, nil)
		recorder := httptest.NewRecorder()

		mockCatalog.On("ListProducts", mock.Anything).Return(testCatalog, nil).Once()

		// Act
		catalogHandler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var products []models.Product
		resp := decodeResponse(t, recorder, &products)
		assert.True(t, resp.Success)
		require.Len(t, products, 2)
		assert.Equal(t, int64(3), products[0].ID)
		mockCatalog.AssertExpectations(t)
	})

	t.Run("Failure - Upstream Unreachable", func(t *testing.T) {
		// Arrange
		mockCatalog, catalogHandler := setupCatalogTest()
		req := testutils.NewRequest("GET", "/api/v1/products", nil, nil)
		recorder := httptest.NewRecorder()

		mockCatalog.On("ListProducts", mock.Anything).Return(nil, appErrors.NetworkError("Commerce API is unreachable")).Once()

		// Act
		catalogHandler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadGateway, recorder.Code)

		resp := decodeResponse(t, recorder, nil)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeNetwork, resp.Error.Code)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Success - Returns Product", func(t *testing.T) {
		// Arrange
		mockCatalog, catalogHandler := setupCatalogTest()
		req := testutils.NewRequest("GET", "/api/v1/products/3", nil, map[string]string{"id": "3"})
		recorder := httptest.NewRecorder()

		mockCatalog.On("GetProduct", mock.Anything, int64(3)).Return(&testCatalog[0], nil).Once()

		// Act
		catalogHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var product models.Product
		decodeResponse(t, recorder, &product)
		assert.Equal(t, "Dragon Dagger", product.Name)
	})

	t.Run("Failure - Unknown Id Reports Not Found", func(t *testing.T) {
		// Arrange
		mockCatalog, catalogHandler := setupCatalogTest()
		req := testutils.NewRequest("GET", "/api/v1/products/9999", nil, map[string]string{"id": "9999"})
		recorder := httptest.NewRecorder()

		mockCatalog.On("GetProduct", mock.Anything, int64(9999)).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		// Act
		catalogHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		resp := decodeResponse(t, recorder, nil)
		assert.Equal(t, "Product not found", resp.Error.Message)
	})

	t.Run("Failure - Non Numeric Id", func(t *testing.T) {
		mockCatalog, catalogHandler := setupCatalogTest()
		req := testutils.NewRequest("GET", "/api/v1/products/banana", nil, map[string]string{"id": "banana"})
		recorder := httptest.NewRecorder()

		catalogHandler.GetProduct()(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCatalog.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
	})
}
