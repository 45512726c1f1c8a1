package service_test

import (
	"context"
	"testing"
	"time"

	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/events"
	"github.com/digiri/giriloyo-batik/internal/models"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
	"github.com/digiri/giriloyo-batik/internal/repositories/mocks"
	service "github.com/digiri/giriloyo-batik/internal/services"
	svcMocks "github.com/digiri/giriloyo-batik/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testGuestID = "guest_6f1c2b7e-5d1a-4c8e-9b3f-0a2d4e6f8a10"

func setupCartServiceTest() (service.CartService, *mocks.CartRepository, *svcMocks.ProductService, *events.Bus) {
	mockRepo := new(mocks.CartRepository)
	mockProducts := new(svcMocks.ProductService)
	bus := events.NewBus(4)

	return service.NewCartService(mockRepo, mockProducts, bus), mockRepo, mockProducts, bus
}

// storedCart returns a func that hands out a fresh copy of the cart on every load.
func storedCart(version int64, items ...models.CartItem) func(context.Context, string) *models.Cart {
	return func(_ context.Context, guestID string) *models.Cart {
		return &models.Cart{GuestID: guestID, Items: append([]models.CartItem{}, items...), Version: version}
	}
}

func TestCartAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Catalog Sets Price And Event Is Published", func(t *testing.T) {
		// Arrange
		cartService, mockRepo, mockProducts, bus := setupCartServiceTest()
		changes, cancel := bus.Subscribe(testGuestID)
		defer cancel()

		mockProducts.On("GetProductByID", mock.Anything, int64(1)).Return(newTestProduct(), nil).Once()
		mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(0), nil).Once()
		mockRepo.On("SaveCart", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool {
			return len(c.Items) == 1 && c.Items[0].UnitPrice == 450000 && c.Items[0].Quantity == 1 &&
				c.Items[0].ImageRef == "https://cdn.example.com/sekar-jagad.jpg"
		})).Return(nil).Once()

		req := &models.AddItemRequest{CartKey: models.CartKey{ProductID: 1, Size: "M", Color: "Sogan"}}

		// Act
		view, err := cartService.AddItem(ctx, testGuestID, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, view.ItemCount)
		assert.Equal(t, int64(450000), view.Subtotal)

		select {
		case evt := <-changes:
			assert.Equal(t, models.CartChanged{GuestID: testGuestID, ItemCount: 1}, evt)
		case <-time.After(time.Second):
			t.Fatal("expected a cart event")
		}

		mockRepo.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Success - Same Key Merges", func(t *testing.T) {
		// Arrange
		cartService, mockRepo, mockProducts, _ := setupCartServiceTest()
		existing := models.CartItem{ProductID: 1, Name: "Batik Tulis Motif Sekar Jagad", UnitPrice: 450000, Size: "M", Color: "Sogan", Quantity: 2}

		mockProducts.On("GetProductByID", mock.Anything, int64(1)).Return(newTestProduct(), nil).Once()
		mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(3, existing), nil).Once()
		mockRepo.On("SaveCart", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool {
			return len(c.Items) == 1 && c.Items[0].Quantity == 3 && c.Version == 3
		})).Return(nil).Once()

		// Act
		view, err := cartService.AddItem(ctx, testGuestID, &models.AddItemRequest{CartKey: existing.Key()})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 3, view.ItemCount)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Option Not Offered", func(t *testing.T) {
		// Arrange
		cartService, mockRepo, mockProducts, _ := setupCartServiceTest()

		mockProducts.On("GetProductByID", mock.Anything, int64(1)).Return(newTestProduct(), nil).Once()

		// Act
		view, err := cartService.AddItem(ctx, testGuestID, &models.AddItemRequest{CartKey: models.CartKey{ProductID: 1, Size: "XXL", Color: "Sogan"}})

		// Assert
		assert.Nil(t, view)
		requireAppError(t, err, appErrors.ErrCodeValidation)
		mockRepo.AssertNotCalled(t, "SaveCart", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		// Arrange
		cartService, mockRepo, mockProducts, _ := setupCartServiceTest()

		mockProducts.On("GetProductByID", mock.Anything, int64(42)).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		// Act
		_, err := cartService.AddItem(ctx, testGuestID, &models.AddItemRequest{CartKey: models.CartKey{ProductID: 42}})

		// Assert
		requireAppError(t, err, appErrors.ErrCodeNotFound)
		mockRepo.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	})

	t.Run("Success - Concurrent Write Is Retried", func(t *testing.T) {
		// Arrange
		cartService, mockRepo, mockProducts, _ := setupCartServiceTest()

		mockProducts.On("GetProductByID", mock.Anything, int64(1)).Return(newTestProduct(), nil).Once()
		mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(1), nil).Once()
		mockRepo.On("SaveCart", mock.Anything, mock.AnythingOfType("*models.Cart")).Return(repository.ErrVersionConflict).Once()

		other := models.CartItem{ProductID: 2, Name: "Batik Tulis Motif Parang", UnitPrice: 350000, Quantity: 1}
		mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(2, other), nil).Once()
		mockRepo.On("SaveCart", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool {
			return len(c.Items) == 2 && c.Version == 2
		})).Return(nil).Once()

		// Act
		view, err := cartService.AddItem(ctx, testGuestID, &models.AddItemRequest{CartKey: models.CartKey{ProductID: 1, Size: "L", Color: "Sogan"}})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, view.ItemCount)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Conflict After Retries", func(t *testing.T) {
		// Arrange
		cartService, mockRepo, mockProducts, _ := setupCartServiceTest()

		mockProducts.On("GetProductByID", mock.Anything, int64(1)).Return(newTestProduct(), nil).Once()
		mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(1), nil).Times(3)
		mockRepo.On("SaveCart", mock.Anything, mock.AnythingOfType("*models.Cart")).Return(repository.ErrVersionConflict).Times(3)

		// Act
		_, err := cartService.AddItem(ctx, testGuestID, &models.AddItemRequest{CartKey: models.CartKey{ProductID: 1, Size: "M", Color: "Sogan"}})

		// Assert
		requireAppError(t, err, appErrors.ErrCodeConflict)
		mockRepo.AssertExpectations(t)
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	line := models.CartItem{ProductID: 1, Name: "Batik Tulis Motif Sekar Jagad", UnitPrice: 450000, Size: "M", Color: "Sogan", Quantity: 2}

	t.Run("Success - Quantity Overwritten", func(t *testing.T) {
		// Arrange
		cartService, mockRepo, _, _ := setupCartServiceTest()

		mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(1, line), nil).Once()
		mockRepo.On("SaveCart", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool {
			return c.Items[0].Quantity == 5
		})).Return(nil).Once()

		// Act
		view, err := cartService.UpdateQuantity(context.Background(), testGuestID, &models.UpdateQuantityRequest{CartKey: line.Key(), Quantity: 5})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(2250000), view.Subtotal)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Quantity Below One Is Ignored", func(t *testing.T) {
		// Arrange
		cartService, mockRepo, _, _ := setupCartServiceTest()

		mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(1, line), nil).Once()

		// Act
		view, err := cartService.UpdateQuantity(context.Background(), testGuestID, &models.UpdateQuantityRequest{CartKey: line.Key(), Quantity: 0})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, view.ItemCount)
		mockRepo.AssertNotCalled(t, "SaveCart", mock.Anything, mock.Anything)
	})
}

func TestCartRemoveItem(t *testing.T) {
	// Arrange
	cartService, mockRepo, _, _ := setupCartServiceTest()

	medium := models.CartItem{ProductID: 1, Name: "Batik Tulis Motif Sekar Jagad", UnitPrice: 450000, Size: "M", Color: "Sogan", Quantity: 1}
	large := models.CartItem{ProductID: 1, Name: "Batik Tulis Motif Sekar Jagad", UnitPrice: 450000, Size: "L", Color: "Sogan", Quantity: 1}

	mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(4, medium, large), nil).Once()
	mockRepo.On("SaveCart", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].Size == "L"
	})).Return(nil).Once()

	// Act
	view, err := cartService.RemoveItem(context.Background(), testGuestID, &models.RemoveItemRequest{CartKey: medium.Key()})

	// Assert
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "L", view.Items[0].Size)
	mockRepo.AssertExpectations(t)
}

func TestCartClear(t *testing.T) {
	t.Run("Success - Clears Lines", func(t *testing.T) {
		// Arrange
		cartService, mockRepo, _, _ := setupCartServiceTest()

		mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(2, models.CartItem{ProductID: 1, Quantity: 1}), nil).Once()
		mockRepo.On("SaveCart", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool { return len(c.Items) == 0 })).Return(nil).Once()

		// Act
		err := cartService.Clear(context.Background(), testGuestID)

		// Assert
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Empty Cart Is Not Written", func(t *testing.T) {
		// Arrange
		cartService, mockRepo, _, _ := setupCartServiceTest()

		mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(0), nil).Once()

		// Act
		err := cartService.Clear(context.Background(), testGuestID)

		// Assert
		require.NoError(t, err)
		mockRepo.AssertNotCalled(t, "SaveCart", mock.Anything, mock.Anything)
	})
}

func TestCartRemoveOrdered(t *testing.T) {
	ordered := models.CartItem{ProductID: 1, Name: "Batik Tulis Motif Sekar Jagad", UnitPrice: 450000, Size: "M", Color: "Sogan", Quantity: 1}
	addedDuringPayment := models.CartItem{ProductID: 2, Name: "Batik Tulis Motif Parang", UnitPrice: 350000, Size: "L", Color: "Indigo", Quantity: 1}

	t.Run("Success - Lines Added After Snapshot Are Kept", func(t *testing.T) {
		// Arrange
		cartService, mockRepo, _, _ := setupCartServiceTest()

		mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(2, ordered, addedDuringPayment), nil).Once()
		mockRepo.On("SaveCart", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool {
			return len(c.Items) == 1 && c.Items[0].ProductID == 2
		})).Return(nil).Once()

		// Act
		err := cartService.RemoveOrdered(context.Background(), testGuestID, []models.CartItem{ordered})

		// Assert
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Extra Quantity Is Kept", func(t *testing.T) {
		// Arrange
		cartService, mockRepo, _, _ := setupCartServiceTest()
		bumped := ordered
		bumped.Quantity = 3

		mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(3, bumped), nil).Once()
		mockRepo.On("SaveCart", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool {
			return len(c.Items) == 1 && c.Items[0].Quantity == 2
		})).Return(nil).Once()

		// Act
		err := cartService.RemoveOrdered(context.Background(), testGuestID, []models.CartItem{ordered})

		// Assert
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Concurrent Add Survives Retry", func(t *testing.T) {
		// Arrange
		cartService, mockRepo, _, _ := setupCartServiceTest()

		mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(1, ordered), nil).Once()
		mockRepo.On("SaveCart", mock.Anything, mock.AnythingOfType("*models.Cart")).Return(repository.ErrVersionConflict).Once()
		mockRepo.On("GetCart", mock.Anything, testGuestID).Return(storedCart(2, ordered, addedDuringPayment), nil).Once()
		mockRepo.On("SaveCart", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool {
			return len(c.Items) == 1 && c.Items[0].ProductID == 2
		})).Return(nil).Once()

		// Act
		err := cartService.RemoveOrdered(context.Background(), testGuestID, []models.CartItem{ordered})

		// Assert
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
