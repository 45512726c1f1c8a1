package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/events"
	"github.com/digiri/giriloyo-batik/internal/models"
	repository "github.com/digiri/giriloyo-batik/internal/repositories"
)

// maxWriteAttempts bounds optimistic read-modify-write loops on carts and orders.
const maxWriteAttempts = 3

type CartService interface {
	GetCart(ctx context.Context, guestID string) (*models.CartView, error)
	// Snapshot returns the stored cart itself, for checkout.
	Snapshot(ctx context.Context, guestID string) (*models.Cart, error)
	AddItem(ctx context.Context, guestID string, req *models.AddItemRequest) (*models.CartView, error)
	UpdateQuantity(ctx context.Context, guestID string, req *models.UpdateQuantityRequest) (*models.CartView, error)
	RemoveItem(ctx context.Context, guestID string, req *models.RemoveItemRequest) (*models.CartView, error)
	ItemCount(ctx context.Context, guestID string) (int, error)
	Clear(ctx context.Context, guestID string) error
	// RemoveOrdered takes checked-out lines off the cart without touching lines added since the snapshot.
	RemoveOrdered(ctx context.Context, guestID string, lines []models.CartItem) error
	Subscribe(guestID string) (<-chan models.CartChanged, func())
}

type cartService struct {
	repo     repository.CartRepository
	products ProductService
	bus      *events.Bus
	now      func() time.Time
}

func NewCartService(repo repository.CartRepository, products ProductService, bus *events.Bus) CartService {
	return &cartService{repo: repo, products: products, bus: bus, now: time.Now}
}

func (s *cartService) load(ctx context.Context, guestID string) (*models.Cart, error) {
	cart, err := s.repo.GetCart(ctx, guestID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) GetCart(ctx context.Context, guestID string) (*models.CartView, error) {
	cart, err := s.load(ctx, guestID)
	if err != nil {
		return nil, err
	}

	return cart.View(), nil
}

func (s *cartService) Snapshot(ctx context.Context, guestID string) (*models.Cart, error) {
	return s.load(ctx, guestID)
}

// mutate applies fn to a fresh copy of the cart and saves it, reloading on
// version conflicts. fn reports whether it changed anything; unchanged carts
// are not written and no event is published.
func (s *cartService) mutate(ctx context.Context, guestID string, fn func(*models.Cart) bool) (*models.Cart, error) {
	logger := middleware.LoggerFromContext(ctx)

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		cart, err := s.load(ctx, guestID)
		if err != nil {
			return nil, err
		}

		if !fn(cart) {
			return cart, nil
		}

		err = s.repo.SaveCart(ctx, cart)
		if err == nil {
			s.bus.Publish(models.CartChanged{GuestID: guestID, ItemCount: cart.ItemCount()})
			return cart, nil
		}

		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, appErrors.DatabaseError("Failed to save cart").WithError(err)
		}

		logger.Debug("Cart version conflict, retrying", slog.Int("attempt", attempt))
	}

	return nil, appErrors.ConflictError("Cart is being modified concurrently, please retry")
}

func (s *cartService) AddItem(ctx context.Context, guestID string, req *models.AddItemRequest) (*models.CartView, error) {

	product, err := s.products.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	if !product.Offers(req.Size, req.Color) {
		return nil, appErrors.ValidationError("Size or color is not offered for this product")
	}

	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Size:      req.Size,
		Color:     req.Color,
		ImageRef:  product.PrimaryImage(),
		Slug:      product.Slug,
		AddedAt:   s.now().UTC(),
	}

	cart, err := s.mutate(ctx, guestID, func(c *models.Cart) bool {
		c.Add(item)
		return true
	})
	if err != nil {
		return nil, err
	}

	return cart.View(), nil
}

// UpdateQuantity ignores quantities below 1 and unknown lines, returning the cart unchanged.
func (s *cartService) UpdateQuantity(ctx context.Context, guestID string, req *models.UpdateQuantityRequest) (*models.CartView, error) {
	cart, err := s.mutate(ctx, guestID, func(c *models.Cart) bool {
		return c.UpdateQuantity(req.CartKey, req.Quantity)
	})
	if err != nil {
		return nil, err
	}

	return cart.View(), nil
}

func (s *cartService) RemoveItem(ctx context.Context, guestID string, req *models.RemoveItemRequest) (*models.CartView, error) {
	cart, err := s.mutate(ctx, guestID, func(c *models.Cart) bool {
		return c.Remove(req.CartKey)
	})
	if err != nil {
		return nil, err
	}

	return cart.View(), nil
}

func (s *cartService) ItemCount(ctx context.Context, guestID string) (int, error) {
	cart, err := s.load(ctx, guestID)
	if err != nil {
		return 0, err
	}

	return cart.ItemCount(), nil
}

func (s *cartService) Clear(ctx context.Context, guestID string) error {
	_, err := s.mutate(ctx, guestID, func(c *models.Cart) bool {
		if len(c.Items) == 0 {
			return false
		}
		c.Clear()
		return true
	})

	return err
}

func (s *cartService) RemoveOrdered(ctx context.Context, guestID string, lines []models.CartItem) error {
	_, err := s.mutate(ctx, guestID, func(c *models.Cart) bool {
		return c.Subtract(lines)
	})

	return err
}

func (s *cartService) Subscribe(guestID string) (<-chan models.CartChanged, func()) {
	return s.bus.Subscribe(guestID)
}
