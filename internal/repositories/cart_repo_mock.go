package repositories

import (
	"fmt"
	"sync"

	"loja/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]*models.Cart
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]*models.Cart),
	}
}

// GetByID returns a cart by its ID.
func (r *MockCartRepository) GetByID(id string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return nil, fmt.Errorf("cart with ID %s: %w", id, ErrNotFound)
	}
	return cart, nil
}

// Create adds a new cart.
func (r *MockCartRepository) Create(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	r.carts[cart.ID] = cart
	return nil
}

// Save stores the cart.
func (r *MockCartRepository) Save(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.ID] = cart
	return nil
}

// Delete removes a cart by its ID.
func (r *MockCartRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[id]; !ok {
		return fmt.Errorf("cart with ID %s: %w", id, ErrNotFound)
	}
	delete(r.carts, id)
	return nil
}

// MockCartItemRepository is an in-memory implementation of CartItemRepository.
type MockCartItemRepository struct {
	items map[string]models.CartItem
	mu    sync.RWMutex
}

// NewMockCartItemRepository creates a new instance of MockCartItemRepository.
func NewMockCartItemRepository() *MockCartItemRepository {
	return &MockCartItemRepository{
		items: make(map[string]models.CartItem),
	}
}

// Save creates or updates a cart item.
func (r *MockCartItemRepository) Save(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items[item.ID] = *item
	return nil
}

// Delete removes a cart item by its ID.
func (r *MockCartItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("cart item with ID %s: %w", id, ErrNotFound)
	}
	delete(r.items, id)
	return nil
}

// DeleteAllByCartID removes every item belonging to the given cart.
func (r *MockCartItemRepository) DeleteAllByCartID(cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.CartID == cartID {
			delete(r.items, id)
		}
	}
	return nil
}

// CountByCartID reports how many items are stored for the cart. Test helper.
func (r *MockCartItemRepository) CountByCartID(cartID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, item := range r.items {
		if item.CartID == cartID {
			n++
		}
	}
	return n
}
