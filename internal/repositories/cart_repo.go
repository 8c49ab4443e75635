package repositories

import "loja/internal/models"

// CartRepository defines the interface for cart data access. GetByID loads
// the cart with its items (including each item's product) and payments.
type CartRepository interface {
	GetByID(id string) (*models.Cart, error)
	Create(cart *models.Cart) error
	Save(cart *models.Cart) error
	Delete(id string) error
}

// CartItemRepository defines the interface for cart item data access.
// Items are persisted and removed explicitly; the cart row itself only
// carries the cached total.
type CartItemRepository interface {
	Save(item *models.CartItem) error
	Delete(id string) error
	DeleteAllByCartID(cartID string) error
}
