package repositories

import (
	"errors"
	"fmt"

	"loja/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByID retrieves a cart with its items, item products and payments.
func (r *GORMCartRepository) GetByID(id string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Payments").
		First(&cart, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart by ID %s: %w", id, err)
	}
	return &cart, nil
}

// Create creates a new cart in the database.
func (r *GORMCartRepository) Create(cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	if err := r.db.Omit(clause.Associations).Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// Save persists the cart row only. Items and payments are written through
// their own repositories so that removal and cascade semantics stay
// explicit instead of relying on association upserts.
func (r *GORMCartRepository) Save(cart *models.Cart) error {
	res := r.db.Omit(clause.Associations).Save(cart)
	if res.Error != nil {
		return fmt.Errorf("failed to save cart: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart with ID %s: %w", cart.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a cart row by its ID. Callers must have removed the
// cart's items first.
func (r *GORMCartRepository) Delete(id string) error {
	res := r.db.Delete(&models.Cart{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// GORMCartItemRepository is a GORM implementation of CartItemRepository.
type GORMCartItemRepository struct {
	db *gorm.DB
}

// NewGORMCartItemRepository creates a new instance of GORMCartItemRepository.
func NewGORMCartItemRepository(db *gorm.DB) *GORMCartItemRepository {
	return &GORMCartItemRepository{
		db: db,
	}
}

// Save creates or updates a cart item.
func (r *GORMCartItemRepository) Save(item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Omit(clause.Associations).Save(item).Error; err != nil {
		return fmt.Errorf("failed to save cart item: %w", err)
	}
	return nil
}

// Delete removes a cart item by its ID.
func (r *GORMCartItemRepository) Delete(id string) error {
	res := r.db.Delete(&models.CartItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteAllByCartID removes every item belonging to the given cart.
func (r *GORMCartItemRepository) DeleteAllByCartID(cartID string) error {
	if err := r.db.Delete(&models.CartItem{}, "cart_id = ?", cartID).Error; err != nil {
		return fmt.Errorf("failed to delete items for cart %s: %w", cartID, err)
	}
	return nil
}
