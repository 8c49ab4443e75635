package services

import (
	"fmt"

	"loja/internal/models"
	"loja/internal/repositories"
)

// CartService handles cart lifecycle: creation, retrieval, clearing and the
// cached total.
type CartService struct {
	cartRepo     repositories.CartRepository
	cartItemRepo repositories.CartItemRepository
	userRepo     repositories.UserRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, cartItemRepo repositories.CartItemRepository, userRepo repositories.UserRepository) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		userRepo:     userRepo,
	}
}

// GetCart retrieves a cart with its items and payments.
func (s *CartService) GetCart(id string) (*models.Cart, error) {
	return s.cartRepo.GetByID(id)
}

// CreateCart creates an empty cart, optionally owned by a user. When a user
// ID is given the user must exist.
func (s *CartService) CreateCart(userID *string) (*models.Cart, error) {
	cart := &models.Cart{
		Items:    []models.CartItem{},
		Payments: []models.Payment{},
	}
	if userID != nil && *userID != "" {
		user, err := s.userRepo.GetByID(*userID)
		if err != nil {
			return nil, err
		}
		cart.UserID = &user.ID
		cart.User = user
	}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return cart, nil
}

// ClearCart deletes every item belonging to the cart, then the cart itself.
// Item rows go first so no child rows are orphaned by the parent delete.
func (s *CartService) ClearCart(id string) error {
	cart, err := s.cartRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.cartItemRepo.DeleteAllByCartID(cart.ID); err != nil {
		return fmt.Errorf("failed to clear items of cart %s: %w", id, err)
	}
	if err := s.cartRepo.Delete(cart.ID); err != nil {
		return fmt.Errorf("failed to delete cart %s: %w", id, err)
	}
	return nil
}

// GetTotalPrice returns the cart's cached total amount.
func (s *CartService) GetTotalPrice(id string) (float64, error) {
	cart, err := s.cartRepo.GetByID(id)
	if err != nil {
		return 0, err
	}
	return cart.TotalAmount, nil
}
