package repositories

import (
	"fmt"

	"loja/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPaymentRepository is a GORM implementation of PaymentRepository.
type GORMPaymentRepository struct {
	db *gorm.DB
}

// NewGORMPaymentRepository creates a new instance of GORMPaymentRepository.
func NewGORMPaymentRepository(db *gorm.DB) *GORMPaymentRepository {
	return &GORMPaymentRepository{
		db: db,
	}
}

// Create persists a new payment record.
func (r *GORMPaymentRepository) Create(payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetAllByCartID retrieves every payment linked to the given cart.
func (r *GORMPaymentRepository) GetAllByCartID(cartID string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Find(&payments, "cart_id = ?", cartID).Error; err != nil {
		return nil, fmt.Errorf("failed to get payments for cart %s: %w", cartID, err)
	}
	return payments, nil
}
