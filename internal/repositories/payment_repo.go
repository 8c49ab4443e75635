package repositories

import "loja/internal/models"

// PaymentRepository defines the interface for payment record data access.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetAllByCartID(cartID string) ([]models.Payment, error)
}
