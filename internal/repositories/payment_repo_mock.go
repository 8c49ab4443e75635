package repositories

import (
	"sync"

	"loja/internal/models"

	"github.com/google/uuid"
)

// MockPaymentRepository is an in-memory implementation of PaymentRepository.
type MockPaymentRepository struct {
	payments map[string]models.Payment
	mu       sync.RWMutex
}

// NewMockPaymentRepository creates a new instance of MockPaymentRepository.
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]models.Payment),
	}
}

// Create stores a new payment record.
func (r *MockPaymentRepository) Create(payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	r.payments[payment.ID] = *payment
	return nil
}

// GetAllByCartID returns every payment linked to the given cart.
func (r *MockPaymentRepository) GetAllByCartID(cartID string) ([]models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := make([]models.Payment, 0)
	for _, p := range r.payments {
		if p.CartID == cartID {
			payments = append(payments, p)
		}
	}
	return payments, nil
}
