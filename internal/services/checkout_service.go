package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"loja/internal/models"
	"loja/internal/repositories"
	"loja/pkg/stripe"
)

// Currency of every checkout session, in ISO 4217 lowercase as the
// provider expects it.
const checkoutCurrency = "brl"

// CheckoutClient is the outbound port to the payment provider.
type CheckoutClient interface {
	CreateCheckoutSession(params stripe.SessionParams) (*stripe.Session, error)
}

// PaymentEventPublisher publishes payment lifecycle events. A nil publisher
// disables publishing.
type PaymentEventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// CheckoutService turns a cart into an external checkout session and a
// persisted payment record.
type CheckoutService struct {
	carts       *CartService
	productRepo repositories.ProductRepository
	paymentRepo repositories.PaymentRepository
	checkout    CheckoutClient
	publisher   PaymentEventPublisher
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(carts *CartService, productRepo repositories.ProductRepository, paymentRepo repositories.PaymentRepository, checkout CheckoutClient, publisher PaymentEventPublisher) *CheckoutService {
	return &CheckoutService{
		carts:       carts,
		productRepo: productRepo,
		paymentRepo: paymentRepo,
		checkout:    checkout,
		publisher:   publisher,
	}
}

// CreateCheckoutSession computes the cart total in minor currency units,
// decrements the stock of every referenced product, requests a checkout
// session from the provider and persists a Payment row with status CREATED.
//
// The stock decrements are applied before the external call and are not
// rolled back if that call fails; a failed session leaves reduced stock.
// This matches the existing API behavior and is documented in DESIGN.md.
func (s *CheckoutService) CreateCheckoutSession(cartID string) (*models.Payment, error) {
	cart, err := s.carts.GetCart(cartID)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, item := range cart.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	totalAmount := int64(math.Round(total * 100))

	for i := range cart.Items {
		product := cart.Items[i].Product
		product.Quantity -= cart.Items[i].Quantity
		if err := s.productRepo.Update(&product); err != nil {
			return nil, fmt.Errorf("failed to decrement stock of product %s: %w", product.ID, err)
		}
	}

	lineItems := make([]stripe.LineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		lineItems = append(lineItems, stripe.LineItem{
			Name:       item.Product.Name,
			Currency:   checkoutCurrency,
			UnitAmount: int64(math.Round(item.Product.Price * 100)),
			Quantity:   int64(item.Quantity),
		})
	}

	session, err := s.checkout.CreateCheckoutSession(stripe.SessionParams{
		ClientReferenceID: cart.ID,
		LineItems:         lineItems,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCheckoutSession, err)
	}

	payment := &models.Payment{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
		Status:      models.PaymentStatusCreated,
		Amount:      totalAmount,
		CartID:      cart.ID,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	s.publishPaymentCreated(payment)

	return payment, nil
}

// GetPaymentsByCartID returns every payment record linked to the cart.
func (s *CheckoutService) GetPaymentsByCartID(cartID string) ([]models.Payment, error) {
	if _, err := s.carts.GetCart(cartID); err != nil {
		return nil, err
	}
	return s.paymentRepo.GetAllByCartID(cartID)
}

// publishPaymentCreated emits a payment.created event. Publishing is best
// effort: a broker failure must not fail a checkout that already has a
// session and a persisted payment.
func (s *CheckoutService) publishPaymentCreated(payment *models.Payment) {
	if s.publisher == nil {
		log.Println("Payment event publisher is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"paymentID": payment.ID,
		"cartID":    payment.CartID,
		"sessionID": payment.SessionID,
		"status":    payment.Status,
		"amount":    payment.Amount,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal payment event to JSON: %v", err)
		return
	}
	if err := s.publisher.Publish("payment.created", body); err != nil {
		log.Printf("Warning: Failed to publish payment created event for payment %s: %v", payment.ID, err)
		return
	}
	log.Printf("Successfully published payment created event for payment %s", payment.ID)
}
