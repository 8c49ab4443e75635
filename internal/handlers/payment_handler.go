package handlers

import (
	"errors"
	"log"

	"loja/internal/repositories"
	"loja/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for checkout and payment records.
type PaymentHandler struct {
	service *services.CheckoutService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.CheckoutService) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Post("/checkout/:cartId", h.HandleCheckout)
	paymentRoutes.Get("/carts/:cartId", h.HandleGetPaymentsByCart)
}

// HandleCheckout creates an external checkout session for the cart and
// answers with the session's URL and id.
func (h *PaymentHandler) HandleCheckout(c *fiber.Ctx) error {
	cartID := c.Params("cartId")

	payment, err := h.service.CreateCheckoutSession(cartID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error creating checkout session for cart %s: %v", cartID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"checkoutUrl": payment.CheckoutURL,
		"sessionId":   payment.SessionID,
	})
}

// HandleGetPaymentsByCart lists every payment record linked to the cart.
func (h *PaymentHandler) HandleGetPaymentsByCart(c *fiber.Ctx) error {
	cartID := c.Params("cartId")

	payments, err := h.service.GetPaymentsByCartID(cartID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting payments for cart %s: %v", cartID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve payments",
			"error":   err.Error(),
		})
	}
	return c.JSON(payments)
}
