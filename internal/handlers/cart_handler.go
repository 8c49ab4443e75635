package handlers

import (
	"errors"
	"log"

	"loja/internal/repositories"
	"loja/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for cart lifecycle.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/carts")
	cartRoutes.Post("/", h.HandleCreateCart)
	cartRoutes.Get("/:cartId", h.HandleGetCart)
	cartRoutes.Delete("/:cartId", h.HandleClearCart)
	cartRoutes.Get("/:cartId/total", h.HandleGetTotal)
}

// CreateCartRequest is the request body for creating a cart. The owning
// user is optional.
type CreateCartRequest struct {
	UserID *string `json:"userId"`
}

// HandleCreateCart creates an empty cart, optionally owned by a user.
func (h *CartHandler) HandleCreateCart(c *fiber.Ctx) error {
	var req CreateCartRequest
	// An empty body is allowed: the cart is simply unowned.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Printf("Error parsing create cart body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
	}

	cart, err := h.service.CreateCart(req.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error creating cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(cart)
}

// HandleGetCart retrieves a cart with its items and payments.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cartID := c.Params("cartId")
	cart, err := h.service.GetCart(cartID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting cart %s: %v", cartID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(cart)
}

// HandleClearCart deletes all items of the cart and the cart itself.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	cartID := c.Params("cartId")
	if err := h.service.ClearCart(cartID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error clearing cart %s: %v", cartID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetTotal returns the cart's cached total amount.
func (h *CartHandler) HandleGetTotal(c *fiber.Ctx) error {
	cartID := c.Params("cartId")
	total, err := h.service.GetTotalPrice(cartID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting total of cart %s: %v", cartID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart total",
			"error":   err.Error(),
		})
	}
	return c.JSON(total)
}
