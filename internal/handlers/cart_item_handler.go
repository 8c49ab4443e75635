package handlers

import (
	"errors"
	"log"

	"loja/internal/repositories"
	"loja/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartItemHandler handles HTTP requests for the items inside a cart.
type CartItemHandler struct {
	service  *services.CartItemService
	carts    *services.CartService
	validate *validator.Validate
}

// NewCartItemHandler creates a new CartItemHandler.
func NewCartItemHandler(service *services.CartItemService, carts *services.CartService) *CartItemHandler {
	return &CartItemHandler{
		service:  service,
		carts:    carts,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart item routes with the Fiber app.
func (h *CartItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/cartItems")
	itemRoutes.Post("/", h.HandleAddItem)
	itemRoutes.Put("/:cartId/products/:productId", h.HandleUpdateItemQuantity)
	itemRoutes.Delete("/:cartId/products/:productId", h.HandleRemoveItem)
}

// AddItemRequest is the request body for adding an item to a cart.
type AddItemRequest struct {
	CartID    string `json:"cartId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// UpdateItemRequest is the request body for overwriting an item's quantity.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// HandleAddItem adds a product to the cart, merging with an existing item
// for the same product, and responds with the refreshed cart and total.
func (h *CartItemHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add item body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	if err := h.service.AddItemToCart(req.CartID, req.ProductID, req.Quantity); err != nil {
		return h.mapItemError(c, err, "Could not add item to cart")
	}

	return h.respondWithCart(c, req.CartID)
}

// HandleUpdateItemQuantity overwrites the quantity of an existing item.
func (h *CartItemHandler) HandleUpdateItemQuantity(c *fiber.Ctx) error {
	cartID := c.Params("cartId")
	productID := c.Params("productId")

	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update item body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	if err := h.service.UpdateItemQuantity(cartID, productID, req.Quantity); err != nil {
		return h.mapItemError(c, err, "Could not update item quantity")
	}

	return h.respondWithCart(c, cartID)
}

// HandleRemoveItem removes a product's item from the cart.
func (h *CartItemHandler) HandleRemoveItem(c *fiber.Ctx) error {
	cartID := c.Params("cartId")
	productID := c.Params("productId")

	if err := h.service.RemoveItemFromCart(cartID, productID); err != nil {
		return h.mapItemError(c, err, "Could not remove item from cart")
	}

	return c.SendStatus(fiber.StatusOK)
}

// respondWithCart reloads the cart and answers with its id, total and items.
func (h *CartItemHandler) respondWithCart(c *fiber.Ctx, cartID string) error {
	cart, err := h.carts.GetCart(cartID)
	if err != nil {
		log.Printf("Error reloading cart %s: %v", cartID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"id":          cart.ID,
		"totalAmount": cart.TotalAmount,
		"items":       cart.Items,
	})
}

// mapItemError translates service errors to HTTP statuses.
func (h *CartItemHandler) mapItemError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	default:
		log.Printf("%s: %v", message, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	}
}
