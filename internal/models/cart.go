package models

import "gorm.io/gorm"

// Cart is a mutable collection of line items owned by at most one user.
// TotalAmount is derived from the items and recomputed on every mutation.
type Cart struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      *string    `json:"user" gorm:"type:varchar(36)"`
	User        *User      `json:"-"`
	TotalAmount float64    `json:"totalAmount"`
	Items       []CartItem `json:"items" gorm:"foreignKey:CartID"`
	Payments    []Payment  `json:"payments" gorm:"foreignKey:CartID"`
	gorm.Model
}

// RecalculateTotal folds the current item set into TotalAmount. It is a
// full recomputation, never an incremental patch, so the total is always a
// pure function of the items. An unset unit price contributes zero.
func (c *Cart) RecalculateTotal() {
	total := 0.0
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	c.TotalAmount = total
}

// FindItem returns a pointer into Items for the given product, or nil.
func (c *Cart) FindItem(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// CartItem is a (product, quantity) pairing inside a cart. UnitPrice is a
// snapshot of the product price taken when the item was added.
type CartItem struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID     string  `json:"-" gorm:"type:varchar(36);index"`
	ProductID  string  `json:"productId" gorm:"type:varchar(36);index"`
	Product    Product `json:"-"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	gorm.Model
}

// RecalculateLineTotal refreshes TotalPrice from UnitPrice and Quantity.
func (i *CartItem) RecalculateLineTotal() {
	i.TotalPrice = i.UnitPrice * float64(i.Quantity)
}
