package models

import "gorm.io/gorm"

// PaymentStatusCreated is the status of a freshly persisted payment record.
// Later transitions would come from the provider's webhook, which this
// service does not process.
const PaymentStatusCreated = "CREATED"

// Payment links an external checkout session to the cart it was generated
// for. Amount is in minor currency units. One row is created per checkout
// attempt and never mutated afterwards.
type Payment struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SessionID   string `json:"sessionId"`
	CheckoutURL string `json:"checkoutUrl" gorm:"type:text"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
	CartID      string `json:"cartId" gorm:"type:varchar(36);index"`
	gorm.Model
}
