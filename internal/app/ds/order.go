package ds

import (
	"time"

	"gorm.io/datatypes"
)

// Таблица заказов. Items - снимок позиций корзины на момент передачи
// в платёжный сервис (JSONB), оплата целиком на стороне Stripe.
type Order struct {
	ID                    uint           `gorm:"primaryKey"`
	OrderNumber           string         `gorm:"type:varchar(50);unique;not null"`
	UserID                *uint          `gorm:"default:null"`
	QuoteID               *uint          `gorm:"default:null"`
	StripeSessionID       string         `gorm:"type:varchar(100)"`
	StripePaymentIntentID string         `gorm:"type:varchar(100)"`
	StripeSubscriptionID  string         `gorm:"type:varchar(100)"`
	Items                 datatypes.JSON `gorm:"type:jsonb"`
	Subtotal              float64        `gorm:"type:decimal(12,2);not null"`
	Tax                   float64        `gorm:"type:decimal(12,2);not null;default:0"`
	Total                 float64        `gorm:"type:decimal(12,2);not null"`
	Status                OrderStatus    `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentMethod         string         `gorm:"type:varchar(30)"`
	BillingCycle          string         `gorm:"type:varchar(20)"` // monthly, one_time
	CreatedAt             time.Time      `gorm:"not null"`
	PaidAt                *time.Time     `gorm:"default:null"`
	ProvisionedAt         *time.Time     `gorm:"default:null"`

	User  *User  `gorm:"foreignKey:UserID"`
	Quote *Quote `gorm:"foreignKey:QuoteID"`
}

// Таблица подписок - зеркало повторяющихся платежей Stripe
type Subscription struct {
	ID                   uint               `gorm:"primaryKey"`
	UserID               *uint              `gorm:"default:null"`
	OrderID              *uint              `gorm:"default:null"`
	StripeSubscriptionID string             `gorm:"type:varchar(100);not null"`
	StripeProductID      string             `gorm:"type:varchar(100)"`
	StripePriceID        string             `gorm:"type:varchar(100)"`
	GPUType              string             `gorm:"type:varchar(50);not null"`
	Quantity             int                `gorm:"not null"`
	Status               SubscriptionStatus `gorm:"type:varchar(20);not null;default:'active'"`
	CurrentPeriodStart   *time.Time         `gorm:"default:null"`
	CurrentPeriodEnd     *time.Time         `gorm:"default:null"`
	CancelAtPeriodEnd    bool               `gorm:"not null;default:false"`
	CreatedAt            time.Time          `gorm:"not null"`
	CancelledAt          *time.Time         `gorm:"default:null"`

	User  *User  `gorm:"foreignKey:UserID"`
	Order *Order `gorm:"foreignKey:OrderID"`
}
