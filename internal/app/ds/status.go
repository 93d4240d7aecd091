package ds

// Статусы входящих заявок (RFQ и кластерные запросы разделяют один жизненный цикл)
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusReviewing RequestStatus = "reviewing"
	RequestStatusQuoted    RequestStatus = "quoted"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
)

// IsValid проверяет что статус входит в набор известных значений.
// Переходы между статусами намеренно не ограничиваются.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusReviewing, RequestStatusQuoted,
		RequestStatusAccepted, RequestStatusRejected:
		return true
	}
	return false
}

// Статусы коммерческого предложения
type QuoteStatus string

const (
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusViewed   QuoteStatus = "viewed"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusExpired  QuoteStatus = "expired"
	QuoteStatusRejected QuoteStatus = "rejected"
)

func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusSent, QuoteStatusViewed, QuoteStatusAccepted,
		QuoteStatusExpired, QuoteStatusRejected:
		return true
	}
	return false
}

// Статусы заказа (оплата и выдача ресурсов на стороне внешних сервисов)
type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "pending"
	OrderStatusPaid         OrderStatus = "paid"
	OrderStatusProvisioning OrderStatus = "provisioning"
	OrderStatusActive       OrderStatus = "active"
	OrderStatusCancelled    OrderStatus = "cancelled"
)

// Статусы подписки (зеркало состояния в Stripe)
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusPastDue   SubscriptionStatus = "past_due"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
)
