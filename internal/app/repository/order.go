package repository

import "backend/internal/app/ds"

func (r *Repository) CreateOrder(order *ds.Order) error {
	return r.db.Create(order).Error
}

func (r *Repository) GetOrderByNumber(number string) (*ds.Order, error) {
	var order ds.Order
	if err := r.db.Where("order_number = ?", number).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) GetOrdersByUser(userID uint) ([]ds.Order, error) {
	var orders []ds.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Repository) UpdateOrderStatus(id uint, status ds.OrderStatus) error {
	return r.db.Model(&ds.Order{}).Where("id = ?", id).Update("status", status).Error
}

// AttachStripeSession сохраняет идентификатор Checkout-сессии после её создания
func (r *Repository) AttachStripeSession(orderID uint, sessionID string) error {
	return r.db.Model(&ds.Order{}).Where("id = ?", orderID).
		Update("stripe_session_id", sessionID).Error
}

func (r *Repository) GetSubscriptionsByUser(userID uint) ([]ds.Subscription, error) {
	var subs []ds.Subscription
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *Repository) CreateSubscription(sub *ds.Subscription) error {
	return r.db.Create(sub).Error
}
