package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/payments"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CreateCheckout создаёт заказ и Stripe Checkout-сессию.
// Сервис отдаёт URL для редиректа, оплата и вебхуки живут на стороне Stripe.
// @Summary Создание Checkout-сессии
// @Description Сохраняет заказ со снимком корзины и возвращает URL оплаты
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body dto.CreateCheckoutRequest true "Корзина"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/checkout [post]
func (h *APIHandler) CreateCheckout(c *gin.Context) {
	var request dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cartItems := make([]payments.CartItem, len(request.Items))
	var subtotal float64
	recurring := false
	for i, item := range request.Items {
		cartItems[i] = payments.CartItem{
			Name:      item.Name,
			GPUType:   item.GPUType,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Recurring: item.Recurring,
		}
		subtotal += float64(item.Quantity) * item.UnitPrice
		if item.Recurring {
			recurring = true
		}
	}

	itemsJSON, err := json.Marshal(cartItems)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректная корзина")
		return
	}

	billingCycle := "one_time"
	if recurring {
		billingCycle = "monthly"
	}

	order := ds.Order{
		OrderNumber:  fmt.Sprintf("ORD-%d-%s", time.Now().UnixNano(), uuid.New().String()[:8]),
		QuoteID:      request.QuoteID,
		Items:        itemsJSON,
		Subtotal:     subtotal,
		Total:        subtotal,
		Status:       ds.OrderStatusPending,
		BillingCycle: billingCycle,
	}

	if err := h.Repository.CreateOrder(&order); err != nil {
		logrus.Error("Error creating order: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания заказа")
		return
	}

	session, err := h.Payments.CreateCheckoutSession(cartItems, request.Email)
	if err != nil {
		logrus.Error("Error creating checkout session: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания платёжной сессии")
		return
	}

	if err := h.Repository.AttachStripeSession(order.ID, session.SessionID); err != nil {
		logrus.Error("Error attaching stripe session to order: ", err)
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		OrderNumber: order.OrderNumber,
		SessionID:   session.SessionID,
		URL:         session.URL,
		Mode:        session.Mode,
	})
}
