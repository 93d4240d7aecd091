package payments

import (
	"errors"
	"math"

	"backend/internal/app/config"

	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Пакет payments - тонкая граница со Stripe Checkout.
// Сервис только создаёт сессию и отдаёт URL, дальнейшая оплата,
// вебхуки и провижининг живут снаружи.

var ErrEmptyCart = errors.New("корзина пуста")

// Позиция корзины, передаваемая в Checkout
type CartItem struct {
	Name      string  `json:"name"`
	GPUType   string  `json:"gpu_type"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"` // USD за единицу
	Recurring bool    `json:"recurring"`  // помесячная аренда или разовая покупка
}

// Результат создания сессии
type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	Mode      string `json:"mode"`
}

type Client struct {
	api *client.API
	cfg config.StripeConfig
}

func NewClient(cfg config.StripeConfig) *Client {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &Client{api: api, cfg: cfg}
}

// CreateCheckoutSession создаёт сессию Stripe Checkout и возвращает URL
// для редиректа. Если в корзине есть хоть одна повторяющаяся позиция,
// сессия создаётся в режиме subscription.
func (c *Client) CreateCheckoutSession(items []CartItem, customerEmail string) (*CheckoutSession, error) {
	lineItems, mode, err := buildLineItems(items)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(mode)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(c.cfg.SuccessURL),
		CancelURL:  stripe.String(c.cfg.CancelURL),
	}
	if customerEmail != "" {
		params.CustomerEmail = stripe.String(customerEmail)
	}

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"session_id": session.ID,
		"mode":       mode,
	}).Info("checkout session created")

	return &CheckoutSession{
		SessionID: session.ID,
		URL:       session.URL,
		Mode:      string(mode),
	}, nil
}

// buildLineItems собирает позиции Checkout из корзины.
// Чистая функция, вынесена отдельно ради тестов без обращения к API.
func buildLineItems(items []CartItem) ([]*stripe.CheckoutSessionLineItemParams, stripe.CheckoutSessionMode, error) {
	if len(items) == 0 {
		return nil, "", ErrEmptyCart
	}

	mode := stripe.CheckoutSessionModePayment
	result := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))

	for _, item := range items {
		priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(string(stripe.CurrencyUSD)),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(item.Name),
			},
			UnitAmount: stripe.Int64(toCents(item.UnitPrice)),
		}

		if item.Recurring {
			mode = stripe.CheckoutSessionModeSubscription
			priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
				Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
			}
		}

		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}

		result = append(result, &stripe.CheckoutSessionLineItemParams{
			PriceData: priceData,
			Quantity:  stripe.Int64(int64(qty)),
		})
	}

	return result, mode, nil
}

// toCents переводит цену в центы с округлением до ближайшего
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
