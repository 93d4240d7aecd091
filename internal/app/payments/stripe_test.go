package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
)

func TestBuildLineItemsOneTime(t *testing.T) {
	items := []CartItem{
		{Name: "NVIDIA H100 SXM", Quantity: 2, UnitPrice: 29999.99},
	}

	lineItems, mode, err := buildLineItems(items)
	require.NoError(t, err)

	assert.Equal(t, stripe.CheckoutSessionModePayment, mode)
	require.Len(t, lineItems, 1)
	assert.Equal(t, int64(2), *lineItems[0].Quantity)
	assert.Equal(t, int64(2999999), *lineItems[0].PriceData.UnitAmount)
	assert.Nil(t, lineItems[0].PriceData.Recurring)
}

func TestBuildLineItemsSubscriptionMode(t *testing.T) {
	items := []CartItem{
		{Name: "NVIDIA H100 SXM", Quantity: 1, UnitPrice: 30000},
		{Name: "Аренда DGX H100", Quantity: 1, UnitPrice: 4000, Recurring: true},
	}

	lineItems, mode, err := buildLineItems(items)
	require.NoError(t, err)

	// хоть одна повторяющаяся позиция переводит сессию в subscription
	assert.Equal(t, stripe.CheckoutSessionModeSubscription, mode)
	require.Len(t, lineItems, 2)
	require.NotNil(t, lineItems[1].PriceData.Recurring)
	assert.Equal(t, "month", *lineItems[1].PriceData.Recurring.Interval)
}

func TestBuildLineItemsEmptyCart(t *testing.T) {
	_, _, err := buildLineItems(nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildLineItemsQuantityFloor(t *testing.T) {
	items := []CartItem{{Name: "H200", Quantity: 0, UnitPrice: 100}}

	lineItems, _, err := buildLineItems(items)
	require.NoError(t, err)
	assert.Equal(t, int64(1), *lineItems[0].Quantity)
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(400000), toCents(4000))
	assert.Equal(t, int64(1999), toCents(19.99))
	// округление до ближайшего цента
	assert.Equal(t, int64(1000), toCents(9.999))
}
