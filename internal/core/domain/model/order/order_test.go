package order_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Submitted state", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, "product-1", 2, 1990)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, id, o.ID())
		assert.Equal(t, "product-1", o.ProductID())
		assert.Equal(t, 2, o.Quantity())
		assert.Equal(t, int64(1990), o.AmountCents())
		assert.Equal(t, order.Submitted, o.State())
		assert.WithinDuration(t, time.Now().UTC(), o.PlacedAt(), time.Second)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, "product-1", 1, 100)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty product id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", 1, 100)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "productID")
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewOrder(kernel.NewUUID(), "product-1", quantity, 100)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "quantity is invalid")
		}
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "product-1", 1, -1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "amount is invalid")
	})

	t.Run("should allow zero amount", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "product-1", 1, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), o.AmountCents())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with stored state", func(t *testing.T) {
		id := kernel.NewUUID()
		placedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

		o, err := order.RestoreOrder(id, "product-1", 3, 4500, placedAt, order.Paid)

		require.NoError(t, err)
		assert.Equal(t, id, o.ID())
		assert.Equal(t, order.Paid, o.State())
		assert.Equal(t, placedAt, o.PlacedAt())
	})

	t.Run("should restore order in terminal state", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "product-1", 1, 100, time.Now().UTC(), order.Cancelled)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.State())
	})

	t.Run("should reject invalid stored state", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "product-1", 1, 100, time.Now().UTC(), order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "state is invalid")
	})

	t.Run("should reject invalid attributes", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "", 0, -1, time.Now().UTC(), order.Submitted)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for order created without constructor", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	first, err := order.NewOrder(id, "product-1", 1, 100)
	require.NoError(t, err)
	second, err := order.RestoreOrder(id, "product-2", 9, 900, time.Now().UTC(), order.Paid)
	require.NoError(t, err)
	third, err := order.NewOrder(kernel.NewUUID(), "product-1", 1, 100)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
	assert.False(t, first.IsEqual(nil))
}

func TestOrder_Apply(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), "product-1", 1, 100)
		require.NoError(t, err)
		return o
	}

	t.Run("should walk the happy path to Fulfilled", func(t *testing.T) {
		o := newOrder(t)

		target, err := o.Apply(order.Pay)
		require.NoError(t, err)
		assert.Equal(t, order.Paid, target)
		assert.Equal(t, order.Paid, o.State())

		target, err = o.Apply(order.Fulfill)
		require.NoError(t, err)
		assert.Equal(t, order.Fulfilled, target)
		assert.Equal(t, order.Fulfilled, o.State())
	})

	t.Run("should cancel from Submitted", func(t *testing.T) {
		o := newOrder(t)

		target, err := o.Apply(order.Cancel)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, target)
	})

	t.Run("should cancel from Paid", func(t *testing.T) {
		o := newOrder(t)
		_, err := o.Apply(order.Pay)
		require.NoError(t, err)

		target, err := o.Apply(order.Cancel)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, target)
	})

	t.Run("should leave state unchanged on rejection", func(t *testing.T) {
		o := newOrder(t)

		_, err := o.Apply(order.Fulfill)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Submitted, o.State())
	})

	t.Run("should reject any event on terminal state", func(t *testing.T) {
		o := newOrder(t)
		_, err := o.Apply(order.Cancel)
		require.NoError(t, err)

		for _, event := range []order.Event{order.Pay, order.Fulfill, order.Cancel} {
			_, err := o.Apply(event)

			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
			assert.Equal(t, order.Cancelled, o.State())
		}
	})
}
