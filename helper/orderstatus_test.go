package helper

import (
	"restro_pos/constants"
	"restro_pos/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveOrderStatus(t *testing.T) {
	tests := []struct {
		name  string
		items []model.OrderItem
		want  string
	}{
		{"no items", nil, constants.ORDER_STATUS_PENDING},
		{"single pending", []model.OrderItem{{Status: "Pending"}}, constants.ORDER_STATUS_PENDING},
		{"single completed", []model.OrderItem{{Status: "Completed"}}, constants.ORDER_STATUS_COMPLETED},
		{"mixed", []model.OrderItem{{Status: "Completed"}, {Status: "Pending"}}, constants.ORDER_STATUS_PENDING},
		{"all completed", []model.OrderItem{{Status: "Completed"}, {Status: "Completed"}}, constants.ORDER_STATUS_COMPLETED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveOrderStatus(tt.items))
		})
	}
}

func TestOrderBaseAmount(t *testing.T) {
	items := []model.OrderItem{
		{Price: 4.50, Quantity: 2},
		{Price: 7.90, Quantity: 1},
	}
	assert.Equal(t, 16.90, OrderBaseAmount(items, 0))
	assert.Equal(t, 11.90, OrderBaseAmount(items, 5))
	assert.Equal(t, 0.0, OrderBaseAmount(items, 100), "discount larger than subtotal floors at zero")
}

func TestOrderBaseAmountNoFloatDrift(t *testing.T) {
	// These sums drift in binary floats (0.1*3 = 0.30000000000000004).
	assert.Equal(t, 0.30, OrderBaseAmount([]model.OrderItem{{Price: 0.10, Quantity: 3}}, 0))
	assert.Equal(t, 0.01, OrderBaseAmount([]model.OrderItem{{Price: 0.07, Quantity: 3}}, 0.20))
}

func TestSyncOrderStatusPersists(t *testing.T) {
	db := newTestDB(t)

	order := model.Order{
		OwnerID: 1,
		Status:  constants.ORDER_STATUS_PENDING,
		Items: []model.OrderItem{
			{Name: "Cappuccino", Price: 4.50, Quantity: 2, Status: "Pending"},
			{Name: "Pancakes", Price: 7.90, Quantity: 1, Status: "Completed"},
		},
	}
	require.NoError(t, db.Create(&order).Error)

	status, err := SyncOrderStatus(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ORDER_STATUS_PENDING, status)

	require.NoError(t, db.Model(&model.OrderItem{}).
		Where("order_id = ?", order.ID).Update("status", "Completed").Error)

	status, err = SyncOrderStatus(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ORDER_STATUS_COMPLETED, status)

	var reloaded model.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, constants.ORDER_STATUS_COMPLETED, reloaded.Status)
	assert.NotNil(t, reloaded.CompletedAt)
}

func TestSyncOrderStatusDoesNotTouchSnapshots(t *testing.T) {
	db := newTestDB(t)

	order := model.Order{
		OwnerID: 1,
		Status:  constants.ORDER_STATUS_PENDING,
		Items: []model.OrderItem{
			{Name: "Cappuccino", Price: 4.50, Quantity: 1, Status: "Pending"},
			{Name: "Pancakes", Price: 7.90, Quantity: 1, Status: "Pending"},
		},
	}
	require.NoError(t, db.Create(&order).Error)

	require.NoError(t, db.Model(&model.OrderItem{}).
		Where("id = ?", order.Items[0].ID).Update("status", "Completed").Error)
	_, err := SyncOrderStatus(db, order.ID)
	require.NoError(t, err)

	var other model.OrderItem
	require.NoError(t, db.First(&other, order.Items[1].ID).Error)
	assert.Equal(t, "Pancakes", other.Name)
	assert.Equal(t, 7.90, other.Price)
	assert.Equal(t, "Pending", other.Status)
}

func TestSyncOrderStatusRecomputesBill(t *testing.T) {
	db := newTestDB(t)

	order := model.Order{
		OwnerID: 1,
		Status:  constants.ORDER_STATUS_PENDING,
		Items: []model.OrderItem{
			{Name: "Cappuccino", Price: 50, Quantity: 2, Status: "Pending"},
		},
	}
	require.NoError(t, db.Create(&order).Error)

	vat := 10.0
	bill := model.Bill{OwnerID: 1, OrderID: order.ID, VatLow: &vat, TotalAmount: 0}
	require.NoError(t, db.Create(&bill).Error)

	_, err := SyncOrderStatus(db, order.ID)
	require.NoError(t, err)

	var reloaded model.Bill
	require.NoError(t, db.First(&reloaded, bill.ID).Error)
	assert.Equal(t, 110.0, reloaded.TotalAmount)
}
