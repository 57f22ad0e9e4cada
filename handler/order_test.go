package handler_test

import (
	"fmt"
	"net/http"
	"restro_pos/database"
	"restro_pos/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, ownerId uint, name string, price float64, recipe model.Recipe) model.Product {
	t.Helper()
	product := model.Product{
		OwnerID:   ownerId,
		Name:      name,
		Slug:      fmt.Sprintf("%s-%d", name, ownerId),
		Price:     price,
		Available: true,
		Recipe:    recipe,
	}
	require.NoError(t, database.DB.Create(&product).Error)
	return product
}

func seedInventory(t *testing.T, ownerId uint, name string, quantity float64) model.InventoryItem {
	t.Helper()
	item := model.InventoryItem{OwnerID: ownerId, Name: name, Quantity: quantity, Unit: "g"}
	require.NoError(t, database.DB.Create(&item).Error)
	return item
}

func seedTable(t *testing.T, ownerId uint, number int) model.Table {
	t.Helper()
	table := model.Table{OwnerID: ownerId, TableNumber: number, Capacity: 4}
	require.NoError(t, database.DB.Create(&table).Error)
	return table
}

func seedCustomer(t *testing.T, ownerId uint, points int) model.Customer {
	t.Helper()
	customer := model.Customer{OwnerID: ownerId, Name: "Sam", Phone: "0600000001", Points: points}
	require.NoError(t, database.DB.Create(&customer).Error)
	return customer
}

func TestCreateOrderFlow(t *testing.T) {
	app := newTestApp(t)
	token := authToken(t, 1)
	product := seedProduct(t, 1, "Cappuccino", 4.50, model.Recipe{{Name: "Coffee Beans", Quantity: 18, Unit: "g"}})
	seedInventory(t, 1, "Coffee Beans", 100)
	table := seedTable(t, 1, 1)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/order", token, map[string]any{
		"items":         []map[string]any{{"productId": product.ID, "quantity": 2}},
		"tableNumber":   table.TableNumber,
		"paymentMethod": "CASH",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)

	orderId := uint(data["id"].(float64))
	assert.Equal(t, fmt.Sprintf("ORD%06d", orderId), data["publicCode"])
	assert.Equal(t, 9.0, data["totalAmount"])
	assert.Equal(t, "Pending", data["status"])

	var reloadedTable model.Table
	require.NoError(t, database.DB.First(&reloadedTable, table.ID).Error)
	assert.True(t, reloadedTable.Occupied)

	var stock model.InventoryItem
	require.NoError(t, database.DB.Where("owner_id = ? AND name = ?", 1, "Coffee Beans").First(&stock).Error)
	assert.Equal(t, 64.0, stock.Quantity) // 100 - 18*2
}

func TestCreateOrderRejectsRedeemBeyondBalance(t *testing.T) {
	app := newTestApp(t)
	token := authToken(t, 1)
	product := seedProduct(t, 1, "Latte", 5.00, nil)
	customer := seedCustomer(t, 1, 5)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/order", token, map[string]any{
		"items":         []map[string]any{{"productId": product.ID, "quantity": 1}},
		"customerId":    customer.ID,
		"redeemPoints":  10,
		"paymentMethod": "CASH",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateOrderSpendsOnlyConvertedPoints(t *testing.T) {
	app := newTestApp(t)
	token := authToken(t, 1)
	product := seedProduct(t, 1, "Latte", 10.00, nil)
	customer := seedCustomer(t, 1, 100)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/order", token, map[string]any{
		"items":         []map[string]any{{"productId": product.ID, "quantity": 1}},
		"customerId":    customer.ID,
		"redeemPoints":  100,
		"paymentMethod": "CARD",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeData(t, resp)

	// Discount caps at the subtotal; points beyond it are not spent.
	assert.Equal(t, 10.0, data["discountAmount"])
	assert.Equal(t, 0.0, data["totalAmount"])

	var reloaded model.Customer
	require.NoError(t, database.DB.First(&reloaded, customer.ID).Error)
	assert.Equal(t, 90, reloaded.Points)
	assert.Equal(t, 1, reloaded.OrderCount)
}

func TestCompleteOrderFreesTable(t *testing.T) {
	app := newTestApp(t)
	token := authToken(t, 1)
	product := seedProduct(t, 1, "Tea", 3.00, nil)
	table := seedTable(t, 1, 2)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/order", token, map[string]any{
		"items":         []map[string]any{{"productId": product.ID, "quantity": 1}},
		"tableNumber":   table.TableNumber,
		"paymentMethod": "CASH",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	orderId := uint(decodeData(t, resp)["id"].(float64))

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/order/%d/complete", orderId), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Completed", decodeData(t, resp)["orderStatus"])

	var reloadedTable model.Table
	require.NoError(t, database.DB.First(&reloadedTable, table.ID).Error)
	assert.False(t, reloadedTable.Occupied)
}

func TestOrderCodeLookupIsPublic(t *testing.T) {
	app := newTestApp(t)
	order := seedOrder(t, 1)
	require.NoError(t, database.DB.Model(&order).Update("public_code", "ORD000042").Error)

	// Guests get the progress view without a token.
	resp := doJSON(t, app, http.MethodGet, "/api/v1/order/code/ORD000042", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Equal(t, "ORD000042", data["publicCode"])
	assert.Equal(t, "Pending", data["status"])
	assert.NotContains(t, data, "ownerId")
	assert.NotContains(t, data, "paymentReference")

	// Another business sees the same trimmed view, not the full record.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/order/code/ORD000042", authToken(t, 2), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, decodeData(t, resp), "paymentReference")

	// The owning business gets the full record.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/order/code/ORD000042", authToken(t, 1), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, decodeData(t, resp), "paymentReference")
}

func TestCreateProductRejectsInvalidRecipe(t *testing.T) {
	app := newTestApp(t)
	token := authToken(t, 1)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/product", token, map[string]any{
		"name":   "Mocha",
		"price":  5.50,
		"recipe": []map[string]any{{"name": "", "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/product", token, map[string]any{
		"name":   "Mocha",
		"price":  5.50,
		"recipe": []map[string]any{{"name": "Cocoa", "quantity": 0}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
