package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"restro_pos/database"
	"restro_pos/helper"
	"restro_pos/model"
	"restro_pos/router"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Owner{},
		&model.PasswordResetToken{},
		&model.Customer{},
		&model.Table{},
		&model.Product{},
		&model.InventoryItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Bill{},
	))
	database.DB = db

	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

func seedOrder(t *testing.T, ownerId uint) model.Order {
	t.Helper()

	order := model.Order{
		OwnerID:     ownerId,
		PublicCode:  "ORD000001",
		TotalAmount: 16.90,
		Status:      "Pending",
		Items: []model.OrderItem{
			{Name: "Cappuccino", Price: 4.50, Quantity: 2, Status: "Pending"},
			{Name: "Pancakes", Price: 7.90, Quantity: 1, Status: "Pending"},
		},
	}
	require.NoError(t, database.DB.Create(&order).Error)
	return order
}

func authToken(t *testing.T, ownerId uint) string {
	t.Helper()
	token, err := helper.GenerateAccessToken(model.TokenClaim{OwnerId: ownerId, Email: "owner@test.local"})
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func TestUpsertBillChargesIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	order := seedOrder(t, 1)
	token := authToken(t, 1)

	charges := map[string]any{"vatLow": 10, "vatHigh": 5}
	target := fmt.Sprintf("/api/v1/bill/%d/charges", order.ID)

	resp := doJSON(t, app, http.MethodPost, target, token, charges)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := decodeData(t, resp)

	resp = doJSON(t, app, http.MethodPost, target, token, charges)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decodeData(t, resp)

	// base 16.90, vatLow 1.69, vatHigh 0.85
	assert.Equal(t, 19.44, first["totalAmount"])
	assert.Equal(t, first["totalAmount"], second["totalAmount"])
}

func TestUpsertBillChargesRejectsOutOfRangeRates(t *testing.T) {
	app := newTestApp(t)
	order := seedOrder(t, 1)
	token := authToken(t, 1)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/bill/%d/charges", order.ID), token,
		map[string]any{"vatLow": 120})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBillEndpointsEnforceOwnership(t *testing.T) {
	app := newTestApp(t)
	order := seedOrder(t, 1)
	otherToken := authToken(t, 2)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/bill/%d/charges", order.ID), otherToken,
		map[string]any{"vatLow": 10})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/bill/%d", order.ID), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestBillChargesRequireAuth(t *testing.T) {
	app := newTestApp(t)
	order := seedOrder(t, 1)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/bill/%d/charges", order.ID), "",
		map[string]any{"vatLow": 10})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPatchItemStatusRecomputesOrderAndBill(t *testing.T) {
	app := newTestApp(t)
	order := seedOrder(t, 1)
	token := authToken(t, 1)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/bill/%d/charges", order.ID), token,
		map[string]any{"vatLow": 10})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, item := range order.Items {
		resp = doJSON(t, app, http.MethodPatch,
			fmt.Sprintf("/api/v1/order/%d/item/%d", order.ID, item.ID), token,
			map[string]any{"status": "Completed"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	data := decodeData(t, resp)
	assert.Equal(t, "Completed", data["orderStatus"])

	var reloaded model.Order
	require.NoError(t, database.DB.First(&reloaded, order.ID).Error)
	assert.Equal(t, "Completed", reloaded.Status)

	// Bill total stays consistent with the unchanged items and rates.
	var bill model.Bill
	require.NoError(t, database.DB.Where("order_id = ?", order.ID).First(&bill).Error)
	assert.Equal(t, 18.59, bill.TotalAmount) // 16.90 + 1.69
}

func TestStoreLinkCreatesBillLazilyWithExpiry(t *testing.T) {
	app := newTestApp(t)
	order := seedOrder(t, 1)
	token := authToken(t, 1)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/bill/%d/store-link", order.ID), token,
		map[string]any{"storeLink": "https://img.test/bills/bill_1", "storeItemId": "bills/bill_1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var bill model.Bill
	require.NoError(t, database.DB.Where("order_id = ?", order.ID).First(&bill).Error)
	require.NotNil(t, bill.StoreItemID)
	assert.Equal(t, "bills/bill_1", *bill.StoreItemID)
	assert.Nil(t, bill.ModifiedStoreItemID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), bill.ExpiresAt, time.Minute)
	// No rates yet: total is the plain base amount.
	assert.Equal(t, 16.90, bill.TotalAmount)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/bill/%d/store-link?modified=true", order.ID), token,
		map[string]any{"storeLink": "https://img.test/bills/bill_1_mod", "storeItemId": "bills/bill_1_mod"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, database.DB.Where("order_id = ?", order.ID).First(&bill).Error)
	require.NotNil(t, bill.ModifiedStoreItemID)
	assert.Equal(t, "bills/bill_1_mod", *bill.ModifiedStoreItemID)
	assert.Equal(t, "bills/bill_1", *bill.StoreItemID, "modified variant must not clobber the original")
}
