package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-api/config"
	"restaurant-api/models"
)

func TestDeliveryLifecycle(t *testing.T) {
	r, ts := setupServer(t)
	staff := seedUser(t, "boss", "secret1", models.RoleStaff)
	driver := seedUser(t, "dave", "secret1", models.RoleDriver)
	customer := seedUser(t, "alice", "secret1", models.RoleCustomer)
	order := seedOrderWithItems(t, customer.ID, models.StatusReady)
	staffToken := tokenFor(t, ts, staff)
	driverToken := tokenFor(t, ts, driver)

	// staff assigns the order to the driver
	w := doJSON(r, http.MethodPost, "/api/deliveries", staffToken, map[string]any{
		"order_id": order.ID, "worker_id": driver.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// second assignment for the same order is rejected
	w = doJSON(r, http.MethodPost, "/api/deliveries", staffToken, map[string]any{
		"order_id": order.ID, "worker_id": driver.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// driver moves it along; start time is stamped
	w = doJSON(r, http.MethodPut, "/api/deliveries/1", driverToken, map[string]any{"status": "on_the_way"})
	require.Equal(t, http.StatusOK, w.Code)
	var delivery models.Delivery
	require.NoError(t, config.DB.First(&delivery, 1).Error)
	assert.Equal(t, models.DeliveryOnTheWay, delivery.Status)
	assert.NotNil(t, delivery.StartedAt)
	assert.Nil(t, delivery.EndedAt)

	w = doJSON(r, http.MethodPut, "/api/deliveries/1", driverToken, map[string]any{"status": "delivered"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, config.DB.First(&delivery, 1).Error)
	assert.Equal(t, models.DeliveryDelivered, delivery.Status)
	assert.NotNil(t, delivery.EndedAt)

	// the order's own status machine is untouched
	var reloaded models.Order
	require.NoError(t, config.DB.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.StatusReady, reloaded.Status)
}

func TestDeliveryValidation(t *testing.T) {
	r, ts := setupServer(t)
	staff := seedUser(t, "boss", "secret1", models.RoleStaff)
	driver := seedUser(t, "dave", "secret1", models.RoleDriver)
	customer := seedUser(t, "alice", "secret1", models.RoleCustomer)
	order := seedOrderWithItems(t, customer.ID, models.StatusReady)
	staffToken := tokenFor(t, ts, staff)

	// missing order
	w := doJSON(r, http.MethodPost, "/api/deliveries", staffToken, map[string]any{
		"order_id": 999, "worker_id": driver.ID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// missing worker
	w = doJSON(r, http.MethodPost, "/api/deliveries", staffToken, map[string]any{
		"order_id": order.ID, "worker_id": 999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// bad status value
	doJSON(r, http.MethodPost, "/api/deliveries", staffToken, map[string]any{
		"order_id": order.ID, "worker_id": driver.ID,
	})
	w = doJSON(r, http.MethodPut, "/api/deliveries/1", staffToken, map[string]any{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeliveryRoleGating(t *testing.T) {
	r, ts := setupServer(t)
	customer := seedUser(t, "alice", "secret1", models.RoleCustomer)

	w := doJSON(r, http.MethodGet, "/api/deliveries", tokenFor(t, ts, customer), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, "/api/deliveries", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
