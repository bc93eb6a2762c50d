package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-api/config"
	"restaurant-api/models"
)

func TestRegisterLoginScenario(t *testing.T) {
	r, ts := setupServer(t)

	// register alice as customer
	w := doJSON(r, http.MethodPost, "/api/register", "", map[string]any{
		"username": "alice", "password": "secret1", "role": "customer",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "created", body["status"])
	assert.NotZero(t, body["id"])

	// correct password returns a token decodable to the customer role
	w = doJSON(r, http.MethodPost, "/api/login", "", map[string]any{
		"username": "alice", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "customer", body["role"])
	claims, err := ts.Parse(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, models.RoleCustomer, claims.Role)

	// wrong password
	w = doJSON(r, http.MethodPost, "/api/login", "", map[string]any{
		"username": "alice", "password": "secret2",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// duplicate username
	w = doJSON(r, http.MethodPost, "/api/register", "", map[string]any{
		"username": "alice", "password": "another6",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "exists")
}

func TestRegisterRoleHandling(t *testing.T) {
	r, _ := setupServer(t)

	// role defaults to customer
	w := doJSON(r, http.MethodPost, "/api/register", "", map[string]any{
		"username": "bob", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var user models.User
	require.NoError(t, config.DB.Where("username = ?", "bob").First(&user).Error)
	assert.Equal(t, models.RoleCustomer, user.Role)

	// driver is allowed
	w = doJSON(r, http.MethodPost, "/api/register", "", map[string]any{
		"username": "dave", "password": "secret1", "role": "driver",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// staff cannot self-register
	w = doJSON(r, http.MethodPost, "/api/register", "", map[string]any{
		"username": "mallory", "password": "secret1", "role": "staff",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginMissingFields(t *testing.T) {
	r, _ := setupServer(t)

	w := doJSON(r, http.MethodPost, "/api/login", "", map[string]any{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/login", "", map[string]any{"password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginByEmail(t *testing.T) {
	r, _ := setupServer(t)
	user := seedUser(t, "carol", "secret1", models.RoleCustomer)
	require.NoError(t, config.DB.Model(user).Update("email", "carol@example.com").Error)

	w := doJSON(r, http.MethodPost, "/api/login", "", map[string]any{
		"email": "carol@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginMigratesLegacyPlaintext(t *testing.T) {
	r, _ := setupServer(t)

	// legacy row stored with cleartext material
	legacy := models.User{Username: "oldtimer", Password: "hunter2", Role: models.RoleCustomer}
	require.NoError(t, config.DB.Create(&legacy).Error)

	w := doJSON(r, http.MethodPost, "/api/login", "", map[string]any{
		"username": "oldtimer", "password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// stored material was rewritten to a hash
	var migrated models.User
	require.NoError(t, config.DB.First(&migrated, legacy.ID).Error)
	assert.NotEqual(t, "hunter2", migrated.Password)
	assert.Contains(t, migrated.Password, "$2")

	// replaying the same login still works, now via the hashed path
	w = doJSON(r, http.MethodPost, "/api/login", "", map[string]any{
		"username": "oldtimer", "password": "hunter2",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// and the old cleartext no longer matches anything else
	w = doJSON(r, http.MethodPost, "/api/login", "", map[string]any{
		"username": "oldtimer", "password": "hunter3",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresAuth(t *testing.T) {
	r, ts := setupServer(t)
	user := seedUser(t, "alice", "secret1", models.RoleCustomer)

	w := doJSON(r, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/profile", tokenFor(t, ts, user), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	assert.NotContains(t, w.Body.String(), "secret1")
}
