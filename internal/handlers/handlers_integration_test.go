package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"petshop/internal/handlers"
	"petshop/internal/models"
	"petshop/internal/repositories"
	"petshop/internal/seed"
	"petshop/internal/services"
)

var dbCounter int64

// setupApp builds the full HTTP stack over a fresh in-memory SQLite
// database seeded with the sample inventory.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	// A uniquely named shared-cache database per test keeps GORM's
	// connection pool on one schema without leaking state across tests.
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Pet{}, &models.Order{}, &models.OrderItem{}))

	petRepo := repositories.NewGORMPetRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	_, err = seed.Pets(petRepo)
	require.NoError(t, err)

	inventoryService := services.NewInventoryService(petRepo)
	orderService := services.NewOrderService(orderRepo, petRepo, nil, false, nil)

	app := fiber.New()
	handlers.NewHealthHandler(db).RegisterRoutes(app)
	handlers.NewPetHandler(inventoryService, nil).RegisterRoutes(app)
	handlers.NewOrderHandler(orderService, nil).RegisterRoutes(app)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, buf.Bytes()
}

func orderBody(petIDs ...string) map[string]interface{} {
	return map[string]interface{}{
		"customer_name":    "John Doe",
		"customer_email":   "john@example.com",
		"customer_phone":   "555-0123",
		"delivery_address": "123 Main St, City, ST 12345",
		"pet_ids":          petIDs,
	}
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]string
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "connected", health["database"])
}

func TestListPets_FilterByTypeAndPrice(t *testing.T) {
	app, _ := setupApp(t)

	// Seeded dogs: pet001 ($1200), pet003 ($950), pet009 ($1500).
	resp, body := doJSON(t, app, http.MethodGet, "/pets?pet_type=dog&max_price=1000", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var pets []models.Pet
	require.NoError(t, json.Unmarshal(body, &pets))
	require.Len(t, pets, 1)
	assert.Equal(t, "pet003", pets[0].ID)
	assert.Equal(t, 950.0, pets[0].Price)
}

func TestListPets_BadFilterRejected(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/pets?pet_type=dragon", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/pets?min_age_months=9&max_age_months=3", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetPetByID(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/pets/pet003", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var pet models.Pet
	require.NoError(t, json.Unmarshal(body, &pet))
	assert.Equal(t, "Beagle", pet.Name)
	assert.True(t, pet.Available)

	resp, _ = doJSON(t, app, http.MethodGet, "/pets/pet999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateOrder_EndToEnd(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/orders", orderBody("pet003"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var order models.Order
	require.NoError(t, json.Unmarshal(body, &order))
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 950.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "pet003", order.Items[0].PetID)

	// The ordered pet is reserved afterwards.
	resp, body = doJSON(t, app, http.MethodGet, "/pets/pet003", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var pet models.Pet
	require.NoError(t, json.Unmarshal(body, &pet))
	assert.False(t, pet.Available)

	// And no longer listed by default.
	resp, body = doJSON(t, app, http.MethodGet, "/pets?pet_type=dog", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var dogs []models.Pet
	require.NoError(t, json.Unmarshal(body, &dogs))
	for _, d := range dogs {
		assert.NotEqual(t, "pet003", d.ID)
	}
}

func TestCreateOrder_TotalSurvivesPriceChange(t *testing.T) {
	app, db := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/orders", orderBody("pet005"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order models.Order
	require.NoError(t, json.Unmarshal(body, &order))
	assert.Equal(t, 150.0, order.TotalAmount)

	// Repricing the pet afterwards must not alter the historical order.
	require.NoError(t, db.Model(&models.Pet{}).Where("id = ?", "pet005").Update("price", 999.0).Error)

	resp, body = doJSON(t, app, http.MethodGet, "/orders/"+order.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Order
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, 150.0, fetched.TotalAmount)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, 150.0, fetched.Items[0].Price)
}

func TestCreateOrder_Failures(t *testing.T) {
	app, _ := setupApp(t)

	// Validation: missing customer fields.
	resp, _ := doJSON(t, app, http.MethodPost, "/orders", map[string]interface{}{
		"customer_name": "John Doe",
		"pet_ids":       []string{"pet001"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown pet.
	resp, _ = doJSON(t, app, http.MethodPost, "/orders", orderBody("pet999"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Conflict on an already-reserved pet.
	resp, _ = doJSON(t, app, http.MethodPost, "/orders", orderBody("pet002"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, body := doJSON(t, app, http.MethodPost, "/orders", orderBody("pet002"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var conflict map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &conflict))
	assert.Equal(t, "pet002", conflict["pet_id"])
}

func TestCreateOrder_MultiPetRollbackOverHTTP(t *testing.T) {
	app, _ := setupApp(t)

	// Reserve pet004 through a first order.
	resp, _ := doJSON(t, app, http.MethodPost, "/orders", orderBody("pet004"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// A multi-pet order including it fails as a whole.
	resp, _ = doJSON(t, app, http.MethodPost, "/orders", orderBody("pet005", "pet004", "pet006"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The other pets remain available.
	for _, id := range []string{"pet005", "pet006"} {
		resp, body := doJSON(t, app, http.MethodGet, "/pets/"+id, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var pet models.Pet
		require.NoError(t, json.Unmarshal(body, &pet))
		assert.True(t, pet.Available, "pet %s must still be available", id)
	}
}

func TestOrderStatusLifecycleOverHTTP(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/orders", orderBody("pet007"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order models.Order
	require.NoError(t, json.Unmarshal(body, &order))

	// GET /orders/{id}/status is idempotent.
	resp, first := doJSON(t, app, http.MethodGet, "/orders/"+order.ID+"/status", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, second := doJSON(t, app, http.MethodGet, "/orders/"+order.ID+"/status", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, string(first), string(second))
	assert.JSONEq(t, `{"status":"pending"}`, string(first))

	// Stepwise legal transitions.
	for _, next := range []string{"confirmed", "shipped", "delivered"} {
		resp, body = doJSON(t, app, http.MethodPut, "/orders/"+order.ID+"/status", map[string]string{"status": next})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var updated models.Order
		require.NoError(t, json.Unmarshal(body, &updated))
		assert.Equal(t, models.OrderStatus(next), updated.Status)
	}

	// Illegal transition out of the terminal state.
	resp, _ = doJSON(t, app, http.MethodPut, "/orders/"+order.ID+"/status", map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown order.
	resp, _ = doJSON(t, app, http.MethodPut, "/orders/ORD-MISSING1/status", map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/orders/ORD-MISSING1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListOrders(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(body, &orders))
	assert.Empty(t, orders)

	resp, _ = doJSON(t, app, http.MethodPost, "/orders", orderBody("pet008"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &orders))
	assert.Len(t, orders, 1)
}
