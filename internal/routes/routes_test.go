package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/bookhaven/bookhaven-backend/internal/config"
	"github.com/bookhaven/bookhaven-backend/internal/database"
	"github.com/bookhaven/bookhaven-backend/internal/dto"
	"github.com/bookhaven/bookhaven-backend/internal/handlers"
	"github.com/bookhaven/bookhaven-backend/internal/services"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
		BooksAPIURL:     "http://127.0.0.1:1",
		BooksAPITimeout: time.Second,
		BooksMaxResults: 12,
		BooksLang:       "es",
		AdminEmail:      "admin@bookhaven.com",
		AdminPassword:   "admin123",
		AdminName:       "Administrador",
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.MigrateModels(db))
	require.NoError(t, database.Seed(db, cfg))

	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db)
	booksService := services.NewBooksService(cfg)
	gateway := services.NewSimulatedGateway()
	orderService := services.NewOrderService(db, gateway)

	configHandler := handlers.NewStoreConfigHandler(db)
	configHandler.SeedDefaults()

	app := fiber.New()
	Setup(app, cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewCatalogHandler(catalogService),
		handlers.NewBooksHandler(booksService),
		handlers.NewPaymentHandler(gateway),
		handlers.NewOrderHandler(orderService),
		handlers.NewHealthHandler(db),
		configHandler,
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func register(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: email, Password: password,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var auth dto.AuthResponse
	decode(t, resp, &auth)
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

func checkoutPayload(items []dto.CheckoutItem, total float64) dto.CheckoutRequest {
	return dto.CheckoutRequest{
		CustomerName:     "Alice",
		CustomerLastname: "Doe",
		CustomerAddress:  "Av. Siempre Viva 742",
		CustomerCity:     "Buenos Aires",
		CustomerZip:      "1406",
		CardNumber:       "4111111111111111",
		CardHolder:       "ALICE DOE",
		CardExpiry:       "12/27",
		CardCVV:          "123",
		Items:            items,
		Total:            total,
	}
}

func TestEndToEndCheckoutFlow(t *testing.T) {
	app := newTestApp(t)

	register(t, app, "alice@example.com", "secret1")

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "alice@example.com", Password: "secret1",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var auth dto.AuthResponse
	decode(t, resp, &auth)
	token := auth.Token

	resp = doJSON(t, app, fiber.MethodGet, "/api/products", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var products []map[string]interface{}
	decode(t, resp, &products)
	assert.Len(t, products, 6)

	resp = doJSON(t, app, fiber.MethodPost, "/api/orders", token,
		checkoutPayload([]dto.CheckoutItem{{ID: "1", Qty: 2}}, 9000))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var checkout dto.CheckoutResponse
	decode(t, resp, &checkout)
	assert.Equal(t, "success", checkout.Status)
	assert.NotEmpty(t, checkout.OrderID)

	resp = doJSON(t, app, fiber.MethodGet, "/api/orders", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var orders []dto.OrderSummary
	decode(t, resp, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, checkout.OrderID, orders[0].ID)
	assert.EqualValues(t, 1, orders[0].ItemsCount)
	assert.InDelta(t, 9000, orders[0].Total, 0.001)
	assert.Equal(t, "alice@example.com", orders[0].CustomerEmail)
	assert.Equal(t, "****-****-****-1111", orders[0].CardNumber)
}

func TestOrderListingIsOwnerScoped(t *testing.T) {
	app := newTestApp(t)

	aliceToken := register(t, app, "alice@example.com", "secret1")
	bobToken := register(t, app, "bob@example.com", "secret2")

	resp := doJSON(t, app, fiber.MethodPost, "/api/orders", aliceToken,
		checkoutPayload([]dto.CheckoutItem{{ID: "1", Qty: 1}}, 4500))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/orders", bobToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var orders []dto.OrderSummary
	decode(t, resp, &orders)
	assert.Empty(t, orders)
}

func TestProductsRequireCredential(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/products", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/products", "not-a-token", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestVerifyEchoesIdentity(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "alice@example.com", "secret1")

	resp := doJSON(t, app, fiber.MethodGet, "/api/auth/verify", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var verify dto.VerifyResponse
	decode(t, resp, &verify)
	assert.Equal(t, "alice@example.com", verify.User.Email)
}

func TestExternalBooksShortQuery(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "alice@example.com", "secret1")

	resp := doJSON(t, app, fiber.MethodGet, "/api/external-books?search=a", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterConflict(t *testing.T) {
	app := newTestApp(t)
	register(t, app, "alice@example.com", "secret1")

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "alice@example.com", Password: "other",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLoginFailures(t *testing.T) {
	app := newTestApp(t)
	register(t, app, "alice@example.com", "secret1")

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "nobody@example.com", Password: "secret1",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPaymentEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "alice@example.com", "secret1")

	resp := doJSON(t, app, fiber.MethodPost, "/api/payment", token, dto.PaymentRequest{Amount: 4500})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var payment dto.PaymentResponse
	decode(t, resp, &payment)
	assert.Equal(t, "success", payment.Status)
	assert.NotEmpty(t, payment.Tx)

	resp = doJSON(t, app, fiber.MethodPost, "/api/payment", token, dto.PaymentRequest{Amount: 0})
	require.Equal(t, fiber.StatusPaymentRequired, resp.StatusCode)
	decode(t, resp, &payment)
	assert.Equal(t, "declined", payment.Status)
}

func TestCheckoutTotalMismatchRejected(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "alice@example.com", "secret1")

	resp := doJSON(t, app, fiber.MethodPost, "/api/orders", token,
		checkoutPayload([]dto.CheckoutItem{{ID: "1", Qty: 2}}, 100))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHealthAndConfigArePublic(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/health", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var health dto.HealthResponse
	decode(t, resp, &health)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "ok", health.DB)

	resp = doJSON(t, app, fiber.MethodGet, "/api/config", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var storeCfg map[string]interface{}
	decode(t, resp, &storeCfg)
	assert.Equal(t, "ARS", storeCfg["currency"])
	assert.Equal(t, true, storeCfg["external_search_enabled"])
}

func TestAuthRateLimit(t *testing.T) {
	app := newTestApp(t)

	var lastStatus int
	for i := 0; i < 12; i++ {
		resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{
			Email: fmt.Sprintf("u%d@example.com", i), Password: "x",
		})
		lastStatus = resp.StatusCode
	}
	assert.Equal(t, fiber.StatusTooManyRequests, lastStatus)
}
