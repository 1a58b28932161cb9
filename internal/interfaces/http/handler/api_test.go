package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auditapp "github.com/celly/backoffice/internal/application/audit"
	businessapp "github.com/celly/backoffice/internal/application/business"
	catalogapp "github.com/celly/backoffice/internal/application/catalog"
	"github.com/celly/backoffice/internal/application/identity"
	orderapp "github.com/celly/backoffice/internal/application/order"
	partnerapp "github.com/celly/backoffice/internal/application/partner"
	paymentapp "github.com/celly/backoffice/internal/application/payment"
	reportapp "github.com/celly/backoffice/internal/application/report"
	"github.com/celly/backoffice/internal/infrastructure/auth"
	"github.com/celly/backoffice/internal/infrastructure/config"
	"github.com/celly/backoffice/internal/infrastructure/persistence"
	"github.com/celly/backoffice/internal/interfaces/http/dto"
	"github.com/celly/backoffice/internal/interfaces/http/handler"
	"github.com/celly/backoffice/internal/interfaces/http/router"
	"github.com/celly/backoffice/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCookieName = "celly_session"

type testServer struct {
	engine *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewTestDB(t)

	categoryRepo := persistence.NewGormCategoryRepository(db)
	collectionRepo := persistence.NewGormCollectionRepository(db)
	productRepo := persistence.NewGormProductRepository(db)
	groupRepo := persistence.NewGormGroupRepository(db)
	methodRepo := persistence.NewGormMethodRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	userRepo := persistence.NewGormUserRepository(db)
	errorLogRepo := persistence.NewGormErrorLogRepository(db)
	businessRepo := persistence.NewGormBusinessRepository(db)

	sessions := auth.NewSessionService(config.SessionConfig{
		Secret:     "test-secret-test-secret-test-secret",
		Expiration: time.Hour,
		Issuer:     "celly-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	authService := identity.NewAuthService(userRepo, sessions, blacklist)

	recorder := auditapp.NewRecorder(errorLogRepo, zap.NewNop())
	base := handler.NewBaseHandler(recorder)

	handlers := router.Handlers{
		Auth:          handler.NewAuthHandler(base, authService, testCookieName, time.Hour),
		Category:      handler.NewCategoryHandler(base, catalogapp.NewCategoryService(categoryRepo)),
		Collection:    handler.NewCollectionHandler(base, catalogapp.NewCollectionService(collectionRepo)),
		Product:       handler.NewProductHandler(base, catalogapp.NewProductService(productRepo, categoryRepo)),
		Group:         handler.NewGroupHandler(base, partnerapp.NewGroupService(groupRepo)),
		PaymentMethod: handler.NewPaymentMethodHandler(base, paymentapp.NewMethodService(methodRepo)),
		Order:         handler.NewOrderHandler(base, orderapp.NewService(orderRepo, groupRepo, methodRepo, productRepo)),
		Report:        handler.NewReportHandler(base, reportapp.NewService(orderRepo, groupRepo, methodRepo)),
		Business:      handler.NewBusinessHandler(base, businessapp.NewProfileService(businessRepo)),
		ErrorLog:      handler.NewErrorLogHandler(base, recorder),
	}

	engine := gin.New()
	router.Setup(engine, router.Config{
		AuthService:       authService,
		SessionCookieName: testCookieName,
		Logger:            zap.NewNop(),
	}, handlers)

	return &testServer{engine: engine}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// signIn registers a fresh user and returns their session token
func (s *testServer) signIn(t *testing.T) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/v1/auth/register", "", identity.RegisterRequest{
		Name:            "Maria",
		Email:           fmt.Sprintf("maria-%d@example.com", time.Now().UnixNano()),
		Password:        "super-secret",
		ConfirmPassword: "super-secret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var session identity.SessionResponse
	decodeData(t, w, &session)
	require.NotEmpty(t, session.Token)
	return session.Token
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t)

	// Mismatched confirmation never creates an account
	w := srv.do(t, http.MethodPost, "/api/v1/auth/register", "", identity.RegisterRequest{
		Name:            "Ana",
		Email:           "ana@example.com",
		Password:        "super-secret",
		ConfirmPassword: "something-else",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_PASSWORD_CONFIRMATION", resp.Error.Code)

	w = srv.do(t, http.MethodPost, "/api/v1/auth/login", "", identity.LoginRequest{
		Email:    "ana@example.com",
		Password: "super-secret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.do(t, http.MethodPost, "/api/v1/auth/register", "", identity.RegisterRequest{
		Name:            "Ana",
		Email:           "ana@example.com",
		Password:        "super-secret",
		ConfirmPassword: "super-secret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var session identity.SessionResponse
	decodeData(t, w, &session)
	assert.Equal(t, "Ana", session.User.Name)
	assert.NotEmpty(t, session.Token)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, testCookieName, cookies[0].Name)

	// Duplicate email is rejected
	w = srv.do(t, http.MethodPost, "/api/v1/auth/register", "", identity.RegisterRequest{
		Name:            "Ana",
		Email:           "ana@example.com",
		Password:        "super-secret",
		ConfirmPassword: "super-secret",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Wrong password
	w = srv.do(t, http.MethodPost, "/api/v1/auth/login", "", identity.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Correct password
	w = srv.do(t, http.MethodPost, "/api/v1/auth/login", "", identity.LoginRequest{
		Email:    "ana@example.com",
		Password: "super-secret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &session)

	// Session resolves the signed-in user
	w = srv.do(t, http.MethodGet, "/api/v1/auth/session", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user identity.UserResponse
	decodeData(t, w, &user)
	assert.Equal(t, "ana@example.com", user.Email)

	// Logout revokes the token
	w = srv.do(t, http.MethodPost, "/api/v1/auth/logout", session.Token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = srv.do(t, http.MethodGet, "/api/v1/auth/session", session.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionHeaderFallback(t *testing.T) {
	srv := newTestServer(t)
	token := srv.signIn(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("X-API-Key", token)

	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/v1/categories", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error.Code)

	w = srv.do(t, http.MethodGet, "/api/v1/categories", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStorefrontIsPublic(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/api/v1/storefront/categories",
		"/api/v1/storefront/collections",
		"/api/v1/storefront/products",
	} {
		w := srv.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestCategoryCRUD(t *testing.T) {
	srv := newTestServer(t)
	token := srv.signIn(t)

	w := srv.do(t, http.MethodPost, "/api/v1/categories", token, catalogapp.CreateCategoryRequest{
		Name:        "Perfumes",
		Description: "Fragrances and splashes",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created catalogapp.CategoryResponse
	decodeData(t, w, &created)
	assert.Equal(t, "Perfumes", created.Name)
	assert.False(t, created.Public)

	w = srv.do(t, http.MethodGet, "/api/v1/categories/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodGet, "/api/v1/categories", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []catalogapp.CategoryListResponse
	decodeData(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, int64(0), list[0].ProductsCount)

	name := "Fragrances"
	public := true
	w = srv.do(t, http.MethodPut, "/api/v1/categories/"+created.ID.String(), token, catalogapp.UpdateCategoryRequest{
		Name:   &name,
		Public: &public,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated catalogapp.CategoryResponse
	decodeData(t, w, &updated)
	assert.Equal(t, "Fragrances", updated.Name)
	assert.True(t, updated.Public)

	// Public category now shows on the storefront
	w = srv.do(t, http.MethodGet, "/api/v1/storefront/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var publicList []catalogapp.CategoryResponse
	decodeData(t, w, &publicList)
	assert.Len(t, publicList, 1)

	w = srv.do(t, http.MethodDelete, "/api/v1/categories/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = srv.do(t, http.MethodGet, "/api/v1/categories/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do(t, http.MethodGet, "/api/v1/categories/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The missing-row lookup lands in the error log
	w = srv.do(t, http.MethodGet, "/api/v1/error-logs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []handler.ErrorLogResponse
	decodeData(t, w, &logs)
	require.NotEmpty(t, logs)
	assert.Contains(t, logs[0].Info, "/api/v1/categories/")
}

func TestOrderEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := srv.signIn(t)

	var category catalogapp.CategoryResponse
	w := srv.do(t, http.MethodPost, "/api/v1/categories", token, catalogapp.CreateCategoryRequest{
		Name:        "Cosmetics",
		Description: "Skin care",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	decodeData(t, w, &category)

	var group partnerapp.GroupResponse
	w = srv.do(t, http.MethodPost, "/api/v1/groups", token, partnerapp.CreateGroupRequest{
		Name: "Familia Silva",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	decodeData(t, w, &group)

	var method paymentapp.MethodResponse
	w = srv.do(t, http.MethodPost, "/api/v1/payment-methods", token, map[string]any{
		"name":     "Pix",
		"tax_rate": "5",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	decodeData(t, w, &method)

	var product catalogapp.ProductResponse
	w = srv.do(t, http.MethodPost, "/api/v1/products", token, map[string]any{
		"name":        "Body Splash",
		"description": "200ml",
		"price":       "100",
		"cost":        "60",
		"quantity":    10,
		"available":   true,
		"category_id": category.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	decodeData(t, w, &product)

	w = srv.do(t, http.MethodPost, "/api/v1/orders", token, map[string]any{
		"group_id":          group.ID,
		"payment_method_id": method.ID,
		"order_date":        time.Now().UTC().Format(time.RFC3339),
		"items": []map[string]any{
			{
				"product_id": product.ID,
				"name":       "Body Splash",
				"price":      "100",
				"cost":       "60",
				"profit":     "40",
				"quantity":   2,
			},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created orderapp.OrderResponse
	decodeData(t, w, &created)
	assert.Equal(t, "200", created.Total.String())
	assert.Equal(t, "75", created.Profit.String())
	require.Len(t, created.Items, 1)

	// Unknown product reference
	w = srv.do(t, http.MethodPost, "/api/v1/orders", token, map[string]any{
		"group_id":          group.ID,
		"payment_method_id": method.ID,
		"order_date":        time.Now().UTC().Format(time.RFC3339),
		"items": []map[string]any{
			{
				"product_id": "3f9d1c63-5f50-4f2b-9f98-000000000000",
				"name":       "Ghost",
				"price":      "10",
				"quantity":   1,
			},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_PRODUCT", resp.Error.Code)

	// Unknown payment-method reference
	w = srv.do(t, http.MethodPost, "/api/v1/orders", token, map[string]any{
		"group_id":          group.ID,
		"payment_method_id": "3f9d1c63-5f50-4f2b-9f98-000000000001",
		"order_date":        time.Now().UTC().Format(time.RFC3339),
		"items":             []map[string]any{},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp = decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_PAYMENT_METHOD", resp.Error.Code)

	// Both missing-reference failures were audited
	w = srv.do(t, http.MethodGet, "/api/v1/error-logs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []handler.ErrorLogResponse
	decodeData(t, w, &logs)
	require.Len(t, logs, 2)
	assert.Contains(t, logs[0].Info, "/api/v1/orders")
	require.NotNil(t, logs[0].UserID)

	// Listing includes the created order with its item count
	w = srv.do(t, http.MethodGet, "/api/v1/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []orderapp.OrderListResponse
	decodeData(t, w, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "Familia Silva", orders[0].GroupName)

	// Group search carries pagination meta
	w = srv.do(t, http.MethodGet, "/api/v1/orders/search?group_id="+group.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	paged := decodeResponse(t, w)
	require.NotNil(t, paged.Meta)
	assert.Equal(t, int64(1), paged.Meta.Total)
	assert.False(t, paged.Meta.NextPage)

	w = srv.do(t, http.MethodDelete, "/api/v1/orders/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = srv.do(t, http.MethodGet, "/api/v1/orders/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReportInvalidRange(t *testing.T) {
	srv := newTestServer(t)
	token := srv.signIn(t)

	w := srv.do(t, http.MethodPost, "/api/v1/reports", token, map[string]any{
		"from": "2026-02-01T00:00:00Z",
		"to":   "2026-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_RANGE", resp.Error.Code)
}

func TestBusinessProfileDefaults(t *testing.T) {
	srv := newTestServer(t)
	token := srv.signIn(t)

	w := srv.do(t, http.MethodGet, "/api/v1/business", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile businessapp.ProfileResponse
	decodeData(t, w, &profile)
	assert.NotEmpty(t, profile.Name)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
