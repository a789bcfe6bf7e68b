package config

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/internal/api/presenters"
	"HomeChef-Backend/internal/utils"
	"HomeChef-Backend/internal/utils/mailing"
	"HomeChef-Backend/internal/utils/testdb"
	"HomeChef-Backend/pkg/jwt"
	"HomeChef-Backend/pkg/midtrans"
	"HomeChef-Backend/pkg/push/pushtest"
	"HomeChef-Backend/pkg/session"

	"github.com/gofiber/fiber/v2"
	midtransgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noSocial struct{}

func (noSocial) Verify(context.Context, string) (string, error) {
	return "", domain.ErrSocialLoginDisabled
}

type stubSnap struct{}

func (stubSnap) CreateTransaction(req *snap.Request) (*snap.Response, *midtransgo.Error) {
	return &snap.Response{Token: "token-" + req.TransactionDetails.OrderID}, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	utils.SetConfig("OTP_FIXED_CODE", "123456")
	utils.SetConfig("SERVER_KEY", "server-key")

	app, err := NewApp(Dependencies{
		DB:       testdb.New(t),
		Sessions: session.NewMemoryStore(),
		Push:     pushtest.NewRecorder(),
		Mailer:   mailing.NewMailer(mailing.MailConfig{}),
		Social:   noSocial{},
		Snap:     stubSnap{},
		JWT:      jwt.NewJWTService("test-secret", time.Hour),
	})
	require.NoError(t, err)
	return app
}

type envelope struct {
	presenters.Response
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	return res.StatusCode, env
}

func signUp(t *testing.T, app *fiber.App, email, role string) domain.AuthResponse {
	t.Helper()

	status, env := call(t, app, http.MethodPost, "/api/v1/register", "", domain.RegisterRequest{
		FirstName: "Sari",
		LastName:  "Dewi",
		Email:     email,
		UserType:  role,
	})
	require.Equal(t, fiber.StatusCreated, status)
	var registered domain.RegisterResponse
	require.NoError(t, json.Unmarshal(env.Data, &registered))

	status, _ = call(t, app, http.MethodPost, "/api/v1/verify-otp", "", domain.VerifyOtpRequest{
		UserID: registered.UserID,
		Code:   "123456",
	})
	require.Equal(t, fiber.StatusOK, status)

	status, env = call(t, app, http.MethodPost, "/api/v1/set-password", "", domain.SetPasswordRequest{
		UserID:   registered.UserID,
		Password: "secret123",
	})
	require.Equal(t, fiber.StatusOK, status)
	var auth domain.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(t, auth.Token)
	return auth
}

func TestPing(t *testing.T) {
	app := newTestApp(t)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/v1/user", "/api/v1/home", "/api/v1/orders", "/api/v1/chef/orders"} {
		status, env := call(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, status, path)
		assert.False(t, env.Success, path)
		assert.Equal(t, domain.MessageFailedUnauthorized, env.Message, path)
	}

	status, _ := call(t, app, http.MethodGet, "/api/v1/user", "not-a-token", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRegisterValidationErrors(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodPost, "/api/v1/register", "", map[string]string{
		"first_name": "Sari",
		"email":      "not-an-email",
		"user_type":  "admin",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.False(t, env.Success)
	assert.Equal(t, domain.MessageFailedValidation, env.Message)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Errors, &fields))
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "last_name")
	assert.Contains(t, fields, "user_type")
}

func TestSessionLifecycle(t *testing.T) {
	app := newTestApp(t)
	auth := signUp(t, app, "sari@example.com", domain.RoleCustomer)

	status, env := call(t, app, http.MethodGet, "/api/v1/user", auth.Token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var me domain.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "sari@example.com", me.Email)

	status, env = call(t, app, http.MethodPost, "/api/v1/refresh", auth.Token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var refreshed domain.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &refreshed))

	// the refreshed-away token is revoked
	status, _ = call(t, app, http.MethodGet, "/api/v1/user", auth.Token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = call(t, app, http.MethodPost, "/api/v1/logout", refreshed.Token, nil)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = call(t, app, http.MethodGet, "/api/v1/user", refreshed.Token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestErrorKindsMapToStatus(t *testing.T) {
	app := newTestApp(t)
	customer := signUp(t, app, "customer@example.com", domain.RoleCustomer)

	// wrong role
	status, env := call(t, app, http.MethodGet, "/api/v1/chef/orders", customer.Token, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.False(t, env.Success)

	// missing resource
	status, _ = call(t, app, http.MethodGet, "/api/v1/orders/2f0c8a8e-1f7b-4f4e-9a55-1f2e3d4c5b6a", customer.Token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	// unknown discovery filter
	status, _ = call(t, app, http.MethodGet, "/api/v1/chefs?filter=cheapest", customer.Token, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestOrderFlowOverHTTP(t *testing.T) {
	app := newTestApp(t)
	chef := signUp(t, app, "chef@example.com", domain.RoleChef)
	customer := signUp(t, app, "customer@example.com", domain.RoleCustomer)

	status, env := call(t, app, http.MethodPost, "/api/v1/orders", customer.Token, map[string]any{
		"to_id":          chef.User.ID,
		"order_type":     "delivery",
		"amount":         20,
		"delivery_fee":   3,
		"service_fee":    1,
		"address":        "Jl. Sudirman 1",
		"payment_method": "cash",
		"lat":            -6.2,
		"lng":            106.8,
		"cartItems": []map[string]any{
			{"id": "2f0c8a8e-1f7b-4f4e-9a55-1f2e3d4c5b6a", "name": "Rendang", "quantity": 2, "price": 10},
		},
	})
	require.Equal(t, fiber.StatusCreated, status)
	var created domain.OrderResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	// only the chef of the order moves its status
	status, _ = call(t, app, http.MethodPut, "/api/v1/chef/orders/"+created.ID+"/status", customer.Token, map[string]string{"status": "accepted"})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = call(t, app, http.MethodPut, "/api/v1/chef/orders/"+created.ID+"/status", chef.Token, map[string]string{"status": "completed"})
	require.Equal(t, fiber.StatusOK, status)

	status, env = call(t, app, http.MethodPut, "/api/v1/chef/orders/"+created.ID+"/status", chef.Token, map[string]string{"status": "cancelled"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)

	status, _ = call(t, app, http.MethodPost, "/api/v1/orders/"+created.ID+"/review", customer.Token, map[string]any{"rating": 5})
	require.Equal(t, fiber.StatusCreated, status)
	status, _ = call(t, app, http.MethodPost, "/api/v1/orders/"+created.ID+"/review", customer.Token, map[string]any{"rating": 4})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = call(t, app, http.MethodGet, "/api/v1/user", chef.Token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var me domain.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.InDelta(t, 23, me.Balance, 0.001)
}

func TestMidtransWebhookSignature(t *testing.T) {
	app := newTestApp(t)

	status, env := call(t, app, http.MethodPost, "/webhook/midtrans", "", domain.MidtransNotificationRequest{
		OrderID:           "2f0c8a8e-1f7b-4f4e-9a55-1f2e3d4c5b6a",
		StatusCode:        "200",
		GrossAmount:       "10000.00",
		TransactionStatus: "settlement",
		SignatureKey:      "forged",
	})
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.False(t, env.Success)

	customer := signUp(t, app, "payer@example.com", domain.RoleCustomer)
	status, env = call(t, app, http.MethodPost, "/api/v1/payment/create-intent", customer.Token, domain.CreatePaymentIntentRequest{
		Amount:   10000,
		Currency: "IDR",
	})
	require.Equal(t, fiber.StatusOK, status)
	var intent domain.PaymentIntentResponse
	require.NoError(t, json.Unmarshal(env.Data, &intent))

	n := domain.MidtransNotificationRequest{
		OrderID:           intent.PaymentIntentID,
		StatusCode:        "200",
		GrossAmount:       "10000.00",
		TransactionStatus: "settlement",
	}
	n.SignatureKey = midtrans.Signature(n.OrderID, n.StatusCode, n.GrossAmount, "server-key")
	status, _ = call(t, app, http.MethodPost, "/webhook/midtrans", "", n)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestUploadWithoutStorage(t *testing.T) {
	app := newTestApp(t)
	customer := signUp(t, app, "uploader@example.com", domain.RoleCustomer)

	status, env := call(t, app, http.MethodPost, "/api/v1/upload", customer.Token, nil)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.False(t, env.Success)
}
