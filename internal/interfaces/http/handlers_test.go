package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/invoice-dashboard/internal/application/auth"
	"github.com/tu-usuario/invoice-dashboard/internal/application/dto"
	"github.com/tu-usuario/invoice-dashboard/internal/application/invoices"
	"github.com/tu-usuario/invoice-dashboard/internal/domain/entity"
	apphttp "github.com/tu-usuario/invoice-dashboard/internal/interfaces/http"
	"github.com/tu-usuario/invoice-dashboard/pkg/config"
	"github.com/tu-usuario/invoice-dashboard/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de persistencia y cache
// ──────────────────────────────────────────────────────────────────────────────

type memInvoiceRepo struct {
	created []*entity.Invoice
	updated []*entity.Invoice
	deleted []string
	rows    []*entity.ListedInvoice
}

func (m *memInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	m.created = append(m.created, inv)
	return nil
}

func (m *memInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	m.updated = append(m.updated, inv)
	return nil
}

func (m *memInvoiceRepo) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	for _, li := range m.rows {
		if li.ID == id {
			inv := li.Invoice
			return &inv, nil
		}
	}
	return nil, nil
}

func (m *memInvoiceRepo) List(_ context.Context) ([]*entity.ListedInvoice, error) {
	return m.rows, nil
}

type memCustomerRepo struct {
	rows []*entity.Customer
}

func (m *memCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	return m.rows, nil
}

type memUserRepo struct {
	user *entity.User
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if m.user != nil && m.user.Email == email {
		return m.user, nil
	}
	return nil, nil
}

type noopCache struct {
	invalidations int
}

func (n *noopCache) Get(_ context.Context) ([]*entity.ListedInvoice, bool, error) {
	return nil, false, nil
}
func (n *noopCache) Set(_ context.Context, _ []*entity.ListedInvoice) error { return nil }
func (n *noopCache) Invalidate(_ context.Context) error {
	n.invalidations++
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app      *fiber.App
	cfg      config.SessionConfig
	invoices *memInvoiceRepo
	cache    *noopCache
}

func buildTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.SessionConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		CookieName: "session",
		Issuer:     "invoice-dashboard-test",
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)

	invoiceRepo := &memInvoiceRepo{}
	cacheFake := &noopCache{}
	invoiceUC := invoices.NewUseCase(invoiceRepo, &memCustomerRepo{}, cacheFake, logger.Nop())
	authUC := auth.NewUseCase(&memUserRepo{user: &entity.User{
		ID:           "u1",
		Name:         "User",
		Email:        "user@nextmail.com",
		PasswordHash: string(hash),
	}}, logger.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		InvoiceUC: invoiceUC,
		AuthUC:    authUC,
		Session:   cfg,
	})
	return &testEnv{app: app, cfg: cfg, invoices: invoiceRepo, cache: cacheFake}
}

// postForm lanza un POST application/x-www-form-urlencoded con cookie de sesión.
func (e *testEnv) postForm(t *testing.T, path string, form url.Values, withSession bool) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if withSession {
		req.AddCookie(sessionCookie(t, e.cfg))
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeState(t *testing.T, resp *http.Response) dto.State {
	t.Helper()
	var state dto.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	return state
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests acciones de factura
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_FormularioValido_RedirigeAlListado(t *testing.T) {
	env := buildTestEnv(t)

	form := url.Values{"customer_id": {"c1"}, "amount": {"50.00"}, "status": {"paid"}}
	resp := env.postForm(t, "/dashboard/invoices", form, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard/invoices", resp.Header.Get("Location"))

	require.Len(t, env.invoices.created, 1)
	assert.Equal(t, int64(5000), env.invoices.created[0].Amount)
	assert.Equal(t, 1, env.cache.invalidations)
}

func TestCreateInvoice_MontoInvalido_DevuelveErroresPorCampo(t *testing.T) {
	env := buildTestEnv(t)

	form := url.Values{"customer_id": {"c1"}, "amount": {"-3"}, "status": {"paid"}}
	resp := env.postForm(t, "/dashboard/invoices", form, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	state := decodeState(t, resp)
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", state.Message)
	assert.Equal(t, []string{"Please enter a number greater than £0"}, state.Errors["amount"])
	assert.Empty(t, env.invoices.created)
}

func TestCreateInvoice_SinSesion_ElGateRedirige(t *testing.T) {
	env := buildTestEnv(t)

	form := url.Values{"customer_id": {"c1"}, "amount": {"50.00"}, "status": {"paid"}}
	resp := env.postForm(t, "/dashboard/invoices", form, false)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Empty(t, env.invoices.created, "sin sesión la acción nunca corre")
}

func TestUpdateInvoice_RedirigeYNoMandaFecha(t *testing.T) {
	env := buildTestEnv(t)

	form := url.Values{"customer_id": {"c2"}, "amount": {"19.99"}, "status": {"pending"}}
	resp := env.postForm(t, "/dashboard/invoices/inv-1", form, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Len(t, env.invoices.updated, 1)
	assert.Equal(t, "inv-1", env.invoices.updated[0].ID)
	assert.Equal(t, int64(1999), env.invoices.updated[0].Amount)
	assert.True(t, env.invoices.updated[0].Date.IsZero())
}

func TestDeleteInvoice_IdInexistente_RedirigeIgual(t *testing.T) {
	env := buildTestEnv(t)

	resp := env.postForm(t, "/dashboard/invoices/no-existe/delete", url.Values{}, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, []string{"no-existe"}, env.invoices.deleted)
	assert.Equal(t, 1, env.cache.invalidations)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_CredencialesCorrectas_CookieYRedirect(t *testing.T) {
	env := buildTestEnv(t)

	form := url.Values{"email": {"user@nextmail.com"}, "password": {"123456"}}
	resp := env.postForm(t, "/login", form, false)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	var found bool
	for _, ck := range resp.Cookies() {
		if ck.Name == env.cfg.CookieName && ck.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "el login exitoso debe setear la cookie de sesión")
}

func TestAuthenticate_PasswordIncorrecta_InvalidCredentials(t *testing.T) {
	env := buildTestEnv(t)

	form := url.Values{"email": {"user@nextmail.com"}, "password": {"654321"}}
	resp := env.postForm(t, "/login", form, false)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid Credentials", decodeState(t, resp).Message)
}

func TestAuthenticate_PasswordCorta_InvalidCredentials(t *testing.T) {
	env := buildTestEnv(t)

	form := url.Values{"email": {"user@nextmail.com"}, "password": {"12345"}}
	resp := env.postForm(t, "/login", form, false)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid Credentials", decodeState(t, resp).Message)
}

func TestLogout_ExpiraCookieYRedirigeARaiz(t *testing.T) {
	env := buildTestEnv(t)

	resp := env.postForm(t, "/dashboard/logout", url.Values{}, true)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	var cleared bool
	for _, ck := range resp.Cookies() {
		if ck.Name == env.cfg.CookieName && ck.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared, "el logout debe expirar la cookie de sesión")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests lecturas del dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestListInvoices_DevuelveFilasConCliente(t *testing.T) {
	env := buildTestEnv(t)
	env.invoices.rows = []*entity.ListedInvoice{
		{Invoice: entity.Invoice{ID: "inv-1", CustomerID: "c1", Amount: 5000, Status: "paid"}, CustomerName: "Evil Rabbit", CustomerEmail: "evil@rabbit.com"},
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	req.AddCookie(sessionCookie(t, env.cfg))
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []dto.ListedInvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Evil Rabbit", rows[0].CustomerName)
	assert.Equal(t, int64(5000), rows[0].Amount)
}

func TestGetInvoice_Inexistente_Retorna404(t *testing.T) {
	env := buildTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices/no-existe", nil)
	req.AddCookie(sessionCookie(t, env.cfg))
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
