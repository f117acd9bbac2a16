package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-admin/internal/application/auth"
	"github.com/jhoicas/pos-admin/internal/application/dto"
	"github.com/jhoicas/pos-admin/internal/domain"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
	domsales "github.com/jhoicas/pos-admin/internal/domain/sales"
	apphttp "github.com/jhoicas/pos-admin/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminToken  = "tok-admin"
	sellerToken = "tok-seller"
)

var (
	adminUser  = &entity.User{ID: 1, Username: "admin", Role: entity.RoleAdmin}
	sellerUser = &entity.User{ID: 2, Username: "seller1", Role: entity.RoleSeller}
)

type fakeAuth struct {
	loggedOut []string
}

func (f *fakeAuth) CurrentIdentity(_ context.Context, token string) (*auth.Identity, error) {
	switch token {
	case adminToken:
		return &auth.Identity{SessionID: "s-admin", User: adminUser}, nil
	case sellerToken:
		return &auth.Identity{SessionID: "s-seller", User: sellerUser}, nil
	}
	return nil, nil
}

func (f *fakeAuth) Login(_ context.Context, in dto.LoginRequest) (*auth.LoginResult, error) {
	if in.Username == "seller1" && in.Password == "1234" {
		return &auth.LoginResult{Token: sellerToken, ExpiresAt: time.Now().Add(time.Hour), User: sellerUser}, nil
	}
	return nil, domain.ErrAuthFailure
}

func (f *fakeAuth) Logout(_ context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

type fakeProducts struct {
	created []dto.ProductRequest
}

func (f *fakeProducts) Create(_ context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	f.created = append(f.created, in)
	return &dto.ProductResponse{ID: int64(len(f.created)), Name: in.Name, Price: in.Price, Stock: in.Stock}, nil
}

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*dto.ProductResponse, error) {
	if id == 1 {
		return &dto.ProductResponse{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 10}, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProducts) Update(_ context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	return &dto.ProductResponse{ID: id, Name: in.Name}, nil
}

func (f *fakeProducts) Delete(context.Context, int64) error { return nil }

func (f *fakeProducts) List(context.Context, string) ([]dto.ProductResponse, error) {
	return []dto.ProductResponse{{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 10}}, nil
}

func (f *fakeProducts) Search(_ context.Context, q string) (*dto.ProductSearchResponse, error) {
	return &dto.ProductSearchResponse{Products: []dto.ProductSummary{{ID: 1, Name: "Widget " + q}}}, nil
}

type fakeUsers struct {
	deleted []int64
}

func (f *fakeUsers) Create(_ context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "seller1" {
		return nil, domain.ErrDuplicateUsername
	}
	return &dto.UserResponse{ID: 9, Username: in.Username, Role: entity.RoleSeller}, nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	if id == adminUser.ID {
		return domain.ErrProtected
	}
	return nil
}

type fakeSales struct {
	recorded [][]domsales.ItemRef
}

func (f *fakeSales) RecordSaleLines(_ context.Context, sellerID int64, refs []domsales.ItemRef) (*entity.Sale, error) {
	f.recorded = append(f.recorded, refs)
	for _, r := range refs {
		switch {
		case r.Quantity < 1:
			return nil, domain.ErrInvalidInput
		case r.ProductID == 404:
			return nil, domain.ErrProductNotFound
		case r.Quantity > 10:
			return nil, domain.ErrInsufficientStock
		}
	}
	seller := sellerID
	return &entity.Sale{ID: 1, SellerID: &seller, Items: "1:3", Total: decimal.RequireFromString("29.97")}, nil
}

func (f *fakeSales) ListBySeller(context.Context, int64, int) ([]*entity.Sale, error) {
	return nil, nil
}

type fakeReports struct{}

func (fakeReports) Dashboard(context.Context) (*dto.DashboardResponse, error) {
	return &dto.DashboardResponse{View: "admin_dashboard"}, nil
}

func (fakeReports) ExportSalesCSV(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, "id,created_at,seller,total,items\n")
	return err
}

func (fakeReports) ExportSalesPDF(context.Context) ([]byte, error) {
	return []byte("%PDF-1.3"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app      *fiber.App
	auth     *fakeAuth
	products *fakeProducts
	users    *fakeUsers
	sales    *fakeSales
}

func newTestEnv(enableSetup bool) *testEnv {
	env := &testEnv{auth: &fakeAuth{}, products: &fakeProducts{}, users: &fakeUsers{}, sales: &fakeSales{}}
	env.app = fiber.New()
	apphttp.Router(env.app, apphttp.RouterDeps{
		AuthUC:      env.auth,
		ProductUC:   env.products,
		UserUC:      env.users,
		SalesUC:     env.sales,
		ReportUC:    fakeReports{},
		EnableSetup: enableSetup,
		Log:         zerolog.Nop(),
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token, contentType, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: token})
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func form(values map[string]string) string {
	v := url.Values{}
	for k, val := range values {
		v.Set(k, val)
	}
	return v.Encode()
}

const formType = "application/x-www-form-urlencoded"

func decodePOS(t *testing.T, resp *http.Response) dto.POSViewResponse {
	t.Helper()
	var out dto.POSViewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Gate por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestGate_PorRol(t *testing.T) {
	env := newTestEnv(false)

	cases := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"anónimo a admin", "/admin", "", fiber.StatusFound},
		{"seller a admin", "/admin", sellerToken, fiber.StatusFound},
		{"admin a admin", "/admin", adminToken, fiber.StatusOK},
		{"admin a pos", "/pos", adminToken, fiber.StatusFound},
		{"seller a pos", "/pos", sellerToken, fiber.StatusOK},
		{"anónimo a api", "/api/products?q=wid", "", fiber.StatusFound},
		{"admin a api", "/api/products?q=wid", adminToken, fiber.StatusOK},
		{"seller a api", "/api/products?q=wid", sellerToken, fiber.StatusOK},
		{"token desconocido", "/admin/users/new", "basura", fiber.StatusFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := env.do(t, http.MethodGet, tc.path, tc.token, "", "")
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.status == fiber.StatusFound {
				assert.Equal(t, "/login", resp.Header.Get("Location"))
			}
		})
	}
}

func TestGate_PostDenegadoNoEjecutaHandler(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodPost, "/admin/users/delete/5", sellerToken, "", "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Empty(t, env.users.deleted)

	resp = env.do(t, http.MethodPost, "/pos", adminToken, formType, form(map[string]string{"product_id": "1"}))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Empty(t, env.sales.recorded)
}

func TestCapability_Allows(t *testing.T) {
	assert.True(t, apphttp.CapabilityAny.Allows(entity.RoleAdmin))
	assert.True(t, apphttp.CapabilityAny.Allows(entity.RoleSeller))
	assert.False(t, apphttp.CapabilityAny.Allows("guest"))
	assert.True(t, apphttp.CapabilityAdmin.Allows(entity.RoleAdmin))
	assert.False(t, apphttp.CapabilityAdmin.Allows(entity.RoleSeller))
	assert.True(t, apphttp.CapabilitySeller.Allows(entity.RoleSeller))
	assert.False(t, apphttp.CapabilitySeller.Allows(entity.RoleAdmin))
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestIndex_RedirigePorRol(t *testing.T) {
	env := newTestEnv(false)
	assert.Equal(t, "/login", env.do(t, http.MethodGet, "/", "", "", "").Header.Get("Location"))
	assert.Equal(t, "/admin", env.do(t, http.MethodGet, "/", adminToken, "", "").Header.Get("Location"))
	assert.Equal(t, "/pos", env.do(t, http.MethodGet, "/", sellerToken, "", "").Header.Get("Location"))
}

func TestLogin_Exitoso_SeteaCookie(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodPost, "/login", "", formType, form(map[string]string{"username": "seller1", "password": "1234"}))

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session, "debe emitirse la cookie de sesión")
	assert.Equal(t, sellerToken, session.Value)
	assert.True(t, session.HttpOnly)
}

func TestLogin_CredencialesInvalidas_401(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodPost, "/login", "", fiber.MIMEApplicationJSON, `{"username":"seller1","password":"mala"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

func TestLogin_CamposVacios_400(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodPost, "/login", "", formType, form(map[string]string{"username": "  ", "password": ""}))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogout_BorraSesionYRedirige(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodGet, "/logout", sellerToken, "", "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Equal(t, []string{sellerToken}, env.auth.loggedOut)
}

// ──────────────────────────────────────────────────────────────────────────────
// POS
// ──────────────────────────────────────────────────────────────────────────────

func TestPOS_VentaExitosa(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodPost, "/pos", sellerToken, formType, form(map[string]string{"product_id": "1", "qty": "3"}))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodePOS(t, resp)
	require.NotNil(t, out.Flash)
	assert.Equal(t, "success", out.Flash.Level)
	assert.Contains(t, out.Flash.Message, "29.97")
	assert.Len(t, out.Products, 1)
	assert.Equal(t, [][]domsales.ItemRef{{{ProductID: 1, Quantity: 3}}}, env.sales.recorded)
}

func TestPOS_CantidadPorDefectoUno(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodPost, "/pos", sellerToken, formType, form(map[string]string{"product_id": "1"}))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), env.sales.recorded[0][0].Quantity)
}

func TestPOS_ProductoInexistente_FlashDanger(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodPost, "/pos", sellerToken, formType, form(map[string]string{"product_id": "404", "qty": "1"}))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodePOS(t, resp)
	require.NotNil(t, out.Flash)
	assert.Equal(t, "danger", out.Flash.Level)
	assert.Equal(t, "Producto no encontrado", out.Flash.Message)
}

func TestPOS_StockInsuficiente_FlashDanger(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodPost, "/pos", sellerToken, fiber.MIMEApplicationJSON, `{"product_id":1,"qty":11}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodePOS(t, resp)
	require.NotNil(t, out.Flash)
	assert.Equal(t, "danger", out.Flash.Level)
	assert.Equal(t, "Stock insuficiente", out.Flash.Message)
}

func TestPOS_VentaMultilineaJSON(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodPost, "/pos", sellerToken, fiber.MIMEApplicationJSON,
		`{"items":[{"product_id":1,"qty":3},{"product_id":2,"qty":1}]}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []domsales.ItemRef{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 1}}, env.sales.recorded[0])
}

func TestPOS_EntradaMalformada_400(t *testing.T) {
	env := newTestEnv(false)
	for name, body := range map[string]string{
		"qty no numérico":     form(map[string]string{"product_id": "1", "qty": "abc"}),
		"product_id ausente":  form(map[string]string{"qty": "1"}),
		"product_id inválido": form(map[string]string{"product_id": "x"}),
		"qty cero":            form(map[string]string{"product_id": "1", "qty": "0"}),
	} {
		t.Run(name, func(t *testing.T) {
			resp := env.do(t, http.MethodPost, "/pos", sellerToken, formType, body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestPOS_CantidadJSONInvalida_NoRegistraVenta(t *testing.T) {
	for name, body := range map[string]string{
		"qty cero":         `{"product_id":1,"qty":0}`,
		"qty negativa":     `{"product_id":1,"qty":-2}`,
		"qty enorme":       `{"product_id":1,"qty":1000000000}`,
		"línea con qty 0":  `{"items":[{"product_id":1,"qty":2},{"product_id":2,"qty":0}]}`,
		"línea sin qty":    `{"items":[{"product_id":1}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(false)
			resp := env.do(t, http.MethodPost, "/pos", sellerToken, fiber.MIMEApplicationJSON, body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Empty(t, env.sales.recorded, "no debe llegar al ledger")
		})
	}
}

func TestPOS_JSONSinQty_VendeUno(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodPost, "/pos", sellerToken, fiber.MIMEApplicationJSON, `{"product_id":1}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, [][]domsales.ItemRef{{{ProductID: 1, Quantity: 1}}}, env.sales.recorded)
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin
// ──────────────────────────────────────────────────────────────────────────────

func TestExportSalesCSV_Cabeceras(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodGet, "/admin/export/sales", adminToken, "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="sales_export.csv"`, resp.Header.Get("Content-Disposition"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "id,created_at,seller,total,items\n", string(body))
}

func TestExportSalesPDF_Cabeceras(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodGet, "/admin/export/sales.pdf", adminToken, "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="sales_report.pdf"`, resp.Header.Get("Content-Disposition"))
}

func TestCreateProduct_Formulario(t *testing.T) {
	env := newTestEnv(false)

	resp := env.do(t, http.MethodPost, "/admin/products/new", adminToken, formType,
		form(map[string]string{"name": "Widget", "price": "", "stock": ""}))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))
	require.Len(t, env.products.created, 1)
	assert.True(t, env.products.created[0].Price.IsZero(), "price vacío vale 0")
	assert.Zero(t, env.products.created[0].Stock)

	resp = env.do(t, http.MethodPost, "/admin/products/new", adminToken, formType,
		form(map[string]string{"name": "Widget", "price": "abc"}))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/admin/products/new", adminToken, formType,
		form(map[string]string{"name": "", "price": "1"}))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Len(t, env.products.created, 1)
}

func TestEditForm_ProductoInexistente_RedirigeAdmin(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodGet, "/admin/products/edit/99", adminToken, "", "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))

	resp = env.do(t, http.MethodGet, "/admin/products/edit/1", adminToken, "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCreateUser_Duplicado_409(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodPost, "/admin/users/new", adminToken, formType,
		form(map[string]string{"username": "seller1", "password": "x"}))
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestDeleteUser_AdminProtegido_Redirige(t *testing.T) {
	env := newTestEnv(false)
	resp := env.do(t, http.MethodPost, "/admin/users/delete/1", adminToken, "", "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))
	assert.Equal(t, []int64{1}, env.users.deleted)
}

func TestSetup_SoloSiEstaHabilitado(t *testing.T) {
	resp := newTestEnv(false).do(t, http.MethodGet, "/setup", "", "", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = newTestEnv(true).do(t, http.MethodGet, "/setup", "", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.SetupResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "admin / admin123", out.Admin)
}
