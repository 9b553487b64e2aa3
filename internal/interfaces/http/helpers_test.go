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
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/EmployeePortal-api/internal/application/auth"
	"github.com/jhoicas/EmployeePortal-api/internal/application/dto"
	"github.com/jhoicas/EmployeePortal-api/internal/application/usecase"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/entity"
	"github.com/jhoicas/EmployeePortal-api/internal/domain/repository"
	"github.com/jhoicas/EmployeePortal-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/EmployeePortal-api/internal/infrastructure/pdf"
	"github.com/jhoicas/EmployeePortal-api/internal/infrastructure/xmlexport"
	apphttp "github.com/jhoicas/EmployeePortal-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret        = "test-secret-key-for-unit-tests"
	testCookie        = "session"
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "Admin123"
	testUserEmail     = "jane@example.com"
	testUserPassword  = "Secret1"
)

type testEnv struct {
	app       *fiber.App
	employees *memory.EmployeeRepo
}

// newTestEnv arma la aplicación completa sobre el store en memoria con un admin y un usuario.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s := memory.NewStore()
	employees := memory.NewEmployeeRepository(s)
	authUC := auth.NewAuthUseCase(
		memory.NewUserRepository(s),
		memory.NewRoleRepository(s),
		memory.NewSessionRepository(s),
		memory.NewTxRunner(s),
		auth.SessionConfig{
			Secret:      testSecret,
			Issuer:      "employee-portal-test",
			IdleTimeout: 30 * time.Minute,
			RememberFor: 24 * time.Hour,
		},
	)
	ctx := context.Background()
	require.NoError(t, authUC.Bootstrap(ctx, testAdminEmail, testAdminPassword))
	_, err := authUC.Register(ctx, dto.RegisterRequest{Email: testUserEmail, Password: testUserPassword, ConfirmPassword: testUserPassword})
	require.NoError(t, err)

	app := apphttp.NewApp(apphttp.AppConfig{Name: "employee-portal-test"}, apphttp.RouterDeps{
		AuthUC:     authUC,
		EmployeeUC: usecase.NewEmployeeUseCase(employees, nil),
		ExportUC: usecase.NewExportUseCase(employees,
			infrapdf.NewMarotoPDFGenerator("employee-portal-test"),
			xmlexport.NewRosterXMLBuilder(),
		),
		Cookies: apphttp.CookieConfig{Name: testCookie},
		Storage: "memory",
	})
	return &testEnv{app: app, employees: employees}
}

// do lanza la petición; form no nil se envía como x-www-form-urlencoded.
func (e *testEnv) do(t *testing.T, method, path string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) doJSON(t *testing.T, method, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// login inicia sesión por HTTP y devuelve la cookie de sesión.
func (e *testEnv) login(t *testing.T, email, password string) *http.Cookie {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/Account/Login", url.Values{"Email": {email}, "Password": {password}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	c := cookieNamed(resp, testCookie)
	require.NotNil(t, c, "el login debe emitir la cookie de sesión")
	return c
}

func (e *testEnv) seedEmployee(t *testing.T, name string) *entity.Employee {
	t.Helper()
	emp := &entity.Employee{
		FullName:   name,
		Department: entity.DepartmentIT,
		Type:       entity.EmployeeTypeFullTime,
		Position:   "Software Developer",
	}
	require.NoError(t, e.employees.Create(context.Background(), emp))
	return emp
}

func (e *testEnv) count(t *testing.T) int {
	t.Helper()
	all, err := e.employees.ListAll(context.Background(), repository.EmployeeFilter{})
	require.NoError(t, err)
	return len(all)
}

func cookieNamed(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name && c.Value != "" {
			return c
		}
	}
	return nil
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func employeeForm(name string) url.Values {
	return url.Values{
		"FullName":   {name},
		"Department": {"IT"},
		"Type":       {"FullTime"},
		"Position":   {"Software Developer"},
		"Salary":     {"50000"},
	}
}
