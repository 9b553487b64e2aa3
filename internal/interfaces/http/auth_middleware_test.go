package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/EmployeePortal-api/internal/application/dto"
	apphttp "github.com/jhoicas/EmployeePortal-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestRoutes_EscriturasSoloAdmin(t *testing.T) {
	var admin int
	for _, r := range apphttp.Routes() {
		mutating := strings.HasPrefix(r.Path, "/Employee/Create") ||
			strings.HasPrefix(r.Path, "/Employee/Update") ||
			strings.HasPrefix(r.Path, "/Employee/Delete")
		if mutating {
			assert.Equal(t, apphttp.AccessAdmin, r.Access, "%s %s", r.Method, r.Path)
			assert.NotEmpty(t, r.Action, "%s %s", r.Method, r.Path)
			admin++
		}
		if strings.HasPrefix(r.Path, "/Employee/") && r.Path != "/Employee/GetPositions" {
			assert.NotEqual(t, apphttp.AccessPublic, r.Access, "%s %s", r.Method, r.Path)
		}
	}
	assert.Equal(t, 6, admin, "GET y POST de Create, Update y Delete")
}

func TestAccess_String(t *testing.T) {
	assert.Equal(t, "public", apphttp.AccessPublic.String())
	assert.Equal(t, "admin", apphttp.AccessAdmin.String())
	assert.Equal(t, "unknown", apphttp.Access(99).String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Sin sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestGate_SinSesionRedirigeALogin(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/Employee/List", "/Employee/Details/1", "/Employee/Create", "/Employee/Export"} {
		resp := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, apphttp.PathLogin, resp.Header.Get("Location"), path)
	}
}

func TestGate_SinSesionClienteJSON(t *testing.T) {
	env := newTestEnv(t)
	resp := env.doJSON(t, http.MethodGet, "/Employee/List")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "UNAUTHENTICATED", body.Code)
}

func TestGate_CookieInvalidaSeBorra(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/Employee/List", nil, &http.Cookie{Name: testCookie, Value: "no-es-un-token"})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.PathLogin, resp.Header.Get("Location"))

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == testCookie && c.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared, "la cookie inválida debe expirarse")
}

func TestGate_SinSesionNoMuta(t *testing.T) {
	env := newTestEnv(t)
	env.seedEmployee(t, "Ana")

	resp := env.do(t, http.MethodPost, "/Employee/Delete/1", url.Values{})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, 1, env.count(t))
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuario sin rol Admin
// ──────────────────────────────────────────────────────────────────────────────

func TestGate_UsuarioNoAdminRechazadoEnEscrituras(t *testing.T) {
	env := newTestEnv(t)
	emp := env.seedEmployee(t, "Ana")
	session := env.login(t, testUserEmail, testUserPassword)

	cases := []struct {
		method string
		path   string
		form   url.Values
		action string
	}{
		{http.MethodGet, "/Employee/Create", nil, "create"},
		{http.MethodPost, "/Employee/Create", employeeForm("Intrusa"), "create"},
		{http.MethodGet, fmt.Sprintf("/Employee/Update/%d", emp.ID), nil, "update"},
		{http.MethodPost, fmt.Sprintf("/Employee/Update/%d", emp.ID), employeeForm("Cambiada"), "update"},
		{http.MethodGet, fmt.Sprintf("/Employee/Delete/%d", emp.ID), nil, "delete"},
		{http.MethodPost, fmt.Sprintf("/Employee/Delete/%d", emp.ID), url.Values{}, "delete"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp := env.do(t, tc.method, tc.path, tc.form, session)
			require.Equal(t, http.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, apphttp.PathEmployeeList, resp.Header.Get("Location"))

			flash := cookieNamed(resp, "flash")
			require.NotNil(t, flash)
			list := env.doJSON(t, http.MethodGet, "/Employee/List", session, flash)
			require.Equal(t, http.StatusOK, list.StatusCode)
			var out dto.EmployeeListResponse
			decode(t, list, &out)
			require.NotNil(t, out.Flash)
			assert.Equal(t, dto.FlashError, out.Flash.Kind)
			assert.Equal(t, "You do not have permission to "+tc.action+" employees.", out.Flash.Message)
		})
	}

	got, err := env.employees.GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.FullName, "el store no debe cambiar")
	assert.Equal(t, 1, env.count(t))
}

func TestGate_UsuarioNoAdminClienteJSON(t *testing.T) {
	env := newTestEnv(t)
	session := env.login(t, testUserEmail, testUserPassword)

	resp := env.doJSON(t, http.MethodGet, "/Employee/Create", session)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "You do not have permission to create employees.", body.Message)
}

func TestGate_UsuarioPuedeLeer(t *testing.T) {
	env := newTestEnv(t)
	env.seedEmployee(t, "Ana")
	session := env.login(t, testUserEmail, testUserPassword)

	resp := env.do(t, http.MethodGet, "/Employee/List", nil, session)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.do(t, http.MethodGet, "/Employee/Details/1", nil, session)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
