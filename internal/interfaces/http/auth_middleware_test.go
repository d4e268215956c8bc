package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/authz"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Libreria-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Libreria-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testSessionID = "00000000-0000-0000-0000-00000000000a"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "libreria-api-test"
	testExpMin    = 60
)

// fakeSessionStore almacén de sesiones en memoria con contador de renovaciones.
type fakeSessionStore struct {
	sessions map[string]*entity.Session
	touched  int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*entity.Session)}
}

func (s *fakeSessionStore) Create(_ context.Context, session *entity.Session) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, id string) (*entity.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}

func (s *fakeSessionStore) Touch(_ context.Context, id string) error {
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionExpired
	}
	s.touched++
	return nil
}

func (s *fakeSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func (s *fakeSessionStore) addSession(role string) {
	s.sessions[testSessionID] = &entity.Session{
		ID:             testSessionID,
		UserID:         testUserID,
		Role:           role,
		StartedAt:      time.Now(),
		LastActivityAt: time.Now(),
	}
}

// buildTestApp construye una aplicación Fiber mínima con una ruta protegida por
// AuthMiddleware + RequirePermission.
func buildTestApp(store *fakeSessionStore, module authz.Module, action authz.Action) *fiber.App {
	app := fiber.New()
	app.Delete("/protected",
		apphttp.AuthMiddleware(testJWTSecret, store),
		apphttp.RequirePermission(store, module, action),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":      true,
				"role":    apphttp.GetRole(c),
				"user_id": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT ligado a la sesión de test.
func tokenFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testSessionID, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza DELETE /protected con el header dado.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	store := newFakeSessionStore()
	app := buildTestApp(store, authz.ModuleUsers, authz.ActionDelete)

	resp := doRequest(t, app, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	store := newFakeSessionStore()
	app := buildTestApp(store, authz.ModuleUsers, authz.ActionDelete)

	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SesionExpirada_Retorna401(t *testing.T) {
	// JWT válido y vigente, pero la sesión ya no existe en el almacén:
	// la fuente de verdad es la sesión, no el token.
	store := newFakeSessionStore()
	app := buildTestApp(store, authz.ModuleUsers, authz.ActionDelete)

	resp := doRequest(t, app, tokenFor(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"JWT vigente con sesión muerta debe ser 401")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SESSION_EXPIRED")
}

func TestAuthMiddleware_SesionViva_CargaIdentidad(t *testing.T) {
	store := newFakeSessionStore()
	store.addSession("admin")
	app := buildTestApp(store, authz.ModuleUsers, authz.ActionDelete)

	resp := doRequest(t, app, tokenFor(t, "admin"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
	assert.Equal(t, testUserID, body["user_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_SellerBloqueadoEnUsersDelete(t *testing.T) {
	store := newFakeSessionStore()
	store.addSession("seller")
	app := buildTestApp(store, authz.ModuleUsers, authz.ActionDelete)

	resp := doRequest(t, app, tokenFor(t, "seller"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"seller no administra usuarios")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "users:delete", body["required"],
		"el 403 identifica el permiso faltante")
	assert.Equal(t, false, body["success"])
}

func TestRequirePermission_RolDesconocido_Denegado(t *testing.T) {
	store := newFakeSessionStore()
	store.addSession("superadmin") // rol que no existe en la matriz
	app := buildTestApp(store, authz.ModuleSales, authz.ActionView)

	resp := doRequest(t, app, tokenFor(t, "superadmin"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "rol desconocido es fail-closed")
}

func TestRequirePermission_PeticionAutorizada_RenuevaLaSesion(t *testing.T) {
	store := newFakeSessionStore()
	store.addSession("admin")
	app := buildTestApp(store, authz.ModuleSales, authz.ActionView)

	resp := doRequest(t, app, tokenFor(t, "admin"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, store.touched, "cada petición autorizada renueva la ventana de inactividad")
}

func TestRequirePermission_PeticionDenegada_NoRenuevaLaSesion(t *testing.T) {
	store := newFakeSessionStore()
	store.addSession("readonly")
	app := buildTestApp(store, authz.ModuleUsers, authz.ActionDelete)

	resp := doRequest(t, app, tokenFor(t, "readonly"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, store.touched, "un 403 no cuenta como actividad")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testSessionID, testUserID, "inventory", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sessionID, userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSessionID, sessionID)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "inventory", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testSessionID, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testSessionID, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
