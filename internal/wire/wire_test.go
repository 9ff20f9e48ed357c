package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"usuarios-api/internal/data/repository"
	"usuarios-api/internal/testutil"
	"usuarios-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newTestRouter(t *testing.T, pinger Pinger) *chi.Mux {
	t.Helper()

	log := zaptest.NewLogger(t)
	db := testutil.OpenInMemoryDB(t)
	config := &utils.Config{
		Security: utils.SecurityConfig{BcryptCost: bcrypt.MinCost},
		HTTP:     utils.HTTPConfig{AllowedOrigins: []string{"*"}},
	}

	return Wiring(repository.NewRepository(db, log), pinger, config, log).Router
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) utils.Message {
	t.Helper()

	var msg utils.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg), rec.Body.String())
	return msg
}

func TestRoutes_ExampleWalk(t *testing.T) {
	router := newTestRouter(t, fakePinger{})

	rec := do(t, router, http.MethodPost, "/api/roles/registrar-rol", map[string]any{"nombreRol": "admin"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, utils.Message{Msg: "Rol Creado Correctamente", Type: "success"}, decodeMessage(t, rec))

	rec = do(t, router, http.MethodGet, "/api/roles/mostrar-rol/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var role map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &role))
	assert.Equal(t, "admin", role["nombreRol"])
	assert.Equal(t, true, role["estadoRol"])
	assert.Equal(t, float64(1), role["id"])

	rec = do(t, router, http.MethodPost, "/api/usuarios/registrar", map[string]any{
		"nombre": "Ana", "email": "ana@x.com", "password": "secret1", "rolId": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Usuario Creado Correctamente", decodeMessage(t, rec).Msg)

	rec = do(t, router, http.MethodPost, "/api/usuarios/login", map[string]any{"email": "ana@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":1,"nombre":"Ana","email":"ana@x.com","rolId":1}`, rec.Body.String())

	rec = do(t, router, http.MethodPut, "/api/roles/editar-estado-rol/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Estado del Rol modificado Correctamente", decodeMessage(t, rec).Msg)

	rec = do(t, router, http.MethodPost, "/api/usuarios/login", map[string]any{"email": "ana@x.com", "password": "secret1"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, utils.TypeRoleDeactivated, decodeMessage(t, rec).Type)
}

func TestRoutes_LoginFailures(t *testing.T) {
	router := newTestRouter(t, fakePinger{})
	require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/roles/registrar-rol", map[string]any{"nombreRol": "admin"}).Code)
	require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/usuarios/registrar", map[string]any{
		"nombre": "Ana", "email": "ana@x.com", "password": "secret1", "rolId": 1,
	}).Code)

	rec := do(t, router, http.MethodPost, "/api/usuarios/login", map[string]any{"email": "nadie@x.com", "password": "secret1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, utils.Message{Msg: "El Usuario no existe", Type: "not_found"}, decodeMessage(t, rec))

	rec = do(t, router, http.MethodPost, "/api/usuarios/login", map[string]any{"email": "ana@x.com", "password": "nope"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, utils.Message{Msg: "El Password es Incorrecto", Type: "password_incorrect"}, decodeMessage(t, rec))

	require.Equal(t, http.StatusOK, do(t, router, http.MethodPut, "/api/usuarios/cambiar-estado/1", nil).Code)

	rec = do(t, router, http.MethodPost, "/api/usuarios/login", map[string]any{"email": "ana@x.com", "password": "secret1"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, utils.TypeUserDeactivated, decodeMessage(t, rec).Type)

	rec = do(t, router, http.MethodGet, "/api/usuarios/perfil-de-usuario/1", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, utils.TypeUserDeactivated, decodeMessage(t, rec).Type)
}

func TestRoutes_UserLifecycle(t *testing.T) {
	router := newTestRouter(t, fakePinger{})
	require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/roles/registrar-rol", map[string]any{"nombreRol": "admin"}).Code)

	register := map[string]any{"nombre": "Ana", "email": "ana@x.com", "password": "secret1", "rolId": 1}
	require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/usuarios/registrar", register).Code)

	rec := do(t, router, http.MethodPost, "/api/usuarios/registrar", register)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, utils.Message{Msg: "Usuario ya registrado", Type: "error"}, decodeMessage(t, rec))

	rec = do(t, router, http.MethodPost, "/api/usuarios/registrar", map[string]any{"nombre": "B", "email": "nope", "password": "p", "rolId": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Ingrese un correo valido", decodeMessage(t, rec).Msg)

	rec = do(t, router, http.MethodPost, "/api/usuarios/registrar", map[string]any{"nombre": "B", "email": "b@x.com", "password": "p", "rolId": 7})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "El Rol no existe", decodeMessage(t, rec).Msg)

	rec = do(t, router, http.MethodPost, "/api/usuarios/registrar", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, utils.TypeError, decodeMessage(t, rec).Type)

	rec = do(t, router, http.MethodGet, "/api/usuarios/perfil-de-usuario/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"ana@x.com","nombre":"Ana","rolId":1,"estado":true}`, rec.Body.String())

	rec = do(t, router, http.MethodPut, "/api/usuarios/editar-usuario/1", map[string]any{"nombre": "Ana M", "email": "ana@x.com", "rolId": 1})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Usuario modificado Correctamente", decodeMessage(t, rec).Msg)

	rec = do(t, router, http.MethodPut, "/api/usuarios/restablecer-password/1", map[string]any{"passwordAnterior": "wrong", "passwordNueva": "secret2"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, utils.Message{Msg: "El password actual es incorrecto", Type: "password_incorrect"}, decodeMessage(t, rec))

	rec = do(t, router, http.MethodPut, "/api/usuarios/restablecer-password/1", map[string]any{"passwordAnterior": "secret1", "passwordNueva": "secret2"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Password modificada Correctamente", decodeMessage(t, rec).Msg)

	rec = do(t, router, http.MethodPost, "/api/usuarios/login", map[string]any{"email": "ana@x.com", "password": "secret2"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/usuarios/eliminar-usuario/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Usuario Eliminado Correctamente", decodeMessage(t, rec).Msg)

	rec = do(t, router, http.MethodDelete, "/api/usuarios/eliminar-usuario/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, utils.TypeNotFound, decodeMessage(t, rec).Type)
}

func TestRoutes_UserListAndRoleDelete(t *testing.T) {
	router := newTestRouter(t, fakePinger{})
	require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/roles/registrar-rol", map[string]any{"nombreRol": "admin"}).Code)
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		rec := do(t, router, http.MethodPost, "/api/usuarios/registrar", map[string]any{"nombre": "U", "email": email, "password": "secret1", "rolId": 1})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(t, router, http.MethodGet, "/api/usuarios/todos-los-usuarios?page=2&per_page=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("X-Total-Count"))
	var page []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page, 1)
	assert.Equal(t, "c@x.com", page[0]["email"])

	rec = do(t, router, http.MethodDelete, "/api/roles/eliminar/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rol Eliminado Correctamente", decodeMessage(t, rec).Msg)

	rec = do(t, router, http.MethodGet, "/api/usuarios/todos-los-usuarios", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 3)
	for _, u := range users {
		assert.Nil(t, u["rolId"])
		assert.NotContains(t, u, "password")
		assert.Contains(t, u, "estado")
	}

	rec = do(t, router, http.MethodGet, "/api/roles/mostrar-roles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRoutes_RoleErrors(t *testing.T) {
	router := newTestRouter(t, fakePinger{})
	require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/roles/registrar-rol", map[string]any{"nombreRol": "admin"}).Code)

	rec := do(t, router, http.MethodPost, "/api/roles/registrar-rol", map[string]any{"nombreRol": "admin"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, utils.TypeError, decodeMessage(t, rec).Type)

	rec = do(t, router, http.MethodPost, "/api/roles/registrar-rol", map[string]any{"nombreRol": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "nombreRol es obligatorio y no puede ir vacio", decodeMessage(t, rec).Msg)

	for _, path := range []string{"/api/roles/mostrar-rol/99", "/api/roles/mostrar-rol/abc"} {
		rec = do(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, utils.Message{Msg: "No Encontrado", Type: "not_found"}, decodeMessage(t, rec))
	}

	rec = do(t, router, http.MethodPut, "/api/roles/editar/1", map[string]any{"nombreRol": "root"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rol modificado Correctamente", decodeMessage(t, rec).Msg)

	rec = do(t, router, http.MethodPut, "/api/roles/editar/99", map[string]any{"nombreRol": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/roles/eliminar/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_EditBlockedByDisabledRole(t *testing.T) {
	router := newTestRouter(t, fakePinger{})
	for _, name := range []string{"admin", "editor"} {
		require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/roles/registrar-rol", map[string]any{"nombreRol": name}).Code)
	}
	require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/usuarios/registrar", map[string]any{
		"nombre": "Ana", "email": "ana@x.com", "password": "secret1", "rolId": 1,
	}).Code)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodPut, "/api/roles/editar-estado-rol/2", nil).Code)

	rec := do(t, router, http.MethodPut, "/api/usuarios/editar-usuario/1", map[string]any{"nombre": "Ana", "email": "ana@x.com", "rolId": 2})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, utils.Message{
		Msg:  "Este rol se encuentra deshabilitado, comuníquese con el administrador",
		Type: "rol_deactivated",
	}, decodeMessage(t, rec))

	rec = do(t, router, http.MethodPut, "/api/usuarios/editar-usuario/1", map[string]any{"nombre": "Ana", "email": "ana@x.com", "rolId": 9})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "El Rol no existe", decodeMessage(t, rec).Msg)
}

func TestRoutes_Health(t *testing.T) {
	rec := do(t, newTestRouter(t, fakePinger{}), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = do(t, newTestRouter(t, fakePinger{err: errors.New("down")}), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
