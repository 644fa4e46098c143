package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/MaxAPBusiness/Proyecto-Taller/internal/interfaces/http"
	pkgjwt "github.com/MaxAPBusiness/Proyecto-Taller/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testPersonID  = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "proyecto-taller-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireClass para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedClasses ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireClass(allowedClasses...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":    true,
				"class": apphttp.GetClass(c),
			})
		},
	)
	return app
}

// tokenForClass genera un JWT con la clase indicada.
func tokenForClass(t *testing.T, class string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testPersonID, class, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireClass
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el usuario tiene la clase requerida → HTTP 200.
func TestRequireClass_DirectorAccedeRutaDeGestion(t *testing.T) {
	app := buildTestApp("Director de Taller")
	resp := doRequest(t, app, tokenForClass(t, "Director de Taller"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el director debe poder acceder a la ruta de gestión")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Director de Taller", body["class"])
}

// Caso 1b: el usuario tiene una de las clases permitidas (multi-clase) → 200.
func TestRequireClass_ProfesorAccedeRutaMulticlase(t *testing.T) {
	app := buildTestApp("Director de Taller", "Profesor")
	resp := doRequest(t, app, tokenForClass(t, "Profesor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: clase distinta a las permitidas → HTTP 403 Forbidden.
func TestRequireClass_ProfesorBloqueadoEnRutaDirector(t *testing.T) {
	app := buildTestApp("Director de Taller")
	resp := doRequest(t, app, tokenForClass(t, "Profesor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un profesor no debe acceder a rutas del director")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: token con clase vacía → HTTP 403.
func TestRequireClass_TokenSinClase(t *testing.T) {
	app := buildTestApp("Director de Taller")
	resp := doRequest(t, app, tokenForClass(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 4: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireClass_SinAuthHeader(t *testing.T) {
	app := buildTestApp("Director de Taller")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 5: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireClass_TokenInvalido(t *testing.T) {
	app := buildTestApp("Director de Taller")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 6: esquema distinto de Bearer → HTTP 401.
func TestRequireClass_EsquemaNoBearer(t *testing.T) {
	app := buildTestApp("Director de Taller")
	resp := doRequest(t, app, "Basic dXN1YXJpbzpjbGF2ZQ==")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"person_id": apphttp.GetPersonID(c),
			"class":     apphttp.GetClass(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForClass(t, "Pañolero"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testPersonID, body["person_id"])
	assert.Equal(t, "Pañolero", body["class"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con clase
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConClase(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testPersonID, "Profesor", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, personID, class, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testPersonID, personID)
	assert.Equal(t, "Profesor", class)
}

func TestJWT_Parse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testPersonID, "Profesor", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "una firma con otro secret debe rechazarse")
}
