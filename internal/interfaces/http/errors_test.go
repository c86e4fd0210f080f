package http

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmapos/farmapos-api/internal/domain"
)

func respondErrorApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	return app
}

type errBody struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

func doBoom(t *testing.T, err error) (int, errBody) {
	t.Helper()
	resp, reqErr := respondErrorApp(err).Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	var body errBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

// Errores de dominio mapeados conservan su código estable y mensaje.
func TestRespondError_ErrorMapeado(t *testing.T) {
	status, body := doBoom(t, fmt.Errorf("%w: Paracetamol 500mg", domain.ErrInsufficientStock))
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Contains(t, body.Message, "Paracetamol 500mg")
}

// Un error no mapeado responde 500 genérico sin filtrar el detalle de
// infraestructura al cliente.
func TestRespondError_ErrorNoMapeadoNoFiltraDetalle(t *testing.T) {
	status, body := doBoom(t, fmt.Errorf("venta: insert sale: pq: connection refused"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno", body.Message)
	assert.NotContains(t, body.Message, "connection refused")
}

// Credenciales inválidas nunca distinguen usuario inexistente de clave mala.
func TestRespondError_UnauthorizedGenerico(t *testing.T) {
	status, body := doBoom(t, domain.ErrUserNotFound)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "credenciales inválidas", body.Message)
}
