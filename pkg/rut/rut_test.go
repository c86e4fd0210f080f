package rut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmapos/farmapos-api/pkg/rut"
)

// Vectores calculados a mano con la serie 2..7 módulo 11.
// Ej: 12345678 -> suma 8*2+7*3+6*4+5*5+4*6+3*7+2*2+1*3 = 138, resto 6, DV = 5.

func TestValidate_RUTValido(t *testing.T) {
	casos := []string{
		"11.111.111-1",
		"11111111-1",
		"111111111",
		"12.345.678-5",
		"9999999-3",
	}
	for _, c := range casos {
		assert.NoError(t, rut.Validate(c), "RUT %q debe ser válido", c)
	}
}

func TestValidate_DVIncorrecto(t *testing.T) {
	assert.Error(t, rut.Validate("11.111.111-2"), "DV incorrecto debe rechazarse")
	assert.Error(t, rut.Validate("12.345.678-9"))
}

func TestValidate_DVK(t *testing.T) {
	// 20347878: la serie módulo 11 deja resto 1, resultado 10 -> DV 'K'.
	dv, err := rut.ComputeDV("20347878")
	require.NoError(t, err)
	assert.Equal(t, byte('K'), dv)
	assert.NoError(t, rut.Validate("20.347.878-K"))
	assert.NoError(t, rut.Validate("20347878-k"), "la k minúscula debe normalizarse")
}

func TestValidate_VacioEsValido(t *testing.T) {
	assert.NoError(t, rut.Validate(""), "RUT vacío es opcional")
	assert.NoError(t, rut.Validate("   "))
}

func TestValidate_DemasiadoCorto(t *testing.T) {
	assert.Error(t, rut.Validate("12-4"))
}

func TestValidate_CuerpoNoNumerico(t *testing.T) {
	assert.Error(t, rut.Validate("12A4567-8"))
}

func TestComputeDV_CoherenteConValidate(t *testing.T) {
	cuerpos := []string{"11111111", "12345678", "7775577", "9999999"}
	for _, c := range cuerpos {
		dv, err := rut.ComputeDV(c)
		require.NoError(t, err)
		assert.NoError(t, rut.Validate(c+"-"+string(dv)),
			"el DV calculado para %s debe validar", c)
	}
}
