// Package rut valida el RUT chileno (Rol Único Tributario) mediante el
// algoritmo módulo 11 del SII. Función pura, sin dependencias de dominio.
package rut

import (
	"fmt"
	"strings"
)

// Validate valida que el RUT (con o sin puntos/guión) tenga un dígito
// verificador correcto. Acepta "12.345.678-5", "12345678-5" o "123456785".
// Un RUT vacío se considera válido (campo opcional en varias entidades).
func Validate(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	clean := normalize(raw)
	if len(clean) < 7 {
		return fmt.Errorf("rut: demasiado corto")
	}
	body := clean[:len(clean)-1]
	dv := clean[len(clean)-1]
	for _, c := range body {
		if c < '0' || c > '9' {
			return fmt.Errorf("rut: el cuerpo debe contener solo números")
		}
	}
	expected := computeDV(body)
	if dv != expected {
		return fmt.Errorf("rut: dígito verificador inválido: esperado %c, recibido %c", expected, dv)
	}
	return nil
}

// ComputeDV calcula el dígito verificador para el cuerpo del RUT (solo dígitos).
// Útil para completar RUTs importados sin DV.
func ComputeDV(body string) (byte, error) {
	clean := normalize(body)
	if len(clean) == 0 {
		return 0, fmt.Errorf("rut: cuerpo vacío")
	}
	for _, c := range clean {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("rut: el cuerpo debe contener solo números")
		}
	}
	return computeDV(clean), nil
}

// computeDV aplica la serie 2..7 de derecha a izquierda y reduce módulo 11.
// 11 -> '0', 10 -> 'K'.
func computeDV(body string) byte {
	sum := 0
	mult := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * mult
		mult++
		if mult == 8 {
			mult = 2
		}
	}
	switch r := 11 - sum%11; r {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + r)
	}
}

func normalize(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}
