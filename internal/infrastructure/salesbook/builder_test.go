package salesbook_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
	"github.com/farmapos/farmapos-api/internal/infrastructure/salesbook"
)

func testCompany() *entity.Company {
	return &entity.Company{
		ID:   "00000000-0000-0000-0000-0000000000c1",
		Name: "Farmacia El Sol",
		RUT:  "12.345.678-5",
	}
}

// El libro incluye carátula, una entrada por venta en orden, y el resumen con
// el total del período.
func TestBuild_LibroCompleto(t *testing.T) {
	svc := salesbook.NewBuilderService()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	entries := []repository.SalesBookEntry{
		{
			SaleID:        "venta-1",
			CreatedAt:     time.Date(2026, 8, 3, 10, 30, 0, 0, time.UTC),
			CustomerRUT:   "11.111.111-1",
			CustomerName:  "Juan Soto",
			PaymentMethod: entity.PaymentCash,
			ItemCount:     2,
			Total:         decimal.NewFromInt(5500),
		},
		{
			SaleID:        "venta-2",
			CreatedAt:     time.Date(2026, 8, 15, 18, 0, 0, 0, time.UTC),
			PaymentMethod: entity.PaymentDebit,
			ItemCount:     1,
			Total:         decimal.NewFromInt(2500),
		},
	}

	out, err := svc.Build(testCompany(), start, end, entries)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("LibroVentas")
	require.NotNil(t, root)
	assert.Equal(t, "12.345.678-5", root.FindElement("Caratula/RutEmisor").Text())
	assert.Equal(t, "2026-08-01", root.FindElement("Caratula/FechaInicio").Text())

	ventas := root.FindElements("Detalle/Venta")
	require.Len(t, ventas, 2)
	assert.Equal(t, "venta-1", ventas[0].SelectAttrValue("id", ""))
	assert.Equal(t, "Juan Soto", ventas[0].FindElement("NombreReceptor").Text())
	assert.Equal(t, "5500", ventas[0].FindElement("MontoTotal").Text())

	// Venta sin cliente: RUT genérico y "Consumidor Final".
	assert.Equal(t, "66666666-6", ventas[1].FindElement("RutReceptor").Text())
	assert.Equal(t, "Consumidor Final", ventas[1].FindElement("NombreReceptor").Text())

	assert.Equal(t, "2", root.FindElement("Resumen/CantidadVentas").Text())
	assert.Equal(t, "8000", root.FindElement("Resumen/MontoPeriodo").Text())
}

// Sin empresa no hay libro.
func TestBuild_SinEmpresa(t *testing.T) {
	svc := salesbook.NewBuilderService()
	_, err := svc.Build(nil, time.Now(), time.Now(), nil)
	assert.Error(t, err)
}

// Libro vacío sigue siendo un documento válido con resumen en cero.
func TestBuild_PeriodoSinVentas(t *testing.T) {
	svc := salesbook.NewBuilderService()
	out, err := svc.Build(testCompany(), time.Now().AddDate(0, -1, 0), time.Now(), nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Equal(t, "0", doc.FindElement("LibroVentas/Resumen/CantidadVentas").Text())
	assert.Equal(t, "0", doc.FindElement("LibroVentas/Resumen/MontoPeriodo").Text())
}
