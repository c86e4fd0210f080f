// Package salesbook genera el XML del libro de ventas de un período
// (formato simplificado de libro electrónico chileno).
package salesbook

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/farmapos/farmapos-api/internal/domain/entity"
	"github.com/farmapos/farmapos-api/internal/domain/repository"
)

// consumidorFinal nombre sintético para ventas sin cliente registrado.
const consumidorFinal = "Consumidor Final"

// BuilderService construye el documento XML del libro de ventas.
type BuilderService struct{}

// NewBuilderService crea el servicio.
func NewBuilderService() *BuilderService {
	return &BuilderService{}
}

// Build genera el []byte del libro: una entrada <Venta> por venta del período,
// en orden cronológico ascendente, con el resumen del período al cierre.
func (s *BuilderService) Build(
	company *entity.Company,
	startDate, endDate time.Time,
	entries []repository.SalesBookEntry,
) ([]byte, error) {
	if company == nil {
		return nil, fmt.Errorf("salesbook: falta la empresa")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("LibroVentas")
	root.CreateAttr("version", "1.0")

	caratula := root.CreateElement("Caratula")
	caratula.CreateElement("RutEmisor").SetText(company.RUT)
	caratula.CreateElement("RazonSocial").SetText(company.Name)
	caratula.CreateElement("FechaInicio").SetText(startDate.Format("2006-01-02"))
	caratula.CreateElement("FechaFin").SetText(endDate.Format("2006-01-02"))

	detalle := root.CreateElement("Detalle")
	total := decimal.Zero
	for _, e := range entries {
		venta := detalle.CreateElement("Venta")
		venta.CreateAttr("id", e.SaleID)
		venta.CreateElement("Fecha").SetText(e.CreatedAt.Format("2006-01-02T15:04:05"))
		rutReceptor := e.CustomerRUT
		if rutReceptor == "" {
			rutReceptor = "66666666-6" // RUT genérico de consumidor final
		}
		nombre := e.CustomerName
		if nombre == "" {
			nombre = consumidorFinal
		}
		venta.CreateElement("RutReceptor").SetText(rutReceptor)
		venta.CreateElement("NombreReceptor").SetText(nombre)
		venta.CreateElement("MedioPago").SetText(e.PaymentMethod)
		venta.CreateElement("CantidadLineas").SetText(fmt.Sprintf("%d", e.ItemCount))
		venta.CreateElement("MontoTotal").SetText(e.Total.StringFixed(0))
		total = total.Add(e.Total)
	}

	resumen := root.CreateElement("Resumen")
	resumen.CreateElement("CantidadVentas").SetText(fmt.Sprintf("%d", len(entries)))
	resumen.CreateElement("MontoPeriodo").SetText(total.StringFixed(0))

	doc.Indent(2)
	return doc.WriteToBytes()
}
