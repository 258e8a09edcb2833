// Package pdf genera el reporte de stock bajo en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + empresa     │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Almacén | Ubic./Lote | Disp. |   │
//	│         Mín. | Déficit                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: registros / unidades faltantes                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appinventory "github.com/lgalvez/almacen-api/internal/application/inventory"
	"github.com/lgalvez/almacen-api/internal/domain/entity"
	"github.com/lgalvez/almacen-api/internal/domain/inventory"
)

var _ appinventory.LowStockReportGenerator = (*LowStockReport)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorHeader  = &props.Color{Red: 220, Green: 230, Blue: 240}
)

// LowStockReport implementa inventory.LowStockReportGenerator usando Maroto v2.
type LowStockReport struct {
	company string
}

// NewLowStockReport construye el generador; company aparece en el encabezado.
func NewLowStockReport(company string) *LowStockReport {
	return &LowStockReport{company: company}
}

// GenerateLowStockPDF genera el reporte con los registros ya filtrados y ordenados.
func (g *LowStockReport) GenerateLowStockPDF(ctx context.Context, items []*entity.StockView, generatedAt time.Time) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock bajo", true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(g.company, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(items) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("No hay productos con stock bajo.", props.Text{Size: 10, Align: align.Center, Top: 4, Color: colorGray}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		m.AddRows(tableRows(items)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(company string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE STOCK BAJO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(company, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Almacén", 3, align.Left),
		h("Ubic. / Lote", 1, align.Left),
		h("Disp.", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("Déficit", 1, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

// tableRows una fila por registro; el déficit se resalta.
func tableRows(items []*entity.StockView) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	out := make([]core.Row, 0, len(items))
	for _, v := range items {
		deficit := inventory.Deficit(v.AvailableQuantity, v.Product.StockMin)
		out = append(out, row.New(7).Add(
			cell(v.Product.Code, 2, align.Left),
			cell(v.Product.Name, 3, align.Left),
			cell(nonEmpty(v.WarehouseName(), "—"), 3, align.Left),
			cell(locationLabel(v.Location, v.Lot), 1, align.Left),
			cell(formatThousands(v.AvailableQuantity), 1, align.Right),
			cell(formatThousands(v.Product.StockMin), 1, align.Right),
			col.New(1).Add(text.New(formatThousands(deficit), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorAlert,
			})),
		))
	}
	return out
}

func summaryRow(items []*entity.StockView) core.Row {
	missing := 0
	for _, v := range items {
		missing += inventory.Deficit(v.AvailableQuantity, v.Product.StockMin)
	}
	return row.New(14).Add(
		col.New(6),
		col.New(6).Add(
			text.New("Registros en stock bajo: "+strconv.Itoa(len(items)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Unidades faltantes: "+formatThousands(missing), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func locationLabel(location, lot *string) string {
	parts := make([]string, 0, 2)
	if location != nil && *location != "" {
		parts = append(parts, *location)
	}
	if lot != nil && *lot != "" {
		parts = append(parts, *lot)
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, " / ")
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000", -1200 → "-1.200".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
