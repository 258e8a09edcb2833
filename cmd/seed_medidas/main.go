// seed_medidas genera un script SQL para poblar el catálogo de unidades de medida
// a partir de un CSV con columnas: nombre,simbolo,tipo,factor_conversion,descripcion.
// La primera fila es el encabezado. factor_conversion y descripcion pueden ir vacíos.
//
// Uso: go run ./cmd/seed_medidas [-latin1] [-out ruta.sql] [medidas.csv]
// Por defecto lee medidas.csv del directorio actual y escribe
// internal/infrastructure/postgres/migrations/0002_seed_medidas.sql.
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/lgalvez/almacen-api/internal/application/dto"
	"github.com/lgalvez/almacen-api/internal/domain"
)

// seedNamespace espacio para ids deterministas: regenerar el script no cambia los ids.
var seedNamespace = uuid.MustParse("6f1c9d3e-2b47-4c1a-9a55-0d7e1f4b8c21")

// minFactor mismo mínimo que el CHECK de medidas.factor_conversion.
var minFactor = decimal.New(1, -4)

var header = []string{"nombre", "simbolo", "tipo", "factor_conversion", "descripcion"}

func main() {
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1 (exportado desde Excel)")
	outPath := flag.String("out", "", "archivo SQL de salida")
	flag.Parse()

	csvPath := "medidas.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	// Sin -latin1, un archivo que no es UTF-8 válido se asume Latin-1.
	units, err := parseUnits(bytes.NewReader(raw), *latin1 || !utf8.Valid(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	if *outPath == "" {
		*outPath = filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "0002_seed_medidas.sql")
	}
	out, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, filepath.Base(csvPath), units); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d unidades de medida\n", *outPath, len(units))
}

// parseUnits lee y valida las filas del CSV con las mismas reglas que la API.
// Los nombres y símbolos repetidos dentro del archivo se rechazan.
func parseUnits(r io.Reader, latin1 bool) ([]dto.CreateUnitOfMeasureRequest, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	first, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("encabezado: %w", err)
	}
	if len(first) < 3 || !strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(first[0], "\ufeff")), header[0]) {
		return nil, fmt.Errorf("encabezado esperado: %s", strings.Join(header, ","))
	}

	var units []dto.CreateUnitOfMeasureRequest
	names := map[string]int{}
	symbols := map[string]int{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("línea %d: se esperan al menos nombre, simbolo y tipo", line)
		}
		in, err := rowToRequest(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if prev, ok := names[in.Name]; ok {
			return nil, fmt.Errorf("línea %d: nombre %q repetido (línea %d)", line, in.Name, prev)
		}
		if prev, ok := symbols[in.Symbol]; ok {
			return nil, fmt.Errorf("línea %d: símbolo %q repetido (línea %d)", line, in.Symbol, prev)
		}
		names[in.Name], symbols[in.Symbol] = line, line
		units = append(units, in)
	}
	return units, nil
}

func rowToRequest(rec []string) (dto.CreateUnitOfMeasureRequest, error) {
	field := func(i int) string {
		if i < len(rec) {
			return dto.CleanString(rec[i])
		}
		return ""
	}
	in := dto.CreateUnitOfMeasureRequest{
		Name:     field(0),
		Symbol:   field(1),
		Category: strings.ToLower(field(2)),
	}
	if f := field(3); f != "" {
		d, err := decimal.NewFromString(strings.ReplaceAll(f, ",", "."))
		if err != nil {
			return in, fmt.Errorf("factor_conversion %q inválido", f)
		}
		in.ConversionFactor = &d
	}
	if d := field(4); d != "" {
		in.Description = &d
	}
	if err := dto.Validate(in); err != nil {
		return in, err
	}
	if in.ConversionFactor != nil && in.ConversionFactor.LessThan(minFactor) {
		return in, domain.NewValidationError("factor_conversion", "debe ser mayor o igual a %s", minFactor.String())
	}
	if in.ConversionFactor != nil {
		if err := dto.CheckDecimal("factor_conversion", *in.ConversionFactor, dto.FactorPrecision, dto.FactorScale); err != nil {
			return in, err
		}
	}
	return in, nil
}

// writeSQL escribe un INSERT por unidad; las que ya existen (por id, nombre o símbolo) se omiten.
func writeSQL(w io.Writer, source string, units []dto.CreateUnitOfMeasureRequest) error {
	var b strings.Builder
	b.WriteString("-- Catálogo inicial de unidades de medida\n")
	fmt.Fprintf(&b, "-- Generado por cmd/seed_medidas desde %s\n\n", source)
	for _, u := range units {
		factor := decimal.NewFromInt(1)
		if u.ConversionFactor != nil {
			factor = *u.ConversionFactor
		}
		desc := "NULL"
		if u.Description != nil {
			desc = quote(*u.Description)
		}
		fmt.Fprintf(&b, "INSERT INTO medidas (id, nombre, simbolo, descripcion, tipo, factor_conversion)\n")
		fmt.Fprintf(&b, "VALUES ('%s', %s, %s, %s, %s, %s)\n",
			uuid.NewSHA1(seedNamespace, []byte(u.Symbol)), quote(u.Name), quote(u.Symbol), desc, quote(u.Category), factor.String())
		b.WriteString("ON CONFLICT DO NOTHING;\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
