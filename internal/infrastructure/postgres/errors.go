package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lgalvez/almacen-api/internal/domain"
	"github.com/lgalvez/almacen-api/internal/domain/inventory"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
	codeNumericOutOfRange   = "22003"
	codeStringTooLong       = "22001"
)

// constraintRule campo y mensaje que se reportan cuando falla una restricción del esquema.
type constraintRule struct {
	field   string
	message string
}

var constraintRules = map[string]constraintRule{
	"uq_medidas_nombre":                 {"nombre", "ya existe una unidad con este nombre"},
	"uq_medidas_simbolo":                {"simbolo", "ya existe una unidad con este símbolo"},
	"ck_medidas_factor":                 {"factor_conversion", "debe ser mayor o igual a 0.0001"},
	"uq_productos_codigo":               {"codigo", "ya existe un producto con este código"},
	"fk_productos_medida":               {"medida_id", "la unidad de medida no existe"},
	"ck_productos_precio":               {"precio_unitario", "debe ser mayor o igual a 0"},
	"fk_almacenes_secundario_principal": {"almacen_principal_id", "el almacén principal no existe"},
	"ck_stock_almacen_unico":            {"almacen", inventory.MsgExclusiveWarehouse},
	"fk_stock_producto":                 {"producto_id", "el producto no existe"},
	"fk_stock_almacen_principal":        {"almacen_principal_id", "el almacén principal no existe"},
	"fk_stock_almacen_secundario":       {"almacen_secundario_id", "el almacén secundario no existe"},
}

// translateWriteError convierte errores de INSERT/UPDATE en errores de dominio.
func translateWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		rule := ruleFor(pgErr)
		return domain.NewDuplicateError(rule.field, rule.message)
	case codeForeignKeyViolation, codeCheckViolation:
		rule := ruleFor(pgErr)
		return domain.NewValidationError(rule.field, "%s", rule.message)
	case codeInvalidText:
		return domain.ErrNotFound
	case codeNumericOutOfRange:
		return domain.NewValidationError(pgErr.ColumnName, "valor numérico fuera de rango")
	case codeStringTooLong:
		return domain.NewValidationError(pgErr.ColumnName, "texto demasiado largo")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// translateDeleteError un DELETE sólo falla por filas que aún lo referencian (ON DELETE RESTRICT).
func translateDeleteError(err error, op, inUse string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeForeignKeyViolation:
			return domain.NewValidationError("", "%s", inUse)
		case codeInvalidText:
			return domain.ErrNotFound
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// translateReadError un id mal formado equivale a un registro inexistente.
func translateReadError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeInvalidText {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func ruleFor(pgErr *pgconn.PgError) constraintRule {
	if rule, ok := constraintRules[pgErr.ConstraintName]; ok {
		return rule
	}
	return constraintRule{message: "restricción violada: " + pgErr.ConstraintName}
}

// likePattern arma el patrón ILIKE '%texto%' escapando comodines.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// filterBuilder acumula condiciones WHERE con placeholders posicionales.
type filterBuilder struct {
	conds []string
	args  []any
}

// add agrega una condición; cada %d del formato recibe el número del nuevo placeholder.
func (b *filterBuilder) add(format string, arg any) {
	b.args = append(b.args, arg)
	n := len(b.args)
	b.conds = append(b.conds, strings.ReplaceAll(format, "%d", fmt.Sprint(n)))
}

// search agrega "col1 ILIKE $n OR col2 ILIKE $n ..." si q no está vacío.
func (b *filterBuilder) search(q string, cols ...string) {
	if q == "" {
		return
	}
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c + ` ILIKE $%d`
	}
	b.add("("+strings.Join(parts, " OR ")+")", likePattern(q))
}

func (b *filterBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// page agrega LIMIT/OFFSET a los argumentos y devuelve el fragmento SQL.
func (b *filterBuilder) page(limit, offset int) (string, []any) {
	args := append(append([]any{}, b.args...), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}
