package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/lgalvez/almacen-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los campos con su nombre JSON.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate valida las etiquetas `validate` de un request y devuelve el primer
// incumplimiento como *domain.ValidationError.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("", "%s", err.Error())
	}
	fe := verrs[0]
	return domain.NewValidationError(fe.Field(), "%s", ruleMessage(fe))
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser menor o igual a %s", fe.Param())
	case "email":
		return "debe ser un email válido"
	case "uuid":
		return "debe ser un identificador válido"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "no cumple la regla " + fe.Tag()
	}
}

// Columnas NUMERIC(precisión, escala) de precio y factor de conversión.
const (
	PricePrecision  = 12
	PriceScale      = 2
	FactorPrecision = 12
	FactorScale     = 4
)

// CheckDecimal rechaza valores que la columna NUMERIC(precision, scale) redondearía
// o no podría guardar: más de scale decimales o parte entera de más de precision-scale dígitos.
func CheckDecimal(field string, d decimal.Decimal, precision, scale int32) error {
	if !d.Equal(d.Round(scale)) {
		return domain.NewValidationError(field, "admite como máximo %d decimales", scale)
	}
	limit := decimal.New(1, precision-scale)
	if d.Abs().GreaterThanOrEqual(limit) {
		return domain.NewValidationError(field, "debe ser menor que %s", limit.String())
	}
	return nil
}

// CleanString recorta espacios y normaliza a NFC (búsquedas y unicidad consistentes
// entre "á" precompuesta y "a"+tilde combinante).
func CleanString(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// CleanOptional igual que CleanString; una cadena vacía se convierte en nil.
func CleanOptional(s *string) *string {
	if s == nil {
		return nil
	}
	c := CleanString(*s)
	if c == "" {
		return nil
	}
	return &c
}
