package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/lgalvez/almacen-api/internal/application/dto"
	"github.com/lgalvez/almacen-api/internal/domain"
)

// Códigos de error de la API.
const (
	CodeValidation  = "VALIDATION"
	CodeNotFound    = "NOT_FOUND"
	CodeInvalidBody = "INVALID_BODY"
	CodeInternal    = "INTERNAL"
)

const msgInternal = "error interno del servidor"

// writeError traduce un error de dominio a su respuesta HTTP. Los errores inesperados
// se registran y se devuelven con un mensaje opaco.
func writeError(c *fiber.Ctx, err error, notFoundMsg string) error {
	if ve, ok := domain.AsValidation(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    CodeValidation,
			Message: ve.Message,
			Field:   ve.Field,
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: notFoundMsg})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: err.Error()})
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error inesperado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: msgInternal})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
}

// pageFromQuery lee page y page_size (limit como alias). Los valores fuera de rango
// se normalizan en el caso de uso.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	size := c.QueryInt("page_size", 0)
	if size == 0 {
		size = c.QueryInt("limit", 0)
	}
	return dto.PageRequest{Page: c.QueryInt("page", 0), PageSize: size}
}
