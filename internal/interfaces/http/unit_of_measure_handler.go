package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgalvez/almacen-api/internal/application/dto"
	"github.com/lgalvez/almacen-api/internal/application/usecase"
)

const msgUnitNotFound = "unidad de medida no encontrada"

// UnitOfMeasureHandler maneja las peticiones HTTP de unidades de medida.
type UnitOfMeasureHandler struct {
	uc *usecase.UnitOfMeasureUseCase
}

// NewUnitOfMeasureHandler construye el handler.
func NewUnitOfMeasureHandler(uc *usecase.UnitOfMeasureUseCase) *UnitOfMeasureHandler {
	return &UnitOfMeasureHandler{uc: uc}
}

// Create godoc
// @Summary      Crear unidad de medida
// @Tags         medidas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUnitOfMeasureRequest  true  "Datos de la unidad"
// @Success      201   {object}  dto.UnitOfMeasureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/medidas [post]
func (h *UnitOfMeasureHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUnitOfMeasureRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, msgUnitNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener unidad de medida por ID
// @Tags         medidas
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad"
// @Success      200  {object}  dto.UnitOfMeasureResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medidas/{id} [get]
func (h *UnitOfMeasureHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, msgUnitNotFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar unidades de medida
// @Tags         medidas
// @Produce      json
// @Param        search     query  string  false  "Busca en nombre, símbolo y descripción"
// @Param        tipo       query  string  false  "peso, volumen, longitud o unidad"
// @Param        estado     query  string  false  "activo o inactivo"
// @Param        page       query  int     false  "Página"             default(1)
// @Param        page_size  query  int     false  "Tamaño de página"   default(10)
// @Success      200  {object}  dto.UnitOfMeasureListResponse
// @Router       /api/medidas [get]
func (h *UnitOfMeasureHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.UnitOfMeasureListQuery{
		Search:      c.Query("search"),
		Category:    c.Query("tipo"),
		Status:      c.Query("estado"),
		PageRequest: pageFromQuery(c),
	})
	if err != nil {
		return writeError(c, err, msgUnitNotFound)
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Listar unidades de medida por tipo
// @Tags         medidas
// @Produce      json
// @Param        tipo  path  string  true  "peso, volumen, longitud o unidad"
// @Success      200   {object}  dto.UnitOfMeasureListResponse
// @Router       /api/medidas/tipo/{tipo} [get]
func (h *UnitOfMeasureHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.UserContext(), c.Params("tipo"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err, msgUnitNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar unidad de medida
// @Tags         medidas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la unidad"
// @Param        body  body  dto.UpdateUnitOfMeasureRequest  true  "Datos completos de la unidad"
// @Success      200   {object}  dto.UnitOfMeasureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medidas/{id} [put]
func (h *UnitOfMeasureHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUnitOfMeasureRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, msgUnitNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar unidad de medida
// @Tags         medidas
// @Param        id   path  string  true  "ID de la unidad"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medidas/{id} [delete]
func (h *UnitOfMeasureHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err, msgUnitNotFound)
	}
	return c.JSON(fiber.Map{"message": "unidad de medida eliminada"})
}
