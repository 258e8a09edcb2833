package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgalvez/almacen-api/internal/application/dto"
	"github.com/lgalvez/almacen-api/internal/application/usecase"
)

const (
	msgPrimaryNotFound   = "almacén principal no encontrado"
	msgSecondaryNotFound = "almacén secundario no encontrado"
)

// PrimaryWarehouseHandler maneja las peticiones HTTP de almacenes principales.
type PrimaryWarehouseHandler struct {
	uc *usecase.PrimaryWarehouseUseCase
}

// NewPrimaryWarehouseHandler construye el handler.
func NewPrimaryWarehouseHandler(uc *usecase.PrimaryWarehouseUseCase) *PrimaryWarehouseHandler {
	return &PrimaryWarehouseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear almacén principal
// @Description  Si no se indica capacidad_disponible (o es 0) se toma capacidad_total.
// @Tags         almacenes-principal
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePrimaryWarehouseRequest  true  "Datos del almacén"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/almacenes-principal [post]
func (h *PrimaryWarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePrimaryWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, msgPrimaryNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener almacén principal por ID
// @Tags         almacenes-principal
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes-principal/{id} [get]
func (h *PrimaryWarehouseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, msgPrimaryNotFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar almacenes principales
// @Tags         almacenes-principal
// @Produce      json
// @Param        search     query  string  false  "Busca en nombre, dirección y responsable"
// @Param        estado     query  string  false  "activo, inactivo o mantenimiento"
// @Param        page       query  int     false  "Página"            default(1)
// @Param        page_size  query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.PrimaryWarehouseListResponse
// @Router       /api/almacenes-principal [get]
func (h *PrimaryWarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.PrimaryWarehouseListQuery{
		Search:      c.Query("search"),
		Status:      c.Query("estado"),
		PageRequest: pageFromQuery(c),
	})
	if err != nil {
		return writeError(c, err, msgPrimaryNotFound)
	}
	return c.JSON(out)
}

// ListActive godoc
// @Summary      Listar almacenes principales activos
// @Tags         almacenes-principal
// @Produce      json
// @Success      200  {object}  dto.PrimaryWarehouseListResponse
// @Router       /api/almacenes-principal/activos [get]
func (h *PrimaryWarehouseHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return writeError(c, err, msgPrimaryNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar almacén principal
// @Tags         almacenes-principal
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del almacén"
// @Param        body  body  dto.UpdatePrimaryWarehouseRequest  true  "Datos completos del almacén"
// @Success      200   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/almacenes-principal/{id} [put]
func (h *PrimaryWarehouseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePrimaryWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, msgPrimaryNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar almacén principal
// @Description  Los almacenes secundarios hijos quedan sin padre. Se rechaza si aún tiene stock.
// @Tags         almacenes-principal
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes-principal/{id} [delete]
func (h *PrimaryWarehouseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err, msgPrimaryNotFound)
	}
	return c.JSON(fiber.Map{"message": "almacén principal eliminado"})
}

// SecondaryWarehouseHandler maneja las peticiones HTTP de almacenes secundarios.
type SecondaryWarehouseHandler struct {
	uc *usecase.SecondaryWarehouseUseCase
}

// NewSecondaryWarehouseHandler construye el handler.
func NewSecondaryWarehouseHandler(uc *usecase.SecondaryWarehouseUseCase) *SecondaryWarehouseHandler {
	return &SecondaryWarehouseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear almacén secundario
// @Tags         almacenes-secundario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSecondaryWarehouseRequest  true  "Datos del almacén (almacen_principal_id opcional)"
// @Success      201   {object}  dto.SecondaryWarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/almacenes-secundario [post]
func (h *SecondaryWarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSecondaryWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, msgSecondaryNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener almacén secundario por ID
// @Tags         almacenes-secundario
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {object}  dto.SecondaryWarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes-secundario/{id} [get]
func (h *SecondaryWarehouseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, msgSecondaryNotFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar almacenes secundarios
// @Tags         almacenes-secundario
// @Produce      json
// @Param        search                query  string  false  "Busca en nombre, dirección y responsable"
// @Param        estado                query  string  false  "activo, inactivo o mantenimiento"
// @Param        almacen_principal_id  query  string  false  "Filtra por almacén principal"
// @Param        page                  query  int     false  "Página"            default(1)
// @Param        page_size             query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.SecondaryWarehouseListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/almacenes-secundario [get]
func (h *SecondaryWarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.SecondaryWarehouseListQuery{
		Search:             c.Query("search"),
		Status:             c.Query("estado"),
		PrimaryWarehouseID: c.Query("almacen_principal_id"),
		PageRequest:        pageFromQuery(c),
	})
	if err != nil {
		return writeError(c, err, msgSecondaryNotFound)
	}
	return c.JSON(out)
}

// ListActive godoc
// @Summary      Listar almacenes secundarios activos
// @Tags         almacenes-secundario
// @Produce      json
// @Success      200  {object}  dto.SecondaryWarehouseListResponse
// @Router       /api/almacenes-secundario/activos [get]
func (h *SecondaryWarehouseHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return writeError(c, err, msgSecondaryNotFound)
	}
	return c.JSON(out)
}

// ListByParent godoc
// @Summary      Listar almacenes secundarios de un almacén principal
// @Tags         almacenes-secundario
// @Produce      json
// @Param        almacen_principal_id  path  string  true  "ID del almacén principal"
// @Success      200  {object}  dto.SecondaryWarehouseListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/almacenes-secundario/principal/{almacen_principal_id} [get]
func (h *SecondaryWarehouseHandler) ListByParent(c *fiber.Ctx) error {
	out, err := h.uc.ListByParent(c.UserContext(), c.Params("almacen_principal_id"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err, msgPrimaryNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar almacén secundario
// @Tags         almacenes-secundario
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del almacén"
// @Param        body  body  dto.UpdateSecondaryWarehouseRequest  true  "Datos completos del almacén"
// @Success      200   {object}  dto.SecondaryWarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/almacenes-secundario/{id} [put]
func (h *SecondaryWarehouseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSecondaryWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, msgSecondaryNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar almacén secundario
// @Tags         almacenes-secundario
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes-secundario/{id} [delete]
func (h *SecondaryWarehouseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err, msgSecondaryNotFound)
	}
	return c.JSON(fiber.Map{"message": "almacén secundario eliminado"})
}
