package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lgalvez/almacen-api/internal/application/dto"
	"github.com/lgalvez/almacen-api/internal/application/inventory"
	"github.com/lgalvez/almacen-api/internal/application/usecase"
)

const msgStockNotFound = "registro de stock no encontrado"

// StockHandler maneja las peticiones HTTP de registros de stock y del reporte de stock bajo.
type StockHandler struct {
	uc       *usecase.StockUseCase
	lowStock *inventory.LowStockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase, lowStock *inventory.LowStockUseCase) *StockHandler {
	return &StockHandler{uc: uc, lowStock: lowStock}
}

// Create godoc
// @Summary      Crear registro de stock
// @Description  Debe indicarse exactamente uno de almacen_principal_id o almacen_secundario_id.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequest  true  "Datos del registro"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, msgStockNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de stock por ID
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, msgStockNotFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar stock
// @Tags         stock
// @Produce      json
// @Param        search                 query  string  false  "Busca en ubicación y lote"
// @Param        estado                 query  string  false  "disponible, reservado, agotado o vencido"
// @Param        producto_id            query  string  false  "Filtra por producto"
// @Param        almacen_principal_id   query  string  false  "Filtra por almacén principal"
// @Param        almacen_secundario_id  query  string  false  "Filtra por almacén secundario"
// @Param        page                   query  int     false  "Página"            default(1)
// @Param        page_size              query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), dto.StockListQuery{
		Search:               c.Query("search"),
		Status:               c.Query("estado"),
		ProductID:            c.Query("producto_id"),
		PrimaryWarehouseID:   c.Query("almacen_principal_id"),
		SecondaryWarehouseID: c.Query("almacen_secundario_id"),
		PageRequest:          pageFromQuery(c),
	})
	if err != nil {
		return writeError(c, err, msgStockNotFound)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Listar stock de un producto
// @Tags         stock
// @Produce      json
// @Param        producto_id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/producto/{producto_id} [get]
func (h *StockHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.UserContext(), c.Params("producto_id"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err, msgProductNotFound)
	}
	return c.JSON(out)
}

// ListByPrimaryWarehouse godoc
// @Summary      Listar stock de un almacén principal
// @Tags         stock
// @Produce      json
// @Param        almacen_principal_id  path  string  true  "ID del almacén principal"
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/almacen-principal/{almacen_principal_id} [get]
func (h *StockHandler) ListByPrimaryWarehouse(c *fiber.Ctx) error {
	out, err := h.uc.ListByPrimaryWarehouse(c.UserContext(), c.Params("almacen_principal_id"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err, msgPrimaryNotFound)
	}
	return c.JSON(out)
}

// ListBySecondaryWarehouse godoc
// @Summary      Listar stock de un almacén secundario
// @Tags         stock
// @Produce      json
// @Param        almacen_secundario_id  path  string  true  "ID del almacén secundario"
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/almacen-secundario/{almacen_secundario_id} [get]
func (h *StockHandler) ListBySecondaryWarehouse(c *fiber.Ctx) error {
	out, err := h.uc.ListBySecondaryWarehouse(c.UserContext(), c.Params("almacen_secundario_id"), pageFromQuery(c))
	if err != nil {
		return writeError(c, err, msgSecondaryNotFound)
	}
	return c.JSON(out)
}

// ListLowStock godoc
// @Summary      Stock bajo
// @Description  Registros de productos activos cuya cantidad disponible es menor o igual
// @Description  al stock mínimo del producto. Cada ubicación se evalúa por separado.
// @Tags         stock
// @Produce      json
// @Param        almacen_principal_id   query  string  false  "Acota a un almacén principal"
// @Param        almacen_secundario_id  query  string  false  "Acota a un almacén secundario"
// @Success      200  {object}  dto.LowStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/stock-bajo [get]
func (h *StockHandler) ListLowStock(c *fiber.Ctx) error {
	out, err := h.lowStock.List(c.UserContext(), lowStockQuery(c))
	if err != nil {
		return writeError(c, err, msgStockNotFound)
	}
	return c.JSON(out)
}

// LowStockPDF godoc
// @Summary      Reporte PDF de stock bajo
// @Tags         stock
// @Produce      application/pdf
// @Param        almacen_principal_id   query  string  false  "Acota a un almacén principal"
// @Param        almacen_secundario_id  query  string  false  "Acota a un almacén secundario"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock/stock-bajo/pdf [get]
func (h *StockHandler) LowStockPDF(c *fiber.Ctx) error {
	pdf, err := h.lowStock.ReportPDF(c.UserContext(), lowStockQuery(c))
	if errors.Is(err, inventory.ErrReportUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "REPORT_UNAVAILABLE", Message: err.Error()})
	}
	if err != nil {
		return writeError(c, err, msgStockNotFound)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="stock-bajo-%s.pdf"`, time.Now().Format("20060102")))
	return c.Send(pdf)
}

// Update godoc
// @Summary      Reemplazar registro de stock
// @Description  Cambia cantidades, ubicación, vencimiento, lote y estado. Producto y almacén no se modifican.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateStockRequest  true  "Datos del registro"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, msgStockNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro de stock
// @Tags         stock
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err, msgStockNotFound)
	}
	return c.JSON(fiber.Map{"message": "registro de stock eliminado"})
}

func lowStockQuery(c *fiber.Ctx) dto.LowStockQuery {
	return dto.LowStockQuery{
		PrimaryWarehouseID:   c.Query("almacen_principal_id"),
		SecondaryWarehouseID: c.Query("almacen_secundario_id"),
	}
}
