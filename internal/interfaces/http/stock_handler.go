package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/application/inventory"
)

// StockHandler maneja ajustes manuales de stock y la consulta de movimientos.
type StockHandler struct {
	uc *inventory.AdjustStockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.AdjustStockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Adjust godoc
// @Summary      Ajustar stock manualmente (cantidad con signo)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Ajuste"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/ajustes [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.BookID == "" || in.Cantidad == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "book_id y cantidad (distinta de cero) son requeridos"))
	}
	if err := h.uc.Adjust(c.UserContext(), GetUserID(c), in); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Movements godoc
// @Summary      Listar movimientos de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        book_id  query  string  false  "Filtrar por libro"
// @Success      200      {object}  dto.StockMovementListResponse
// @Router       /api/stock/movimientos [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.ListMovements(c.Query("book_id"), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
