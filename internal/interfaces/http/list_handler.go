package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvalencia/surtido-api/internal/application/dto"
	"github.com/jvalencia/surtido-api/internal/application/usecase"
)

// ListHandler maneja las peticiones HTTP para las listas de pedido.
type ListHandler struct {
	uc *usecase.SupplierListUseCase
}

// NewListHandler construye el handler.
func NewListHandler(uc *usecase.SupplierListUseCase) *ListHandler {
	return &ListHandler{uc: uc}
}

// Create godoc
// @Summary      Crear lista de pedido
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateListRequest  true  "Nombre de la lista"
// @Success      201   {object}  dto.ListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/lists [post]
func (h *ListHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateListRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener lista por ID
// @Tags         lists
// @Produce      json
// @Param        id   path  string  true  "ID de la lista"
// @Success      200  {object}  dto.ListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lists/{id} [get]
func (h *ListHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar listas de pedido
// @Tags         lists
// @Produce      json
// @Success      200  {object}  dto.ListsResponse
// @Router       /api/lists [get]
func (h *ListHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Rename godoc
// @Summary      Renombrar lista
// @Tags         lists
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la lista"
// @Param        body  body  dto.RenameListRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.ListResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lists/{id} [put]
func (h *ListHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameListRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Rename(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lista y sus renglones
// @Tags         lists
// @Param        id  path  string  true  "ID de la lista"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lists/{id} [delete]
func (h *ListHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
