package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvalencia/surtido-api/internal/application/dto"
	"github.com/jvalencia/surtido-api/internal/application/usecase"
)

// ItemHandler maneja las peticiones HTTP para los renglones de una lista.
type ItemHandler struct {
	uc *usecase.ListItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ListItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar producto a la lista
// @Description  Si el producto ya está en la lista responde 409; el cliente debe actualizar el renglón existente.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la lista"
// @Param        body  body  dto.CreateItemRequest  true  "Producto y cantidad"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/lists/{id}/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByList godoc
// @Summary      Renglones de una lista
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID de la lista"
// @Success      200  {object}  dto.ItemsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lists/{id}/items [get]
func (h *ItemHandler) ListByList(c *fiber.Ctx) error {
	out, err := h.uc.ListByList(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Ajustar cantidad o novedad de un renglón
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID de la lista"
// @Param        itemId  path  string  true  "ID del renglón"
// @Param        body    body  dto.UpdateItemRequest  true  "Cambios"
// @Success      200     {object}  dto.ItemResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/lists/{id}/items/{itemId} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("itemId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Quitar renglón de la lista
// @Tags         items
// @Param        id      path  string  true  "ID de la lista"
// @Param        itemId  path  string  true  "ID del renglón"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lists/{id}/items/{itemId} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("itemId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
