package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvalencia/surtido-api/internal/application/dto"
	"github.com/jvalencia/surtido-api/internal/application/entry"
	"github.com/jvalencia/surtido-api/internal/application/lookup"
	"github.com/jvalencia/surtido-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para el catálogo de productos.
// Las búsquedas por sku o name pasan por el caso de uso de búsqueda con caché:
// es el camino que los puestos de captura golpean en cada teclazo.
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	lookup *lookup.UseCase
}

// NewProductHandler construye el handler. lookupUC puede ser nil; en ese caso
// toda búsqueda va directo al repositorio.
func NewProductHandler(uc *usecase.ProductUseCase, lookupUC *lookup.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc, lookup: lookupUC}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar o listar productos
// @Description  Con sku busca código exacto; con name busca por fragmento sin tildes; sin filtros lista paginado.
// @Tags         products
// @Produce      json
// @Param        sku     query  string  false  "Código de barras exacto"
// @Param        name    query  string  false  "Fragmento del nombre"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	search := dto.ProductSearchRequest{
		SKU:        c.Query("sku"),
		Name:       c.Query("name"),
		SupplierID: c.Query("supplier_id"),
		Limit:      c.QueryInt("limit", 20),
	}
	if err := validate.Struct(&search); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: err.Error(),
		})
	}
	if search.SKU == "" && search.Name == "" && search.SupplierID == "" {
		page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
		out, err := h.uc.List(page)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}

	// Camino con caché para las consultas del puesto (sku o name a secas).
	if h.lookup != nil && search.SupplierID == "" {
		query, mode := search.Name, entry.LookupNameFragment
		if search.SKU != "" {
			query, mode = search.SKU, entry.LookupExactCode
		}
		cands, err := h.lookup.Lookup(c.UserContext(), query, mode)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(candidatesResponse(cands))
	}

	out, err := h.uc.Search(search)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// candidatesResponse proyecta los candidatos de búsqueda sobre la respuesta de
// productos. Solo llegan los campos que el operario ve; el detalle completo se
// pide por ID.
func candidatesResponse(cands []entry.Candidate) dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(cands))
	for _, cand := range cands {
		items = append(items, dto.ProductResponse{
			ID:           cand.ProductID,
			SKU:          cand.SKU,
			Name:         cand.Name,
			SupplierName: cand.SupplierName,
		})
	}
	return dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Total: len(items)},
	}
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
