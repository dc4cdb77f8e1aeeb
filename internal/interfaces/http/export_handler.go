package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jvalencia/surtido-api/internal/application/export"
)

// ExportHandler maneja la exportación de listas a PDF.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// ExportPDF godoc
// @Summary      Exportar lista como PDF
// @Tags         lists
// @Produce      application/pdf
// @Param        id    path   string  true   "ID de la lista"
// @Param        mode  query  string  false  "all | suppliers"      default(all)
// @Param        sort  query  string  false  "name | suppliers | sku"  default(name)
// @Param        sku   query  bool    false  "Incluir columna de código"  default(false)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lists/{id}/export/pdf [get]
func (h *ExportHandler) ExportPDF(c *fiber.Ctx) error {
	opts := export.Options{
		Mode:    export.Mode(c.Query("mode", string(export.ModeAll))),
		Sort:    export.Sort(c.Query("sort", string(export.SortName))),
		ShowSKU: c.QueryBool("sku", false),
	}
	out, err := h.uc.Export(c.Params("id"), opts)
	if err != nil {
		return writeError(c, err)
	}
	filename := fmt.Sprintf("lista-%s.pdf", time.Now().Format("20060102-1504"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}
