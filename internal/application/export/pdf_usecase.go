package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/jvalencia/surtido-api/internal/application/lookup"
	"github.com/jvalencia/surtido-api/internal/domain"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
	"github.com/jvalencia/surtido-api/internal/domain/repository"
)

const sinProveedor = "Sin proveedor"

// UseCase exporta una lista de pedido como documento PDF.
type UseCase struct {
	lists     repository.SupplierListRepository
	items     repository.ListItemRepository
	generator Generator
}

// NewUseCase construye el caso de uso.
func NewUseCase(lists repository.SupplierListRepository, items repository.ListItemRepository, generator Generator) *UseCase {
	return &UseCase{lists: lists, items: items, generator: generator}
}

// Export arma y renderiza el documento de la lista. Una lista vacía se exporta
// igual: el encabezado sin renglones también sirve de constancia.
func (uc *UseCase) Export(listID string, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	list, err := uc.lists.GetByID(listID)
	if err != nil {
		return nil, err
	}
	items, err := uc.items.ListByList(listID)
	if err != nil {
		return nil, err
	}

	doc := Document{
		ListName:    list.Name,
		GeneratedAt: time.Now(),
		ShowSKU:     opts.ShowSKU,
		Sections:    buildSections(items, opts),
	}
	return uc.generator.Generate(doc)
}

func (o Options) withDefaults() Options {
	if o.Mode == "" {
		o.Mode = ModeAll
	}
	if o.Sort == "" {
		o.Sort = SortName
	}
	return o
}

func (o Options) validate() error {
	switch o.Mode {
	case ModeAll, ModeSuppliers:
	default:
		return fmt.Errorf("%w: modo de exportación %q", domain.ErrInvalidInput, o.Mode)
	}
	switch o.Sort {
	case SortName, SortSuppliers, SortSKU:
	default:
		return fmt.Errorf("%w: orden de exportación %q", domain.ErrInvalidInput, o.Sort)
	}
	return nil
}

func buildSections(items []*entity.ListItem, opts Options) []Section {
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, toRow(it))
	}

	if opts.Mode == ModeSuppliers {
		return groupBySupplier(rows, opts.Sort)
	}
	sortRows(rows, opts.Sort)
	return []Section{{Rows: rows}}
}

func toRow(it *entity.ListItem) Row {
	r := Row{Quantity: it.Quantity, Comment: it.Comment}
	if it.Product != nil {
		r.SKU = it.Product.SKU
		r.Name = it.Product.Name
		r.MeasureUnit = it.Product.MeasureUnit
		if it.Product.Supplier != nil {
			r.SupplierName = it.Product.Supplier.Name
		}
	}
	if r.SupplierName == "" {
		r.SupplierName = sinProveedor
	}
	return r
}

func groupBySupplier(rows []Row, by Sort) []Section {
	groups := map[string][]Row{}
	for _, r := range rows {
		groups[r.SupplierName] = append(groups[r.SupplierName], r)
	}
	titles := make([]string, 0, len(groups))
	for title := range groups {
		titles = append(titles, title)
	}
	sort.Slice(titles, func(i, j int) bool {
		return lookup.Normalize(titles[i]) < lookup.Normalize(titles[j])
	})

	sections := make([]Section, 0, len(titles))
	for _, title := range titles {
		g := groups[title]
		sortRows(g, by)
		sections = append(sections, Section{Title: title, Rows: g})
	}
	return sections
}

func sortRows(rows []Row, by Sort) {
	switch by {
	case SortSKU:
		sort.Slice(rows, func(i, j int) bool { return rows[i].SKU < rows[j].SKU })
	case SortSuppliers:
		sort.Slice(rows, func(i, j int) bool {
			si, sj := lookup.Normalize(rows[i].SupplierName), lookup.Normalize(rows[j].SupplierName)
			if si != sj {
				return si < sj
			}
			return lookup.Normalize(rows[i].Name) < lookup.Normalize(rows[j].Name)
		})
	default: // SortName
		sort.Slice(rows, func(i, j int) bool {
			return lookup.Normalize(rows[i].Name) < lookup.Normalize(rows[j].Name)
		})
	}
}
