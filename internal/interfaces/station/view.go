package station

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jvalencia/surtido-api/internal/application/entry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedBoxStyle = boxStyle.
			BorderForeground(lipgloss.Color("62"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("241")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	buttonFocusStyle = buttonStyle.
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				BorderForeground(lipgloss.Color("62"))
)

const maxVisibleCandidates = 8

// View pinta la pantalla completa a partir de la instantánea del motor.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	st := m.engine.State()

	var b strings.Builder
	b.WriteString(m.viewHeader(st) + "\n\n")
	b.WriteString(m.viewSearch(st) + "\n")
	b.WriteString(m.viewCandidates(st))
	b.WriteString(m.viewEntry(st) + "\n")
	b.WriteString(m.viewNotice() + "\n")
	b.WriteString(m.viewWorking(st) + "\n")
	b.WriteString(dimStyle.Render("tab modo · flechas mover foco · enter confirmar · esc salir"))
	return b.String()
}

func (m Model) viewHeader(st entry.State) string {
	mode := "MANUAL"
	if st.Mode == entry.ModeBarcode {
		mode = "ESCÁNER"
	}
	return titleStyle.Render(" Surtido · "+m.listName+" ") + "  " + modeStyle.Render(mode)
}

func (m Model) viewSearch(st entry.State) string {
	style := boxStyle
	if st.Focus == entry.FocusSearch {
		style = focusedBoxStyle
	}
	return style.Render("Buscar  " + m.search.View())
}

func (m Model) viewCandidates(st entry.State) string {
	if st.Mode == entry.ModeBarcode || len(st.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for i, c := range st.Candidates {
		if i >= maxVisibleCandidates {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d más", len(st.Candidates)-maxVisibleCandidates)) + "\n")
			break
		}
		line := "  " + c.Label()
		if i == m.highlight && st.Focus == entry.FocusSearch {
			line = cursorStyle.Render("> " + c.Label())
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewEntry(st entry.State) string {
	if st.Selection == nil {
		return dimStyle.Render("  Sin producto seleccionado")
	}

	var b strings.Builder
	b.WriteString("  " + st.Selection.Label() + "\n")
	if st.Duplicate {
		b.WriteString("  " + warnStyle.Render("Ya está en la lista: se actualizará la cantidad") + "\n")
	}

	qtyStyle := boxStyle
	if st.Focus == entry.FocusQuantity {
		qtyStyle = focusedBoxStyle
	}
	qty := qtyStyle.Render("Cantidad  " + m.quantity.View())

	label := "Agregar"
	if st.Duplicate {
		label = "Actualizar"
	}
	if st.Submitting {
		label = "Enviando…"
	}
	btn := buttonStyle.Render(label)
	if st.Focus == entry.FocusSubmit {
		btn = buttonFocusStyle.Render(label)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, qty, "  ", btn))
	return b.String()
}

func (m Model) viewNotice() string {
	if m.notice == "" {
		return ""
	}
	if m.noticeErr {
		return errStyle.Render("  " + m.notice)
	}
	return okStyle.Render("  " + m.notice)
}

func (m Model) viewWorking(st entry.State) string {
	if !st.WorkingLoaded {
		return dimStyle.Render("  Cargando lista de trabajo…")
	}
	header := fmt.Sprintf("  Lista de trabajo: %d renglones", len(st.Working))
	if len(st.Working) == 0 {
		return dimStyle.Render(header)
	}

	// Se muestran los últimos renglones: es lo que el operario acaba de capturar.
	var b strings.Builder
	b.WriteString(dimStyle.Render(header) + "\n")
	start := len(st.Working) - 5
	if start < 0 {
		start = 0
	}
	for _, it := range st.Working[start:] {
		name := it.ProductID
		if it.Product != nil {
			name = it.Product.Name
		}
		b.WriteString(fmt.Sprintf("    %3d × %s\n", it.Quantity, name))
	}
	return strings.TrimRight(b.String(), "\n")
}
