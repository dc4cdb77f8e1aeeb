// Package station es la interfaz de terminal del puesto de captura. Es una
// capa delgada sobre el motor de captura: traduce teclazos a llamadas del
// motor y pinta la instantánea que el motor expone. Toda la lógica de
// resolución, reconciliación y envío vive en el motor, no aquí.
package station

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jvalencia/surtido-api/internal/application/entry"
)

// Model es el modelo Bubble Tea del puesto. El estado de captura vive en el
// motor; el modelo solo guarda lo propio de la presentación (inputs, resalte
// de candidato, línea de avisos, tamaño de terminal).
type Model struct {
	engine   *entry.Engine
	ctx      context.Context
	listName string

	search   textinput.Model
	quantity textinput.Model

	highlight int // índice resaltado en la lista de candidatos
	notice    string
	noticeErr bool

	width    int
	height   int
	quitting bool
}

func newModel(ctx context.Context, engine *entry.Engine, listName string) Model {
	search := textinput.New()
	search.Placeholder = "Código o nombre del producto"
	search.CharLimit = 64
	search.Focus()

	quantity := textinput.New()
	quantity.Placeholder = "1"
	quantity.CharLimit = 5

	return Model{
		engine:   engine,
		ctx:      ctx,
		listName: listName,
		search:   search,
		quantity: quantity,
	}
}

// Init carga la lista de trabajo en segundo plano; hasta que termine, el motor
// rechaza envíos.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadWorking())
}

func (m Model) loadWorking() tea.Cmd {
	return func() tea.Msg {
		if err := m.engine.LoadWorking(m.ctx); err != nil {
			return noticeMsg{text: "No se pudo cargar la lista: " + err.Error(), isErr: true}
		}
		return stateChangedMsg{}
	}
}

// Update procesa mensajes del loop. Los teclazos se enrutan por el foco que
// reporta el motor, no por estado propio del modelo.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateChangedMsg:
		m.syncFromEngine()
		return m, nil

	case noticeMsg:
		m.notice = msg.text
		m.noticeErr = msg.isErr
		m.syncFromEngine()
		return m, nil

	case focusMsg:
		m.applyFocus(msg.target)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.engine.ToggleMode()
		m.syncFromEngine()
		return m, nil
	case "left":
		m.engine.Key(m.ctx, entry.KeyArrowLeft)
		m.syncFromEngine()
		return m, nil
	case "right":
		m.engine.Key(m.ctx, entry.KeyArrowRight)
		m.syncFromEngine()
		return m, nil
	}

	st := m.engine.State()
	switch st.Focus {
	case entry.FocusSearch:
		return m.handleSearchKey(msg, st)
	case entry.FocusQuantity:
		return m.handleQuantityKey(msg)
	case entry.FocusSubmit:
		if msg.String() == "enter" {
			m.engine.Key(m.ctx, entry.KeyEnter)
			m.syncFromEngine()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg, st entry.State) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.highlight > 0 {
			m.highlight--
		}
		return m, nil
	case "down":
		if m.highlight < len(st.Candidates)-1 {
			m.highlight++
		}
		return m, nil
	case "enter":
		if st.Mode == entry.ModeBarcode {
			// Enter en modo escáner confirma el código acumulado.
			m.engine.Key(m.ctx, entry.KeyEnter)
			m.syncFromEngine()
			return m, nil
		}
		if m.highlight >= 0 && m.highlight < len(st.Candidates) {
			m.engine.SelectCandidate(st.Candidates[m.highlight].ProductID)
			m.syncFromEngine()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != st.Buffer {
		m.highlight = 0
		m.engine.Input(m.ctx, m.search.Value())
	}
	return m, cmd
}

func (m Model) handleQuantityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		m.engine.AdjustQuantity(1)
		m.syncFromEngine()
		return m, nil
	case "down":
		m.engine.AdjustQuantity(-1)
		m.syncFromEngine()
		return m, nil
	case "enter":
		m.engine.Key(m.ctx, entry.KeyEnter)
		m.syncFromEngine()
		return m, nil
	}

	var cmd tea.Cmd
	m.quantity, cmd = m.quantity.Update(msg)
	if n, err := strconv.Atoi(m.quantity.Value()); err == nil {
		m.engine.SetQuantity(n)
	}
	return m, cmd
}

// syncFromEngine refleja la instantánea del motor en los inputs. Los inputs no
// son la fuente de verdad: si el motor limpió el buffer tras un envío, aquí se
// limpia el campo.
func (m *Model) syncFromEngine() {
	st := m.engine.State()
	if m.search.Value() != st.Buffer {
		m.search.SetValue(st.Buffer)
		m.search.CursorEnd()
	}
	want := strconv.Itoa(st.Quantity)
	if m.quantity.Value() != want {
		m.quantity.SetValue(want)
		m.quantity.CursorEnd()
	}
	if m.highlight >= len(st.Candidates) {
		m.highlight = 0
	}
	m.applyFocus(st.Focus)
}

func (m *Model) applyFocus(target entry.FocusTarget) {
	m.search.Blur()
	m.quantity.Blur()
	switch target {
	case entry.FocusSearch:
		m.search.Focus()
	case entry.FocusQuantity:
		m.quantity.Focus()
	}
}
