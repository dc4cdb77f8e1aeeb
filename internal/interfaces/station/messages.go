package station

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jvalencia/surtido-api/internal/application/entry"
)

// Mensajes que el motor inyecta al event loop. El motor corre goroutines
// propias (debounce, envío), así que sus avisos entran por Program.Send y el
// modelo nunca se toca desde fuera del loop.

// stateChangedMsg el estado visible del motor cambió; hay que repintar.
type stateChangedMsg struct{}

// noticeMsg aviso para la línea de estado.
type noticeMsg struct {
	text  string
	isErr bool
}

// focusMsg el motor pide mover el foco de la interfaz.
type focusMsg struct {
	target entry.FocusTarget
}

// programNotifier implementa entry.Notifier reinyectando avisos al loop.
type programNotifier struct {
	send func(tea.Msg)
}

func (n *programNotifier) Success(msg string) { n.send(noticeMsg{text: msg}) }
func (n *programNotifier) Error(msg string)   { n.send(noticeMsg{text: msg, isErr: true}) }

// programFocus implementa entry.FocusDriver reinyectando el destino al loop.
type programFocus struct {
	send func(tea.Msg)
}

func (f *programFocus) Focus(target entry.FocusTarget) { f.send(focusMsg{target: target}) }
