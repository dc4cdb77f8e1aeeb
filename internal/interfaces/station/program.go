package station

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jvalencia/surtido-api/internal/application/entry"
)

// Deps son los colaboradores remotos del puesto (búsqueda, escritura y
// recarga contra la API).
type Deps struct {
	Lookup   entry.ProductLookup
	Items    entry.ItemWriter
	Snapshot entry.SnapshotLoader
}

// Run arma el motor, el modelo y el programa, y bloquea hasta que el operario
// sale. Los avisos y el foco que el motor emite desde sus goroutines entran al
// loop vía Program.Send; por eso los adaptadores se cablean después de crear
// el programa.
func Run(ctx context.Context, cfg entry.Config, deps Deps, listName string) error {
	var p *tea.Program
	send := func(msg tea.Msg) {
		if p != nil {
			p.Send(msg)
		}
	}

	cfg.OnUpdate = func() { send(stateChangedMsg{}) }
	engine := entry.New(cfg, entry.Deps{
		Lookup:   deps.Lookup,
		Items:    deps.Items,
		Snapshot: deps.Snapshot,
		Notify:   &programNotifier{send: send},
		Focus:    &programFocus{send: send},
	})

	p = tea.NewProgram(newModel(ctx, engine, listName), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
