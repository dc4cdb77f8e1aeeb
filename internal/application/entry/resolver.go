package entry

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Resolver agrupa teclazos en una sola búsqueda saliente (debounce) y descarta
// respuestas obsoletas: cada búsqueda emitida lleva un número de secuencia
// monótono y solo la respuesta cuya secuencia sigue siendo la última toca el
// estado. Gana la última emitida sin importar el orden de llegada. Esto
// reemplaza los contadores "fetch id" repetidos por sitio de llamada.
//
// apply se invoca con el lock del Resolver tomado para que el chequeo de
// obsolescencia y la aplicación sean atómicos; el callback no debe reentrar
// al Resolver.
type Resolver struct {
	mu     sync.Mutex
	lookup ProductLookup
	notify Notifier
	apply  func(cands []Candidate, mode LookupMode)
	seq    uint64
	timer  *time.Timer
}

// NewResolver construye el resolver sobre el puerto de búsqueda.
func NewResolver(lookup ProductLookup, notify Notifier, apply func([]Candidate, LookupMode)) *Resolver {
	return &Resolver{lookup: lookup, notify: notify, apply: apply}
}

// Search programa una búsqueda tras el delay indicado, invalidando cualquier
// búsqueda anterior aún en vuelo. Una consulta vacía corta en seco: limpia los
// candidatos sin salir a la red.
func (r *Resolver) Search(ctx context.Context, query string, mode LookupMode, delay time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	tok := r.seq
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	if strings.TrimSpace(query) == "" {
		r.apply(nil, mode)
		return
	}
	r.timer = time.AfterFunc(delay, func() {
		r.fire(ctx, tok, query, mode)
	})
}

// Cancel invalida la búsqueda en vuelo (si la hay) y detiene el timer pendiente.
// La petición no se aborta en el transporte; su resultado simplemente se ignora.
func (r *Resolver) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Resolver) fire(ctx context.Context, tok uint64, query string, mode LookupMode) {
	cands, err := r.lookup.Lookup(ctx, query, mode)

	r.mu.Lock()
	defer r.mu.Unlock()
	if tok != r.seq {
		// Respuesta obsoleta: se descarta en silencio, incluso si falló.
		return
	}
	if err != nil {
		r.notify.Error("No fue posible buscar productos")
		r.apply(nil, mode)
		return
	}
	r.apply(cands, mode)
}
