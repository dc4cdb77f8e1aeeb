package entry

import "sync"

// singleFlight es la compuerta de envío: a lo sumo una operación pendiente a
// la vez. Los disparos que llegan mientras está ocupada se descartan, no se
// encolan ni reemplazan al que está en vuelo.
type singleFlight struct {
	mu   sync.Mutex
	busy bool
}

// TryAcquire abre la compuerta si está libre. Devuelve false si ya hay una
// operación en vuelo.
func (g *singleFlight) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return false
	}
	g.busy = true
	return true
}

// Release libera la compuerta al terminar la operación, exitosa o no.
func (g *singleFlight) Release() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}

// Busy informa si hay una operación en vuelo (para deshabilitar el control).
func (g *singleFlight) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}
