package entry

import (
	"context"
	"sync"
	"time"

	"github.com/jvalencia/surtido-api/internal/domain/entity"
)

// Config opciones del motor de captura. Las variantes del flujo (aviso de
// duplicado, cantidad precargada, foco automático) son configuración de un
// solo motor, no caminos de código separados.
type Config struct {
	ListID string

	ManualDelay  time.Duration // debounce en búsqueda manual
	BarcodeDelay time.Duration // debounce en modo escáner (ráfaga de un solo código)

	DefaultQuantity          int  // cantidad inicial para producto nuevo
	DisableDuplicateAdvisory bool // no avisar cuando el producto ya está en la lista
	DisablePresetQuantity    bool // no precargar la cantidad existente en duplicados
	SuppressAutoFocus        bool // no mover el foco tras selecciones/envíos programáticos

	// OnUpdate se invoca tras cada cambio de estado visible; las UIs de event
	// loop lo usan para reinyectarse un mensaje. Puede ser nil.
	OnUpdate func()
}

func (c *Config) withDefaults() {
	if c.ManualDelay <= 0 {
		c.ManualDelay = 800 * time.Millisecond
	}
	if c.BarcodeDelay <= 0 {
		c.BarcodeDelay = 100 * time.Millisecond
	}
	if c.DefaultQuantity <= 0 {
		c.DefaultQuantity = 1
	}
}

// Deps colaboradores externos del motor.
type Deps struct {
	Lookup   ProductLookup
	Items    ItemWriter
	Snapshot SnapshotLoader
	Notify   Notifier
	Focus    FocusDriver
}

// Engine es la fachada del motor de captura. Es seguro para uso concurrente:
// los timers del debounce y los envíos corren en goroutines propias, y la
// corrección descansa en descartar resultados obsoletos (última búsqueda gana)
// y en la compuerta de un solo envío en vuelo, no en serializar la entrada.
//
// Invariante de locks: el motor nunca llama al Resolver con e.mu tomado; el
// Resolver sí llama de vuelta (applyLookup) con su propio lock tomado.
type Engine struct {
	mu       sync.Mutex
	cfg      Config
	items    ItemWriter
	snapshot SnapshotLoader
	notify   Notifier
	focusDrv FocusDriver
	resolver *Resolver
	gate     singleFlight

	mode       Mode
	buffer     string // texto crudo del campo de búsqueda
	candidates []Candidate
	selection  *Candidate
	quantity   int
	duplicate  bool
	focus      FocusTarget
	working    []*entity.ListItem // nil = aún no cargada (distinto de vacía)
}

// New construye el motor. El modo inicial es manual y el foco arranca en búsqueda.
func New(cfg Config, deps Deps) *Engine {
	cfg.withDefaults()
	e := &Engine{
		cfg:      cfg,
		items:    deps.Items,
		snapshot: deps.Snapshot,
		notify:   deps.Notify,
		focusDrv: deps.Focus,
		mode:     ModeManual,
		focus:    FocusSearch,
	}
	e.resolver = NewResolver(deps.Lookup, deps.Notify, e.applyLookup)
	return e
}

// State es la instantánea de estado visible que consumen las UIs.
type State struct {
	Mode          Mode
	Buffer        string
	Candidates    []Candidate
	Selection     *Candidate
	Quantity      int
	Duplicate     bool
	Focus         FocusTarget
	Submitting    bool
	WorkingLoaded bool
	Working       []*entity.ListItem
}

// State devuelve la instantánea actual.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	var sel *Candidate
	if e.selection != nil {
		c := *e.selection
		sel = &c
	}
	return State{
		Mode:          e.mode,
		Buffer:        e.buffer,
		Candidates:    append([]Candidate(nil), e.candidates...),
		Selection:     sel,
		Quantity:      e.quantity,
		Duplicate:     e.duplicate,
		Focus:         e.focus,
		Submitting:    e.gate.Busy(),
		WorkingLoaded: e.working != nil,
		Working:       e.working,
	}
}

// LoadWorking carga la instantánea inicial de la lista de trabajo. Hasta que
// cargue, la reconciliación bloquea cualquier envío.
func (e *Engine) LoadWorking(ctx context.Context) error {
	items, err := e.snapshot.Reload(ctx)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*entity.ListItem{}
	}
	e.mu.Lock()
	e.working = items
	e.mu.Unlock()
	e.changed()
	return nil
}

// SetWorking reemplaza la lista de trabajo (la vista que la posee la recargó
// por su cuenta, p. ej. tras editar un renglón en la tabla).
func (e *Engine) SetWorking(items []*entity.ListItem) {
	e.mu.Lock()
	e.working = items
	e.mu.Unlock()
	e.changed()
}

// SetMode cambia el modo de entrada. Acción explícita del operario: limpia el
// buffer y los candidatos e invalida cualquier búsqueda en vuelo.
func (e *Engine) SetMode(m Mode) {
	e.mu.Lock()
	if e.mode == m {
		e.mu.Unlock()
		return
	}
	e.mode = m
	e.buffer = ""
	e.candidates = nil
	e.mu.Unlock()
	e.resolver.Cancel()
	e.changed()
}

// ToggleMode alterna entre manual y código de barras.
func (e *Engine) ToggleMode() {
	e.mu.Lock()
	next := ModeBarcode
	if e.mode == ModeBarcode {
		next = ModeManual
	}
	e.mu.Unlock()
	e.SetMode(next)
}

// Input recibe el texto del campo de búsqueda. En modo manual programa la
// búsqueda con debounce (dígitos buscan por código, texto por nombre); en modo
// escáner solo acumula el buffer, la búsqueda ocurre al confirmar con Enter.
func (e *Engine) Input(ctx context.Context, text string) {
	e.mu.Lock()
	e.buffer = text
	mode := e.mode
	delay := e.cfg.ManualDelay
	e.mu.Unlock()

	if mode == ModeBarcode {
		e.changed()
		return
	}
	e.resolver.Search(ctx, text, lookupModeForText(text), delay)
	e.changed()
}

// CommitScan confirma el buffer del escáner como búsqueda por código exacto.
// Un buffer no numérico se rechaza con notificación, se limpia sin intentar
// búsqueda y el foco vuelve al campo de búsqueda.
func (e *Engine) CommitScan(ctx context.Context) {
	e.mu.Lock()
	if e.mode != ModeBarcode {
		e.mu.Unlock()
		return
	}
	raw := e.buffer
	delay := e.cfg.BarcodeDelay
	e.selection = nil
	e.duplicate = false
	if _, ok := ParseCode(raw); !ok {
		e.buffer = ""
		e.focus = FocusSearch
		e.mu.Unlock()
		e.notify.Error("Código de barras inválido")
		e.focusDrv.Focus(FocusSearch)
		e.changed()
		return
	}
	e.mu.Unlock()
	e.resolver.Search(ctx, raw, LookupExactCode, delay)
	e.changed()
}

// applyLookup recibe del Resolver el resultado de la última búsqueda vigente.
// En modo escáner una búsqueda exacta con resultado se autoselecciona; sin
// resultado notifica y devuelve el foco a búsqueda para el siguiente escaneo.
func (e *Engine) applyLookup(cands []Candidate, mode LookupMode) {
	e.mu.Lock()
	e.candidates = cands
	scan := mode == LookupExactCode && e.mode == ModeBarcode
	if scan && len(cands) == 0 {
		e.buffer = ""
		e.focus = FocusSearch
		e.mu.Unlock()
		e.notify.Error("Producto no encontrado")
		e.focusDrv.Focus(FocusSearch)
		e.changed()
		return
	}
	if scan {
		e.buffer = ""
		first := cands[0].ProductID
		e.mu.Unlock()
		e.SelectCandidate(first)
		return
	}
	e.mu.Unlock()
	e.changed()
}

// SelectCandidate fija el producto elegido y lo reconcilia contra la lista de
// trabajo: si ya está, precarga la cantidad existente y levanta el aviso de
// duplicado; si es nuevo, precarga la cantidad por defecto. En ambos casos el
// foco salta a cantidad para que el operario no suelte el teclado.
func (e *Engine) SelectCandidate(productID string) {
	e.mu.Lock()
	var sel *Candidate
	for i := range e.candidates {
		if e.candidates[i].ProductID == productID {
			c := e.candidates[i]
			sel = &c
			break
		}
	}
	if sel == nil {
		e.mu.Unlock()
		return
	}
	e.selection = sel
	e.duplicate = false
	e.quantity = e.cfg.DefaultQuantity
	if found := findByProduct(e.working, sel.ProductID); found != nil {
		if !e.cfg.DisableDuplicateAdvisory {
			e.duplicate = true
		}
		if !e.cfg.DisablePresetQuantity {
			e.quantity = found.Quantity
		}
	}
	moveFocus := !e.cfg.SuppressAutoFocus
	if moveFocus {
		e.focus = FocusQuantity
	}
	e.mu.Unlock()
	if moveFocus {
		e.focusDrv.Focus(FocusQuantity)
	}
	e.changed()
}

// ClearSelection descarta la selección viva y cualquier búsqueda en vuelo.
func (e *Engine) ClearSelection() {
	e.mu.Lock()
	e.selection = nil
	e.candidates = nil
	e.quantity = 0
	e.duplicate = false
	e.buffer = ""
	e.mu.Unlock()
	e.resolver.Cancel()
	e.changed()
}

// SetQuantity fija la cantidad a enviar. La validación (> 0) la hace la
// compuerta: el control de envío queda deshabilitado, no lanza error.
func (e *Engine) SetQuantity(n int) {
	e.mu.Lock()
	e.quantity = n
	e.mu.Unlock()
	e.changed()
}

// AdjustQuantity suma delta a la cantidad (botones +/-); nunca baja de 1.
func (e *Engine) AdjustQuantity(delta int) {
	e.mu.Lock()
	q := e.quantity + delta
	if q < 1 {
		q = 1
	}
	e.quantity = q
	e.mu.Unlock()
	e.changed()
}

// Key procesa una tecla semántica según el foco actual. Enter en búsqueda solo
// significa "confirmar escaneo" en modo código de barras; en cantidad o en el
// control de envío siempre significa enviar.
func (e *Engine) Key(ctx context.Context, k Key) {
	e.mu.Lock()
	focus := e.focus
	mode := e.mode
	e.mu.Unlock()

	if k == KeyEnter {
		switch {
		case focus == FocusSearch && mode == ModeBarcode:
			e.CommitScan(ctx)
		case focus == FocusQuantity || focus == FocusSubmit:
			e.Submit(ctx)
		}
		return
	}

	e.mu.Lock()
	next, ok := nextFocus(focus, k)
	if ok {
		e.focus = next
	}
	e.mu.Unlock()
	if ok {
		e.focusDrv.Focus(next)
		e.changed()
	}
}

// Submit valida, reconcilia y dispara el envío del intento actual. Sin
// selección o con cantidad no positiva no hace nada (validación proactiva);
// con la lista sin cargar bloquea con aviso; con un envío ya en vuelo
// descarta el disparo.
func (e *Engine) Submit(ctx context.Context) {
	e.mu.Lock()
	if e.selection == nil || e.quantity <= 0 {
		e.mu.Unlock()
		return
	}
	intent, err := Reconcile(*e.selection, e.working)
	if err != nil {
		e.mu.Unlock()
		e.notify.Error("La lista aún se está cargando, intenta de nuevo")
		return
	}
	intent.Quantity = e.quantity
	if !e.gate.TryAcquire() {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()
	e.changed()
	go e.submit(ctx, intent)
}

func (e *Engine) submit(ctx context.Context, intent Intent) {
	defer e.gate.Release()

	var err error
	switch intent.Kind {
	case IntentUpdate:
		_, err = e.items.Update(ctx, intent.ItemID, intent.Quantity, intent.Comment)
	default:
		_, err = e.items.Create(ctx, e.cfg.ListID, intent.ProductID, intent.Quantity)
	}
	if err != nil {
		// Selección y cantidad quedan intactas para reintentar sin reteclear.
		if intent.Kind == IntentUpdate {
			e.notify.Error("Error al actualizar el producto")
		} else {
			e.notify.Error("Error al agregar el producto")
		}
		e.changed()
		return
	}

	items, rerr := e.snapshot.Reload(ctx)
	e.mu.Lock()
	if rerr == nil {
		if items == nil {
			items = []*entity.ListItem{}
		}
		e.working = items
	}
	e.selection = nil
	e.candidates = nil
	e.quantity = 0
	e.duplicate = false
	e.buffer = ""
	refocus := !e.cfg.SuppressAutoFocus
	if refocus {
		e.focus = FocusSearch
	}
	e.mu.Unlock()

	if intent.Kind == IntentUpdate {
		e.notify.Success("Producto actualizado correctamente")
	} else {
		e.notify.Success("Producto agregado correctamente")
	}
	if refocus {
		e.focusDrv.Focus(FocusSearch)
	}
	e.changed()
}

func (e *Engine) changed() {
	if e.cfg.OnUpdate != nil {
		e.cfg.OnUpdate()
	}
}
