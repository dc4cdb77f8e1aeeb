package entry_test

import (
	"context"
	"sync"
	"time"

	"github.com/jvalencia/surtido-api/internal/application/entry"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba para los puertos del motor
// ──────────────────────────────────────────────────────────────────────────────

// fakeNotifier acumula notificaciones y señala por canal para sincronizar los
// tests con los envíos que corren en goroutine.
type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
	signal    chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{signal: make(chan string, 16)}
}

func (n *fakeNotifier) Success(msg string) {
	n.mu.Lock()
	n.successes = append(n.successes, msg)
	n.mu.Unlock()
	n.signal <- "ok:" + msg
}

func (n *fakeNotifier) Error(msg string) {
	n.mu.Lock()
	n.failures = append(n.failures, msg)
	n.mu.Unlock()
	n.signal <- "err:" + msg
}

func (n *fakeNotifier) lastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.failures) == 0 {
		return ""
	}
	return n.failures[len(n.failures)-1]
}

func (n *fakeNotifier) counts() (successes, failures int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.successes), len(n.failures)
}

// wait espera la próxima notificación (con prefijo "ok:" o "err:") o expira.
func (n *fakeNotifier) wait(timeout time.Duration) (string, bool) {
	select {
	case msg := <-n.signal:
		return msg, true
	case <-time.After(timeout):
		return "", false
	}
}

// fakeFocus registra cada movimiento de foco que pide el motor.
type fakeFocus struct {
	mu      sync.Mutex
	history []entry.FocusTarget
}

func (f *fakeFocus) Focus(t entry.FocusTarget) {
	f.mu.Lock()
	f.history = append(f.history, t)
	f.mu.Unlock()
}

func (f *fakeFocus) last() (entry.FocusTarget, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.history) == 0 {
		return 0, false
	}
	return f.history[len(f.history)-1], true
}

// fakeLookup responde por query. Si block tiene un canal para la query, la
// llamada se detiene hasta que el test lo cierre (simula respuestas lentas
// que llegan fuera de orden).
type fakeLookup struct {
	mu        sync.Mutex
	responses map[string][]entry.Candidate
	failures  map[string]error
	block     map[string]chan struct{}
	calls     []string
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		responses: make(map[string][]entry.Candidate),
		failures:  make(map[string]error),
		block:     make(map[string]chan struct{}),
	}
}

func (l *fakeLookup) Lookup(_ context.Context, query string, _ entry.LookupMode) ([]entry.Candidate, error) {
	l.mu.Lock()
	l.calls = append(l.calls, query)
	gate := l.block[query]
	resp := l.responses[query]
	err := l.failures[query]
	l.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (l *fakeLookup) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.calls)
}

func (l *fakeLookup) calledQueries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// fakeItems cuenta escrituras. Si gate no es nil, Create/Update se bloquean
// hasta que el test cierre el canal (simula un envío en vuelo).
type fakeItems struct {
	mu      sync.Mutex
	creates int
	updates int
	err     error
	gate    chan struct{}
}

func (s *fakeItems) Create(_ context.Context, listID, productID string, quantity int) (*entity.ListItem, error) {
	s.mu.Lock()
	s.creates++
	gate := s.gate
	err := s.err
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return &entity.ListItem{ID: "item-" + productID, ListID: listID, ProductID: productID, Quantity: quantity}, nil
}

func (s *fakeItems) Update(_ context.Context, itemID string, quantity int, comment string) (*entity.ListItem, error) {
	s.mu.Lock()
	s.updates++
	gate := s.gate
	err := s.err
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return &entity.ListItem{ID: itemID, Quantity: quantity, Comment: comment}, nil
}

func (s *fakeItems) Delete(_ context.Context, _ string) error { return nil }

func (s *fakeItems) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *fakeItems) writeCounts() (creates, updates int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creates, s.updates
}

// fakeSnapshot devuelve la lista de trabajo configurada y cuenta recargas.
type fakeSnapshot struct {
	mu      sync.Mutex
	items   []*entity.ListItem
	reloads int
}

func (s *fakeSnapshot) Reload(_ context.Context) ([]*entity.ListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloads++
	return s.items, nil
}

func (s *fakeSnapshot) reloadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloads
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del motor para tests: debounce de 1ms para no alargar la suite
// ──────────────────────────────────────────────────────────────────────────────

type engineFixture struct {
	engine   *entry.Engine
	lookup   *fakeLookup
	items    *fakeItems
	snapshot *fakeSnapshot
	notify   *fakeNotifier
	focus    *fakeFocus
}

func buildEngine(cfg entry.Config) *engineFixture {
	if cfg.ListID == "" {
		cfg.ListID = "list-1"
	}
	if cfg.ManualDelay == 0 {
		cfg.ManualDelay = time.Millisecond
	}
	if cfg.BarcodeDelay == 0 {
		cfg.BarcodeDelay = time.Millisecond
	}
	f := &engineFixture{
		lookup:   newFakeLookup(),
		items:    &fakeItems{},
		snapshot: &fakeSnapshot{},
		notify:   newFakeNotifier(),
		focus:    &fakeFocus{},
	}
	f.engine = entry.New(cfg, entry.Deps{
		Lookup:   f.lookup,
		Items:    f.items,
		Snapshot: f.snapshot,
		Notify:   f.notify,
		Focus:    f.focus,
	})
	return f
}

func candidate(id string, sku int64, name string) entry.Candidate {
	return entry.Candidate{ProductID: id, SKU: sku, Name: name, SupplierName: "Distribuidora Norte"}
}

func workingItem(productID string, qty int) *entity.ListItem {
	return &entity.ListItem{ID: "item-" + productID, ListID: "list-1", ProductID: productID, Quantity: qty}
}
