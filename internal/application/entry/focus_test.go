package entry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jvalencia/surtido-api/internal/application/entry"
)

// Determinismo del enrutador de foco: desde Search, flecha derecha siempre
// lleva a Quantity; desde Quantity, izquierda vuelve a Search y derecha avanza
// a Submit; el viaje redondo regresa al estado original.
func TestFocus_TablaDeTransiciones(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		keys []entry.Key
		want entry.FocusTarget
	}{
		{"derecha desde búsqueda", []entry.Key{entry.KeyArrowRight}, entry.FocusQuantity},
		{"izquierda desde cantidad", []entry.Key{entry.KeyArrowRight, entry.KeyArrowLeft}, entry.FocusSearch},
		{"derecha hasta enviar", []entry.Key{entry.KeyArrowRight, entry.KeyArrowRight}, entry.FocusSubmit},
		{"izquierda desde enviar", []entry.Key{entry.KeyArrowRight, entry.KeyArrowRight, entry.KeyArrowLeft}, entry.FocusQuantity},
		{"viaje redondo", []entry.Key{entry.KeyArrowRight, entry.KeyArrowRight, entry.KeyArrowLeft, entry.KeyArrowLeft}, entry.FocusSearch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := buildEngine(entry.Config{})
			for _, k := range tc.keys {
				f.engine.Key(ctx, k)
			}
			assert.Equal(t, tc.want, f.engine.State().Focus)
		})
	}
}

// Las flechas que no tienen transición dejan el foco donde estaba.
func TestFocus_TeclasSinTransicionNoMueven(t *testing.T) {
	ctx := context.Background()
	f := buildEngine(entry.Config{})

	f.engine.Key(ctx, entry.KeyArrowLeft)
	assert.Equal(t, entry.FocusSearch, f.engine.State().Focus, "izquierda en búsqueda no hace nada")

	f.engine.Key(ctx, entry.KeyArrowRight)
	f.engine.Key(ctx, entry.KeyArrowRight)
	f.engine.Key(ctx, entry.KeyArrowRight)
	assert.Equal(t, entry.FocusSubmit, f.engine.State().Focus, "derecha en enviar no hace nada")
}

// Enter en búsqueda en modo manual no tiene significado de envío ni de escaneo.
func TestFocus_EnterEnBusquedaManualNoHaceNada(t *testing.T) {
	ctx := context.Background()
	f := buildEngine(entry.Config{})

	f.engine.Key(ctx, entry.KeyEnter)

	creates, updates := f.items.writeCounts()
	assert.Zero(t, creates+updates, "Enter en búsqueda manual no debe enviar nada")
	assert.Zero(t, f.lookup.callCount(), "tampoco debe disparar búsqueda")
	assert.Equal(t, entry.FocusSearch, f.engine.State().Focus)
}
