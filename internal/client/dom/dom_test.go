//go:build js && wasm

package dom

import (
	"syscall/js"
	"testing"

	"tourism/internal/client/modal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBootstrap struct {
	listeners map[string]js.Value
	calls     []string
	funcs     []js.Func
}

func (f *fakeBootstrap) fn(body func(args []js.Value) any) js.Func {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any { return body(args) })
	f.funcs = append(f.funcs, cb)
	return cb
}

// installBootstrap replaces document and bootstrap with stand-ins exposing a
// single element with the given id.
func installBootstrap(t *testing.T, id string) *fakeBootstrap {
	t.Helper()
	f := &fakeBootstrap{listeners: map[string]js.Value{}}
	object := js.Global().Get("Object")

	el := object.New()
	el.Set("addEventListener", f.fn(func(args []js.Value) any {
		f.listeners[args[0].String()] = args[1]
		return nil
	}))

	doc := object.New()
	doc.Set("getElementById", f.fn(func(args []js.Value) any {
		if args[0].String() == id {
			return el
		}
		return js.Null()
	}))

	instance := object.New()
	instance.Set("show", f.fn(func([]js.Value) any { f.calls = append(f.calls, "show"); return nil }))
	instance.Set("hide", f.fn(func([]js.Value) any { f.calls = append(f.calls, "hide"); return nil }))

	ctor := object.New()
	ctor.Set("getOrCreateInstance", f.fn(func([]js.Value) any { return instance }))
	bs := object.New()
	bs.Set("Modal", ctor)

	global := js.Global()
	prevDoc, prevBS := global.Get("document"), global.Get("bootstrap")
	global.Set("document", doc)
	global.Set("bootstrap", bs)
	t.Cleanup(func() {
		global.Set("document", prevDoc)
		global.Set("bootstrap", prevBS)
		for _, cb := range f.funcs {
			cb.Release()
		}
	})
	return f
}

func TestBindModalDrivesBootstrap(t *testing.T) {
	f := installBootstrap(t, "addTouristModal")
	m := modal.New("addTouristModal", nil)
	New().BindModal(m)

	m.Show()
	m.Hide()
	assert.Equal(t, []string{"show", "hide"}, f.calls)
}

func TestBindModalNativeDismissHidesModal(t *testing.T) {
	f := installBootstrap(t, "recordVisitModal")
	m := modal.New("recordVisitModal", nil)
	New().BindModal(m)

	m.Show()
	require.True(t, m.Visible())

	hidden, ok := f.listeners["hidden.bs.modal"]
	require.True(t, ok, "dismiss listener registered")
	hidden.Invoke(js.Global().Get("Object").New())

	assert.False(t, m.Visible())
	hidden.Invoke(js.Global().Get("Object").New())
	assert.Equal(t, []string{"show", "hide"}, f.calls, "repeat dismissals do not re-fire")
}

func TestBindModalMissingElement(t *testing.T) {
	f := installBootstrap(t, "addTouristModal")
	m := modal.New("addDestinationModal", nil)
	New().BindModal(m)

	m.Show()
	assert.Empty(t, f.calls)
	assert.True(t, m.Visible())
}
