//go:build js && wasm

package dom

import (
	"syscall/js"

	"tourism/internal/client/modal"
	"tourism/internal/client/render"
)

type Document struct {
	doc   js.Value
	funcs []js.Func
}

func New() *Document {
	return &Document{doc: js.Global().Get("document")}
}

func (d *Document) byID(id string) js.Value {
	return d.doc.Call("getElementById", id)
}

func (d *Document) create(tag string) js.Value {
	return d.doc.Call("createElement", tag)
}

// RenderList clears the container and appends one element per item. Text is
// assigned as text nodes, never parsed as markup.
func (d *Document) RenderList(containerID string, items []render.Item) {
	el := d.byID(containerID)
	if el.IsNull() {
		return
	}
	el.Set("innerHTML", "")
	for _, it := range items {
		div := d.create("div")
		div.Set("className", it.Class)

		h5 := d.create("h5")
		h5.Set("textContent", it.Title)
		div.Call("appendChild", h5)

		p := d.create("p")
		for i, line := range it.Lines {
			if i > 0 {
				p.Call("appendChild", d.create("br"))
			}
			p.Call("appendChild", d.doc.Call("createTextNode", line))
		}
		div.Call("appendChild", p)
		el.Call("appendChild", div)
	}
}

func (d *Document) RenderOptions(selectID string, opts []render.Option) {
	el := d.byID(selectID)
	if el.IsNull() {
		return
	}
	el.Set("innerHTML", "")
	for _, o := range opts {
		opt := d.create("option")
		opt.Set("value", o.Value)
		opt.Set("textContent", o.Label)
		el.Call("appendChild", opt)
	}
}

// Form reads fields by element id and resets through the form element.
type Form struct {
	doc *Document
	el  js.Value
}

func (f *Form) Value(fieldID string) string {
	el := f.doc.byID(fieldID)
	if el.IsNull() {
		return ""
	}
	return el.Get("value").String()
}

func (f *Form) Reset() { f.el.Call("reset") }

// OnSubmit cancels native submission and runs fn on its own goroutine, so
// the event callback returns before any request is made.
func (d *Document) OnSubmit(formID string, fn func(*Form)) {
	el := d.byID(formID)
	if el.IsNull() {
		return
	}
	form := &Form{doc: d, el: el}
	d.listen(el, "submit", func(event js.Value) {
		event.Call("preventDefault")
		go fn(form)
	})
}

func (d *Document) OnClick(id string, fn func()) {
	el := d.byID(id)
	if el.IsNull() {
		return
	}
	d.listen(el, "click", func(js.Value) { go fn() })
}

// BindModal lets m drive the Bootstrap modal with the same id, and routes
// the framework's own dismissals back into m.
func (d *Document) BindModal(m *modal.Modal) {
	el := d.byID(m.Name())
	if el.IsNull() {
		return
	}
	bs := js.Global().Get("bootstrap").Get("Modal").Call("getOrCreateInstance", el)
	m.OnChange(func(visible bool) {
		if visible {
			bs.Call("show")
		} else {
			bs.Call("hide")
		}
	})
	d.listen(el, "hidden.bs.modal", func(js.Value) { m.Hide() })
}

func (d *Document) listen(el js.Value, event string, fn func(js.Value)) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	d.funcs = append(d.funcs, cb)
	el.Call("addEventListener", event, cb)
}
