//go:build js && wasm

// Command webclient is the browser side of the tourism page, built with
// GOOS=js GOARCH=wasm and loaded by web/index.html.
package main

import (
	"context"
	"syscall/js"

	"tourism/internal/client/dom"
	"tourism/internal/client/gateway"
	"tourism/internal/client/page"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})

	origin := js.Global().Get("location").Get("origin").String()
	gw := gateway.New(origin)

	doc := dom.New()
	modals := page.NewModals()
	doc.BindModal(modals.AddTourist)
	doc.BindModal(modals.AddDestination)
	doc.BindModal(modals.RecordVisit)

	p := page.New(gw, doc, modals, log)
	ctx := context.Background()

	doc.OnClick("showAddTourist", p.ShowAddTouristForm)
	doc.OnClick("showAddDestination", p.ShowAddDestinationForm)
	doc.OnClick("showRecordVisit", func() { p.ShowRecordVisitForm(ctx) })

	doc.OnSubmit(page.AddTouristForm, func(f *dom.Form) { _ = p.SubmitTourist(ctx, f) })
	doc.OnSubmit(page.AddDestinationForm, func(f *dom.Form) { _ = p.SubmitDestination(ctx, f) })
	doc.OnSubmit(page.RecordVisitForm, func(f *dom.Form) { _ = p.SubmitVisit(ctx, f) })

	p.Bootstrap(ctx)

	select {}
}
