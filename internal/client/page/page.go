// Package page holds the controllers of the tourism page: the initial paint,
// the modal openers and the three form submissions.
package page

import (
	"context"

	"tourism/internal/client/modal"
	"tourism/internal/client/render"
	"tourism/internal/domain/models"
	"tourism/internal/jsnum"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Gateway is the remote side of the page.
type Gateway interface {
	ListTourists(ctx context.Context) ([]models.Tourist, error)
	ListDestinations(ctx context.Context) ([]models.Destination, error)
	CreateTourist(ctx context.Context, p models.TouristPayload) error
	CreateDestination(ctx context.Context, p models.DestinationPayload) error
	CreateVisit(ctx context.Context, p models.VisitPayload) error
}

// Surface replaces the full content of a container or select element.
type Surface interface {
	RenderList(containerID string, items []render.Item)
	RenderOptions(selectID string, opts []render.Option)
}

// Form reads the current value of a field and clears all fields.
type Form interface {
	Value(fieldID string) string
	Reset()
}

type Modals struct {
	AddTourist     *modal.Modal
	AddDestination *modal.Modal
	RecordVisit    *modal.Modal
}

// NewModals builds the three hidden modals named after their element ids.
func NewModals() Modals {
	return Modals{
		AddTourist:     modal.New(AddTouristModal, nil),
		AddDestination: modal.New(AddDestinationModal, nil),
		RecordVisit:    modal.New(RecordVisitModal, nil),
	}
}

type Page struct {
	gw      Gateway
	surface Surface
	modals  Modals
	log     logrus.FieldLogger
}

func New(gw Gateway, surface Surface, modals Modals, log logrus.FieldLogger) *Page {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Page{gw: gw, surface: surface, modals: modals, log: log}
}

func (p *Page) Modals() Modals { return p.modals }

// Bootstrap paints both lists once.
func (p *Page) Bootstrap(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error { return p.LoadTourists(ctx) })
	g.Go(func() error { return p.LoadDestinations(ctx) })
	_ = g.Wait()
}

func (p *Page) LoadTourists(ctx context.Context) error {
	list, err := p.gw.ListTourists(ctx)
	if err != nil {
		p.log.WithError(err).Error("Error loading tourists")
		return err
	}
	p.surface.RenderList(TouristsList, render.Tourists(list))
	return nil
}

func (p *Page) LoadDestinations(ctx context.Context) error {
	list, err := p.gw.ListDestinations(ctx)
	if err != nil {
		p.log.WithError(err).Error("Error loading destinations")
		return err
	}
	p.surface.RenderList(DestinationsList, render.Destinations(list))
	return nil
}

func (p *Page) loadTouristsForVisit(ctx context.Context) error {
	list, err := p.gw.ListTourists(ctx)
	if err != nil {
		p.log.WithError(err).Error("Error loading tourists for visit")
		return err
	}
	p.surface.RenderOptions(VisitTourist, render.TouristOptions(list))
	return nil
}

func (p *Page) loadDestinationsForVisit(ctx context.Context) error {
	list, err := p.gw.ListDestinations(ctx)
	if err != nil {
		p.log.WithError(err).Error("Error loading destinations for visit")
		return err
	}
	p.surface.RenderOptions(VisitDestination, render.DestinationOptions(list))
	return nil
}

func (p *Page) ShowAddTouristForm() { p.modals.AddTourist.Show() }

func (p *Page) ShowAddDestinationForm() { p.modals.AddDestination.Show() }

// ShowRecordVisitForm fills both selectors and only then shows the modal.
// A failed fetch is logged and the modal still opens.
func (p *Page) ShowRecordVisitForm(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error { return p.loadTouristsForVisit(ctx) })
	g.Go(func() error { return p.loadDestinationsForVisit(ctx) })
	_ = g.Wait()
	p.modals.RecordVisit.Show()
}

// SubmitTourist posts the form and, once the write succeeded, hides the
// modal, refreshes the tourist list and clears the fields. On failure the
// error is logged and returned; nothing else changes.
func (p *Page) SubmitTourist(ctx context.Context, f Form) error {
	payload := models.TouristPayload{
		Name:        f.Value(TouristName),
		Nationality: f.Value(TouristNationality),
		Age:         jsnum.ParseInt(f.Value(TouristAge)),
	}
	if err := p.gw.CreateTourist(ctx, payload); err != nil {
		p.log.WithError(err).Error("Error adding tourist")
		return err
	}
	p.modals.AddTourist.Hide()
	_ = p.LoadTourists(ctx)
	f.Reset()
	return nil
}

// SubmitDestination forwards the price text unparsed.
func (p *Page) SubmitDestination(ctx context.Context, f Form) error {
	payload := models.DestinationPayload{
		Name:    f.Value(DestinationName),
		City:    f.Value(DestinationCity),
		Country: f.Value(DestinationCountry),
		Price:   models.Price(f.Value(DestinationPrice)),
	}
	if err := p.gw.CreateDestination(ctx, payload); err != nil {
		p.log.WithError(err).Error("Error adding destination")
		return err
	}
	p.modals.AddDestination.Hide()
	_ = p.LoadDestinations(ctx)
	f.Reset()
	return nil
}

// SubmitVisit sends ids that failed to parse as NaN; no list shows visits.
func (p *Page) SubmitVisit(ctx context.Context, f Form) error {
	payload := models.VisitPayload{
		TouristID:     jsnum.ParseInt(f.Value(VisitTourist)),
		DestinationID: jsnum.ParseInt(f.Value(VisitDestination)),
		Rating:        jsnum.ParseInt(f.Value(VisitRating)),
	}
	if err := p.gw.CreateVisit(ctx, payload); err != nil {
		p.log.WithError(err).Error("Error recording visit")
		return err
	}
	p.modals.RecordVisit.Hide()
	f.Reset()
	return nil
}
