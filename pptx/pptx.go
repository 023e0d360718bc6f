package pptx

import (
	"errors"
	"fmt"
	"io"

	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/pml"

	"github.com/aerissecure/namedeck"
	"github.com/aerissecure/namedeck/layout"
)

// Deck is a template presentation being populated. The first slide of the
// file is the authoring slide; every added slide uses its layout.
type Deck struct {
	prs       *presentation.Presentation
	authoring presentation.Slide
	layout    presentation.SlideLayout
}

// Open reads a PPTX template from r (with given size).
func Open(r io.ReaderAt, size int64) (*Deck, error) {
	prs, err := presentation.Read(r, size)
	if err != nil {
		return nil, err
	}
	return newDeck(prs)
}

// OpenFile reads a PPTX template from path.
func OpenFile(path string) (*Deck, error) {
	prs, err := presentation.Open(path)
	if err != nil {
		return nil, err
	}
	return newDeck(prs)
}

func newDeck(prs *presentation.Presentation) (*Deck, error) {
	slides := prs.Slides()
	if len(slides) == 0 {
		return nil, errors.New("template has no authoring slide")
	}
	authoring := slides[0]

	want := authoring.GetSlideLayout()
	if want == nil {
		return nil, errors.New("authoring slide has no layout")
	}
	for _, l := range prs.SlideLayouts() {
		if l.X() == want {
			return &Deck{prs: prs, authoring: authoring, layout: l}, nil
		}
	}
	return nil, errors.New("authoring slide layout not found in presentation")
}

// AddSlide appends a slide cloned from the authoring slide's layout. The
// layout's prompt text is cleared, so placeholders nobody writes stay empty
// and only inherit the layout's formatting.
func (d *Deck) AddSlide() (namedeck.Slide, error) {
	s, err := d.prs.AddDefaultSlideWithLayout(d.layout)
	if err != nil {
		return nil, err
	}
	return slide{s}, nil
}

// RemoveAuthoring drops the authoring slide from the presentation.
func (d *Deck) RemoveAuthoring() error {
	return d.prs.RemoveSlide(d.authoring)
}

func (d *Deck) Len() int {
	return len(d.prs.Slides())
}

func (d *Deck) Save(w io.Writer) error {
	return d.prs.Save(w)
}

func (d *Deck) SaveToFile(path string) error {
	return d.prs.SaveToFile(path)
}

// -----------------------------------------------------------------------------
// Slides and placeholders
// -----------------------------------------------------------------------------

type slide struct {
	s presentation.Slide
}

func (s slide) Placeholder(idx uint32) (namedeck.Placeholder, error) {
	ph, err := s.s.GetPlaceholderByIndex(idx)
	if err != nil {
		return nil, err
	}
	return placeholder{ph.X()}, nil
}

func (s slide) BodyPlaceholders() []namedeck.Placeholder {
	var out []namedeck.Placeholder
	for _, ph := range s.s.PlaceHolders() {
		if ph.Type() == pml.ST_PlaceholderTypeBody {
			out = append(out, placeholder{ph.X()})
		}
	}
	return out
}

type placeholder struct {
	x *pml.CT_Shape
}

func (p placeholder) SetText(text string, style layout.Style) error {
	if err := setText(p.x, text, style); err != nil {
		return fmt.Errorf("set text %q: %w", text, err)
	}
	return nil
}
