package namedeck

import (
	"errors"
	"fmt"
	"io"

	"github.com/aerissecure/namedeck/layout"
)

type fakePlaceholder struct {
	text  string
	style layout.Style
	set   bool
}

func (p *fakePlaceholder) SetText(text string, style layout.Style) error {
	p.text, p.style, p.set = text, style, true
	return nil
}

type fakeSlide struct {
	indexed map[uint32]*fakePlaceholder
	bodies  []*fakePlaceholder
}

func (s *fakeSlide) Placeholder(idx uint32) (Placeholder, error) {
	ph, ok := s.indexed[idx]
	if !ok {
		return nil, fmt.Errorf("no placeholder with idx %d", idx)
	}
	return ph, nil
}

func (s *fakeSlide) BodyPlaceholders() []Placeholder {
	out := make([]Placeholder, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b
	}
	return out
}

func (s *fakeSlide) written() int {
	n := 0
	for _, ph := range s.indexed {
		if ph.set {
			n++
		}
	}
	for _, b := range s.bodies {
		if b.set {
			n++
		}
	}
	return n
}

// fakeDeck mimics a template: a single authoring slide whose layout exposes
// the given placeholder indices and number of body placeholders.
type fakeDeck struct {
	indices   []uint32
	bodies    int
	authoring bool
	slides    []*fakeSlide
	addErr    error
}

func newFakeDeck(indices []uint32, bodies int) *fakeDeck {
	return &fakeDeck{indices: indices, bodies: bodies, authoring: true}
}

func (d *fakeDeck) AddSlide() (Slide, error) {
	if d.addErr != nil {
		return nil, d.addErr
	}
	s := &fakeSlide{indexed: make(map[uint32]*fakePlaceholder)}
	for _, idx := range d.indices {
		s.indexed[idx] = &fakePlaceholder{}
	}
	for i := 0; i < d.bodies; i++ {
		s.bodies = append(s.bodies, &fakePlaceholder{})
	}
	d.slides = append(d.slides, s)
	return s, nil
}

func (d *fakeDeck) RemoveAuthoring() error {
	if !d.authoring {
		return errors.New("authoring slide already removed")
	}
	d.authoring = false
	return nil
}

func (d *fakeDeck) Len() int {
	n := len(d.slides)
	if d.authoring {
		n++
	}
	return n
}

func (d *fakeDeck) Save(io.Writer) error    { return nil }
func (d *fakeDeck) SaveToFile(string) error { return nil }

type upperTranscriber struct{ calls int }

func (u *upperTranscriber) Transcribe(name string) string {
	u.calls++
	return "PY(" + name + ")"
}
