package namedeck

import (
	"fmt"
	"io"
	"strings"

	"github.com/aerissecure/namedeck/layout"
)

// -----------------------------------------------------------------------------
// Deck abstraction
// -----------------------------------------------------------------------------

// Deck is a presentation opened from a template. Its first slide is the
// authoring slide: new slides are cloned from its layout and it is removed
// once assembly finishes.
type Deck interface {
	AddSlide() (Slide, error)
	RemoveAuthoring() error
	Len() int
	Save(w io.Writer) error
	SaveToFile(path string) error
}

// Slide is a freshly cloned slide.
type Slide interface {
	// Placeholder returns the placeholder with the given idx attribute.
	Placeholder(idx uint32) (Placeholder, error)
	// BodyPlaceholders returns the body-typed placeholders in document order.
	BodyPlaceholders() []Placeholder
}

// Placeholder is a text-bearing region of a slide.
type Placeholder interface {
	SetText(text string, style layout.Style) error
}

// -----------------------------------------------------------------------------
// Units and reports
// -----------------------------------------------------------------------------

// Unit is the group of normalized names committed to one slide.
type Unit struct {
	Names []string
}

func (u Unit) String() string {
	return fmt.Sprintf("Names: [%s]", strings.Join(u.Names, ", "))
}

// ShortfallWarning records names dropped because a grouped slide had fewer
// body placeholders than names in its unit.
type ShortfallWarning struct {
	Slide     int      // 1-based position in the output
	Available int      // body placeholders found on the slide
	Skipped   []string // names not written
}

func (w ShortfallWarning) Error() string {
	return fmt.Sprintf("slide %d has %d body placeholders, skipped %d name(s): %s",
		w.Slide, w.Available, len(w.Skipped), strings.Join(w.Skipped, ", "))
}

// Report summarises an assembly run.
type Report struct {
	Slides     int
	Names      int // names actually written
	Shortfalls []ShortfallWarning
}

func (r Report) String() string {
	return fmt.Sprintf("Slides: %d, Names: %d, Shortfalls: %d", r.Slides, r.Names, len(r.Shortfalls))
}

// Segment splits names into contiguous units of at most capacity names,
// preserving order. The last unit may be shorter.
func Segment(names []string, capacity int) []Unit {
	if capacity < 1 {
		capacity = 1
	}
	units := make([]Unit, 0, (len(names)+capacity-1)/capacity)
	for start := 0; start < len(names); start += capacity {
		end := min(start+capacity, len(names))
		units = append(units, Unit{Names: names[start:end:end]})
	}
	return units
}
