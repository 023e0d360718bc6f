package pptx

import "fmt"

// Intermediate representation of a deck, used to inspect templates and
// generated output without touching unioffice types.

// PlaceholderModel is one placeholder shape on a slide.
type PlaceholderModel struct {
	Index uint32 // idx attribute, 0 when absent
	Type  string // placeholder type, e.g. "body"; empty when absent
	Text  string // paragraphs joined by "\n"
}

func (p PlaceholderModel) String() string {
	return fmt.Sprintf("Index: %d, Type: %q, Text: %q", p.Index, p.Type, p.Text)
}

// SlideModel is the IR for a single slide.
type SlideModel struct {
	Number       int // 1-based
	Placeholders []PlaceholderModel
}

func (s SlideModel) String() string {
	return fmt.Sprintf("Number: %d, Placeholders: %d", s.Number, len(s.Placeholders))
}

// Placeholder returns the placeholder with the given idx.
func (s SlideModel) Placeholder(idx uint32) (PlaceholderModel, bool) {
	for _, ph := range s.Placeholders {
		if ph.Index == idx {
			return ph, true
		}
	}
	return PlaceholderModel{}, false
}

// Bodies returns the body-typed placeholders in document order.
func (s SlideModel) Bodies() []PlaceholderModel {
	var out []PlaceholderModel
	for _, ph := range s.Placeholders {
		if ph.Type == "body" {
			out = append(out, ph)
		}
	}
	return out
}

// DeckModel is the top-level IR containing all slides in order.
type DeckModel struct {
	Slides []SlideModel
}

func (d DeckModel) String() string {
	return fmt.Sprintf("Slides: %d", len(d.Slides))
}
