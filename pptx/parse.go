package pptx

import (
	"fmt"

	"github.com/aerissecure/namedeck/layout"
)

// ParseDeckModel builds the IR for every slide currently in the deck.
func ParseDeckModel(d *Deck) DeckModel {
	var m DeckModel
	for i, s := range d.prs.Slides() {
		sm := SlideModel{Number: i + 1}
		for _, ph := range s.PlaceHolders() {
			sm.Placeholders = append(sm.Placeholders, PlaceholderModel{
				Index: ph.Index(),
				Type:  ph.Type().String(),
				Text:  shapeText(ph.X()),
			})
		}
		m.Slides = append(m.Slides, sm)
	}
	return m
}

// Conformance lists the ways an authoring slide falls short of the layout
// contract. Fixed-index slots that are missing break generation; fewer body
// placeholders than the layout's capacity only cause skipped names.
func Conformance(s SlideModel, l layout.Layout) []string {
	var problems []string
	switch l.Type {
	case layout.SinglePerSlide:
		for _, slot := range l.Slots {
			if _, ok := s.Placeholder(slot.Index); !ok {
				problems = append(problems, fmt.Sprintf("missing %s placeholder idx %d", slot.Role, slot.Index))
			}
		}
	case layout.GroupedPerSlide:
		if n := len(s.Bodies()); n < l.Capacity {
			problems = append(problems, fmt.Sprintf("%d body placeholders, want %d", n, l.Capacity))
		}
	}
	return problems
}
