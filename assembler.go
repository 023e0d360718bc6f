package namedeck

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aerissecure/namedeck/layout"
	"github.com/aerissecure/namedeck/phonetic"
)

// Assembler writes units onto slides cloned from a deck's authoring slide.
type Assembler struct {
	transcriber phonetic.Transcriber
	log         *zap.Logger
}

// NewAssembler returns an Assembler. A nil logger discards output.
func NewAssembler(t phonetic.Transcriber, log *zap.Logger) *Assembler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{transcriber: t, log: log}
}

// Assemble clones one slide per unit in order, binds the unit's names into the
// layout's slots and finally removes the authoring slide. Phonetic slots are
// written only when includePhonetic is set.
//
// A grouped slide with too few body placeholders is not an error: the names
// that do not fit are skipped, logged and reported. Every other failure aborts
// the run.
func (a *Assembler) Assemble(d Deck, units []Unit, l layout.Layout, includePhonetic bool) (Report, error) {
	var rep Report

	for i, unit := range units {
		if len(unit.Names) == 0 {
			continue
		}
		s, err := d.AddSlide()
		if err != nil {
			return rep, fmt.Errorf("clone slide %d: %w", i+1, err)
		}
		rep.Slides++

		switch l.Type {
		case layout.SinglePerSlide:
			if err := a.bindSingle(s, unit.Names[0], l.Slots, includePhonetic); err != nil {
				return rep, fmt.Errorf("slide %d: %w", rep.Slides, err)
			}
			rep.Names++
		case layout.GroupedPerSlide:
			written, err := a.bindGrouped(s, rep.Slides, unit, l.Slots, &rep)
			if err != nil {
				return rep, fmt.Errorf("slide %d: %w", rep.Slides, err)
			}
			rep.Names += written
		default:
			return rep, fmt.Errorf("unsupported template type %s", l.Type)
		}
	}

	if err := d.RemoveAuthoring(); err != nil {
		return rep, fmt.Errorf("remove authoring slide: %w", err)
	}
	return rep, nil
}

func (a *Assembler) bindSingle(s Slide, name string, slots []layout.SlotDescriptor, includePhonetic bool) error {
	var label string
	for _, slot := range slots {
		text := name
		if slot.Source == layout.SourcePhonetic {
			if !includePhonetic {
				continue
			}
			if label == "" {
				label = a.transcriber.Transcribe(name)
			}
			text = label
		}

		ph, err := s.Placeholder(slot.Index)
		if err != nil {
			return fmt.Errorf("%s placeholder %d: %w", slot.Role, slot.Index, err)
		}
		if err := ph.SetText(text, slot.Style); err != nil {
			return fmt.Errorf("%s placeholder %d: %w", slot.Role, slot.Index, err)
		}
	}
	return nil
}

func (a *Assembler) bindGrouped(s Slide, slideNo int, unit Unit, slots []layout.SlotDescriptor, rep *Report) (int, error) {
	bodies := s.BodyPlaceholders()
	n := min(len(bodies), len(unit.Names), len(slots))

	for j := 0; j < n; j++ {
		if err := bodies[j].SetText(unit.Names[j], slots[j].Style); err != nil {
			return j, fmt.Errorf("body-slot-%d: %w", j+1, err)
		}
	}

	if n < len(unit.Names) {
		w := ShortfallWarning{Slide: slideNo, Available: len(bodies), Skipped: unit.Names[n:]}
		rep.Shortfalls = append(rep.Shortfalls, w)
		a.log.Warn("not enough body placeholders, names skipped",
			zap.Int("slide", slideNo),
			zap.Int("available", len(bodies)),
			zap.Strings("skipped", w.Skipped),
		)
	}
	return n, nil
}
