package namedeck

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aerissecure/namedeck/layout"
	"github.com/aerissecure/namedeck/names"
	"github.com/aerissecure/namedeck/phonetic"
)

// ErrNoNames is returned by callers that refuse to build a deck from input
// with no usable names. Generate itself accepts empty input.
var ErrNoNames = errors.New("no valid names")

// Opener loads the template file for a resolved layout.
type Opener func(path string) (Deck, error)

// Result is a fully assembled deck that has not been persisted yet.
type Result struct {
	Deck   Deck
	Layout layout.Layout
	Report Report
}

// Generator runs the whole pipeline for one template selection.
type Generator struct {
	resolver  *layout.Resolver
	open      Opener
	assembler *Assembler
	log       *zap.Logger
}

// NewGenerator wires a generator. A nil logger discards output.
func NewGenerator(r *layout.Resolver, open Opener, t phonetic.Transcriber, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		resolver:  r,
		open:      open,
		assembler: NewAssembler(t, log),
		log:       log,
	}
}

// Generate normalizes raw, resolves templateID and assembles a new deck. An
// unknown template fails with a *layout.ConfigurationError before the
// template file is opened.
func (g *Generator) Generate(raw []string, templateID string, includePhonetic bool) (*Result, error) {
	return g.GenerateNormalized(names.NormalizeAll(raw), templateID, includePhonetic)
}

// GenerateNormalized is Generate for names that already went through
// names.Normalize; they are placed as given.
func (g *Generator) GenerateNormalized(normalized []string, templateID string, includePhonetic bool) (*Result, error) {
	l, err := g.resolver.Resolve(templateID)
	if err != nil {
		return nil, err
	}

	units := Segment(normalized, l.Capacity)

	d, err := g.open(l.Template.Path)
	if err != nil {
		return nil, fmt.Errorf("open template %q: %w", l.Template.Path, err)
	}

	rep, err := g.assembler.Assemble(d, units, l, includePhonetic)
	if err != nil {
		return nil, err
	}

	g.log.Info("deck assembled",
		zap.String("template", l.Template.ID),
		zap.Stringer("type", l.Type),
		zap.Int("slides", rep.Slides),
		zap.Int("names", rep.Names),
		zap.Int("shortfalls", len(rep.Shortfalls)),
	)
	return &Result{Deck: d, Layout: l, Report: rep}, nil
}
