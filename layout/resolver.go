package layout

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Fixed placeholder indices a single-per-slide template must expose.
const (
	IndexNamePrimary       uint32 = 10
	IndexNameSecondary     uint32 = 11
	IndexPhoneticPrimary   uint32 = 13
	IndexPhoneticSecondary uint32 = 14
)

// Text formatting written into each slot role.

func NameStyle() Style     { return Style{SizePt: 73.8, Bold: true} }
func PhoneticStyle() Style { return Style{SizePt: 28} }
func BodyStyle() Style {
	return Style{FontName: "Microsoft YaHei", SizePt: 72, Bold: true, Color: "FFFFFF"}
}

// ConfigurationError reports a template identifier missing from the table.
type ConfigurationError struct {
	ID string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown template %q", e.ID)
}

// Table is the immutable identifier -> template mapping. Build it once with
// NewTable and share it.
type Table struct {
	order   []string
	entries map[string]Template
}

// NewTable validates the templates and returns the table. IDs must be unique
// and non-empty, every template needs a path and a known type.
func NewTable(templates ...Template) (Table, error) {
	t := Table{entries: make(map[string]Template, len(templates))}
	for _, tpl := range templates {
		if tpl.ID == "" {
			return Table{}, errors.New("template with empty id")
		}
		if _, dup := t.entries[tpl.ID]; dup {
			return Table{}, fmt.Errorf("duplicate template id %q", tpl.ID)
		}
		if tpl.Path == "" {
			return Table{}, fmt.Errorf("template %q has no file", tpl.ID)
		}
		if tpl.Type.Capacity() == 0 {
			return Table{}, fmt.Errorf("template %q: invalid type %s", tpl.ID, tpl.Type)
		}
		t.entries[tpl.ID] = tpl
		t.order = append(t.order, tpl.ID)
	}
	return t, nil
}

// DefaultTemplates returns the two stock templates found in dir.
func DefaultTemplates(dir string) []Template {
	return []Template{
		{ID: "eg1", Path: filepath.Join(dir, "eg1.pptx"), Type: SinglePerSlide},
		{ID: "eg2", Path: filepath.Join(dir, "eg2.pptx"), Type: GroupedPerSlide},
	}
}

// Lookup returns the template registered under id.
func (t Table) Lookup(id string) (Template, bool) {
	tpl, ok := t.entries[id]
	return tpl, ok
}

// Templates returns the entries in registration order.
func (t Table) Templates() []Template {
	out := make([]Template, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.entries[id])
	}
	return out
}

// Resolver maps template identifiers to layouts. It holds no mutable state.
type Resolver struct {
	table Table
}

func NewResolver(table Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve returns the layout for id, or a *ConfigurationError when id is not
// in the table.
func (r *Resolver) Resolve(id string) (Layout, error) {
	tpl, ok := r.table.Lookup(id)
	if !ok {
		return Layout{}, &ConfigurationError{ID: id}
	}

	l := Layout{
		Template: tpl,
		Type:     tpl.Type,
		Capacity: tpl.Type.Capacity(),
	}
	switch tpl.Type {
	case SinglePerSlide:
		l.Slots = []SlotDescriptor{
			{Role: RoleNamePrimary, Index: IndexNamePrimary, Source: SourceName, Style: NameStyle()},
			{Role: RoleNameSecondary, Index: IndexNameSecondary, Source: SourceName, Style: NameStyle()},
			{Role: RolePhoneticPrimary, Index: IndexPhoneticPrimary, Source: SourcePhonetic, Style: PhoneticStyle()},
			{Role: RolePhoneticSecondary, Index: IndexPhoneticSecondary, Source: SourcePhonetic, Style: PhoneticStyle()},
		}
	case GroupedPerSlide:
		for i := 0; i < l.Capacity; i++ {
			l.Slots = append(l.Slots, SlotDescriptor{Role: RoleBody, Body: i, Source: SourceName, Style: BodyStyle()})
		}
	}
	return l, nil
}
