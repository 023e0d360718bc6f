package layout

import "fmt"

// Layout vocabulary shared by the resolver and the assembler.
//
// Colours are 6-character RGB hex strings without the leading "#", the same
// convention the spreadsheet and document IRs use.

// -----------------------------------------------------------------------------
// Template types
// -----------------------------------------------------------------------------

// TemplateType is the closed set of slide structures a template can have.
type TemplateType int

const (
	// SinglePerSlide puts one name on a slide: two copies of the name and two
	// copies of its phonetic label at fixed placeholder indices.
	SinglePerSlide TemplateType = iota + 1
	// GroupedPerSlide puts up to three names on a slide, one per body
	// placeholder discovered on the cloned slide.
	GroupedPerSlide
)

func (t TemplateType) String() string {
	switch t {
	case SinglePerSlide:
		return "single-per-slide"
	case GroupedPerSlide:
		return "grouped-per-slide"
	}
	return fmt.Sprintf("TemplateType(%d)", int(t))
}

// Capacity is the maximum number of names written to one slide.
func (t TemplateType) Capacity() int {
	switch t {
	case SinglePerSlide:
		return 1
	case GroupedPerSlide:
		return 3
	}
	return 0
}

// ParseTemplateType parses the string form used in configuration files.
func ParseTemplateType(s string) (TemplateType, error) {
	switch s {
	case "single-per-slide":
		return SinglePerSlide, nil
	case "grouped-per-slide":
		return GroupedPerSlide, nil
	}
	return 0, fmt.Errorf("unknown template type %q", s)
}

// -----------------------------------------------------------------------------
// Slots
// -----------------------------------------------------------------------------

// Role identifies what a slot holds on the slide.
type Role int

const (
	RoleNamePrimary Role = iota + 1
	RoleNameSecondary
	RolePhoneticPrimary
	RolePhoneticSecondary
	RoleBody
)

func (r Role) String() string {
	switch r {
	case RoleNamePrimary:
		return "name-primary"
	case RoleNameSecondary:
		return "name-secondary"
	case RolePhoneticPrimary:
		return "phonetic-primary"
	case RolePhoneticSecondary:
		return "phonetic-secondary"
	case RoleBody:
		return "body"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Source is where a slot's text comes from.
type Source int

const (
	SourceName Source = iota + 1
	SourcePhonetic
)

// Style is the run formatting applied to a slot's text. Zero values mean
// "leave the template's formatting alone".
type Style struct {
	FontName string  // e.g. "Microsoft YaHei"
	SizePt   float64 // size in points
	Bold     bool
	Color    string // "RRGGBB" override
}

func (s Style) String() string {
	return fmt.Sprintf("FontName: %q, SizePt: %.1f, Bold: %t, Color: %q", s.FontName, s.SizePt, s.Bold, s.Color)
}

// SlotDescriptor describes one text region to fill on a cloned slide.
type SlotDescriptor struct {
	Role   Role
	Index  uint32 // placeholder idx; only meaningful for SinglePerSlide
	Body   int    // 0-based position among discovered body placeholders; RoleBody only
	Source Source
	Style  Style
}

func (d SlotDescriptor) String() string {
	if d.Role == RoleBody {
		return fmt.Sprintf("Role: body-slot-%d, Style: [%s]", d.Body+1, d.Style)
	}
	return fmt.Sprintf("Role: %s, Index: %d, Style: [%s]", d.Role, d.Index, d.Style)
}

// -----------------------------------------------------------------------------
// Templates and resolved layouts
// -----------------------------------------------------------------------------

// Template is one entry of the template table.
type Template struct {
	ID   string
	Path string // path to the .pptx holding the authoring slide
	Type TemplateType
}

func (t Template) String() string {
	return fmt.Sprintf("ID: %q, Path: %q, Type: %s", t.ID, t.Path, t.Type)
}

// Layout is what the resolver hands the assembler for one template selection.
type Layout struct {
	Template Template
	Type     TemplateType
	Capacity int
	Slots    []SlotDescriptor
}

func (l Layout) String() string {
	return fmt.Sprintf("Template: [%s], Capacity: %d, Slots: %d", l.Template, l.Capacity, len(l.Slots))
}
