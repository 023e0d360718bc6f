package pptx

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/drawing"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"

	"github.com/aerissecure/namedeck/layout"
)

var hexColorRe = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// setText replaces the shape's text with a single run carrying text and
// formats that run with st. The first paragraph's properties (alignment,
// spacing) are kept so the template's layout survives.
func setText(x *pml.CT_Shape, text string, st layout.Style) error {
	if st.Color != "" && !hexColorRe.MatchString(st.Color) {
		return fmt.Errorf("invalid colour %q", st.Color)
	}
	if x.TxBody == nil {
		x.TxBody = dml.NewCT_TextBody()
	}

	p := dml.NewCT_TextParagraph()
	if len(x.TxBody.P) > 0 && x.TxBody.P[0] != nil {
		p.PPr = x.TxBody.P[0].PPr
	}
	x.TxBody.P = []*dml.CT_TextParagraph{p}

	run := drawing.MakeParagraph(p).AddRun()
	run.SetText(text)

	props := run.Properties()
	if st.SizePt > 0 {
		props.SetSize(measurement.Distance(st.SizePt) * measurement.Point)
	}
	if st.Bold {
		props.SetBold(true)
	}
	if st.FontName != "" {
		props.SetFont(st.FontName)
		// CJK glyphs take the east asian typeface, not the latin one
		props.X().Ea = dml.NewCT_TextFont()
		props.X().Ea.TypefaceAttr = st.FontName
	}
	if st.Color != "" {
		props.SetSolidFill(color.FromHex(st.Color))
	}
	return nil
}

// shapeText returns the plain text of a shape, paragraphs joined by newlines.
func shapeText(x *pml.CT_Shape) string {
	if x == nil || x.TxBody == nil {
		return ""
	}
	var b strings.Builder
	for i, p := range x.TxBody.P {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, tr := range p.EG_TextRun {
			if tr.R != nil {
				b.WriteString(tr.R.T)
			}
		}
	}
	return b.String()
}
