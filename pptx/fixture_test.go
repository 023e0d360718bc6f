package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	nsDecl = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
		`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
		`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`

	relNS   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	ctPML   = "application/vnd.openxmlformats-officedocument.presentationml."
	spTreeH = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`

	layoutPrompt  = "Click to edit"
	authoringText = "Authoring sample"
)

// phSpec is one placeholder shape of a test template.
type phSpec struct {
	typ string // ph type attribute, empty for none
	idx uint32 // 0 for none
}

func (ph phSpec) xml(id int, text string) string {
	attrs := ""
	if ph.typ != "" {
		attrs += fmt.Sprintf(` type="%s"`, ph.typ)
	}
	if ph.idx != 0 {
		attrs += fmt.Sprintf(` idx="%d"`, ph.idx)
	}
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Placeholder %d"/>`+
		`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph%s/></p:nvPr></p:nvSpPr>`+
		`<p:spPr/><p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US"/><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>`,
		id, id, attrs, text)
}

func rels(entries ...string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		strings.Join(entries, "") + `</Relationships>`
}

func rel(id, typ, target string) string {
	return fmt.Sprintf(`<Relationship Id="%s" Type="%s%s" Target="%s"/>`, id, relNS, typ, target)
}

// templateDeck builds a one-slide PPTX in memory. The layout and the
// authoring slide both carry the given placeholders; the layout's hold the
// prompt text, the slide's hold sample text.
func templateDeck(t *testing.T, phs ...phSpec) *bytes.Reader {
	t.Helper()

	var layoutShapes, slideShapes strings.Builder
	for i, ph := range phs {
		layoutShapes.WriteString(ph.xml(i+2, layoutPrompt))
		slideShapes.WriteString(ph.xml(i+2, authoringText))
	}

	parts := []struct{ name, body string }{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/ppt/presentation.xml" ContentType="` + ctPML + `presentation.main+xml"/>` +
			`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="` + ctPML + `slideMaster+xml"/>` +
			`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="` + ctPML + `slideLayout+xml"/>` +
			`<Override PartName="/ppt/slides/slide1.xml" ContentType="` + ctPML + `slide+xml"/>` +
			`</Types>`},
		{"_rels/.rels", rels(rel("rId1", "officeDocument", "ppt/presentation.xml"))},
		{"ppt/presentation.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<p:presentation ` + nsDecl + `>` +
			`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>` +
			`<p:sldIdLst><p:sldId id="256" r:id="rId2"/></p:sldIdLst>` +
			`<p:sldSz cx="12192000" cy="6858000"/><p:notesSz cx="6858000" cy="9144000"/>` +
			`</p:presentation>`},
		{"ppt/_rels/presentation.xml.rels", rels(
			rel("rId1", "slideMaster", "slideMasters/slideMaster1.xml"),
			rel("rId2", "slide", "slides/slide1.xml"),
		)},
		{"ppt/slideMasters/slideMaster1.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<p:sldMaster ` + nsDecl + `><p:cSld><p:spTree>` + spTreeH + `</p:spTree></p:cSld>` +
			`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" ` +
			`accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
			`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
			`</p:sldMaster>`},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", rels(
			rel("rId1", "slideLayout", "../slideLayouts/slideLayout1.xml"),
		)},
		{"ppt/slideLayouts/slideLayout1.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<p:sldLayout ` + nsDecl + `><p:cSld name="Names"><p:spTree>` + spTreeH + layoutShapes.String() +
			`</p:spTree></p:cSld></p:sldLayout>`},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", rels(
			rel("rId1", "slideMaster", "../slideMasters/slideMaster1.xml"),
		)},
		{"ppt/slides/slide1.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<p:sld ` + nsDecl + `><p:cSld><p:spTree>` + spTreeH + slideShapes.String() +
			`</p:spTree></p:cSld></p:sld>`},
		{"ppt/slides/_rels/slide1.xml.rels", rels(
			rel("rId1", "slideLayout", "../slideLayouts/slideLayout1.xml"),
		)},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(p.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return bytes.NewReader(buf.Bytes())
}

// singleTemplate has the four fixed-index slots plus a title.
func singleTemplate(t *testing.T) *bytes.Reader {
	t.Helper()
	return templateDeck(t,
		phSpec{typ: "title"},
		phSpec{typ: "body", idx: 10},
		phSpec{typ: "body", idx: 11},
		phSpec{typ: "body", idx: 13},
		phSpec{typ: "body", idx: 14},
	)
}

// groupedTemplate has a title and bodies body placeholders.
func groupedTemplate(t *testing.T, bodies int) *bytes.Reader {
	t.Helper()
	phs := []phSpec{{typ: "title"}}
	for i := 0; i < bodies; i++ {
		phs = append(phs, phSpec{typ: "body", idx: uint32(i + 1)})
	}
	return templateDeck(t, phs...)
}

func openTemplateDeck(t *testing.T, r *bytes.Reader) *Deck {
	t.Helper()
	d, err := Open(r, r.Size())
	require.NoError(t, err)
	return d
}
