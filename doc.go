// Package namedeck turns a list of names into presentation slides cloned from
// a template's authoring slide.
//
// The pipeline is: normalize names (package names), resolve the template's
// layout (package layout), segment names into per-slide units, write each
// unit into a cloned slide (Assembler) and drop the authoring slide. Package
// pptx supplies the unioffice-backed Deck.
package namedeck
