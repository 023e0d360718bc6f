// Package pptx implements namedeck.Deck on top of unioffice presentations and
// provides a small IR for inspecting templates and generated decks.
package pptx
