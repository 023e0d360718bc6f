// Package layout resolves a template identifier into the slide structure used
// to populate it: the template type, how many names fit on one slide, and the
// placeholder slots with their fixed font rules.
//
// Single-per-slide templates MUST expose placeholders at indices 10 and 11
// (name) and 13 and 14 (phonetic label). Grouped-per-slide templates are
// filled through whatever body placeholders the cloned slide carries.
package layout
