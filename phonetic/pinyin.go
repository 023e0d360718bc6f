package phonetic

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// Transcriber derives the phonetic label shown under a name.
type Transcriber interface {
	Transcribe(name string) string
}

// Pinyin transcribes Han characters into toneless pinyin. Characters without
// a reading are passed through unchanged.
type Pinyin struct {
	args pinyin.Args
}

func NewPinyin() *Pinyin {
	args := pinyin.NewArgs()
	args.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}
	return &Pinyin{args: args}
}

// Transcribe drops the gap characters of a padded name, then concatenates the
// reading of every character and upper-cases the result.
func (p *Pinyin) Transcribe(name string) string {
	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, name)
	return strings.ToUpper(strings.Join(pinyin.LazyPinyin(stripped, p.args), ""))
}
