// Package textkit provides the text classification and formatting helpers
// behind definition lists and example cards: word-vs-sentence detection,
// Markdown flattening, and nuance-score bucketing
package textkit

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Kind says whether a piece of learner text reads as a single vocabulary
// item or as running prose
type Kind string

const (
	// KindWord is a single dictionary-style entry ("run", "犬", "hot dog")
	KindWord Kind = "word"
	// KindSentence is running prose: terminated, multi-token, or a long CJK run
	KindSentence Kind = "sentence"
)

// pool of fresh transformer chains; NFKC folds fullwidth punctuation so the
// terminator scan below sees one shape of each mark
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			width.Fold,
		)
	},
}

// terminators end a sentence in the scripts we care about; NFKC folding
// upstream maps the fullwidth ASCII forms onto these
var terminators = map[rune]struct{}{
	'.': {}, '!': {}, '?': {},
	'。': {}, // 。 ideographic full stop
	'！': {}, // ！
	'？': {}, // ？
	'…': {}, // …
}

// cjk tokens carry no spaces, so length stands in for token count
const cjkSentenceRunes = 12

// latin-script token count at which we call it a sentence
const sentenceTokens = 3

// Classify reports whether s is a word or a sentence.
// Empty and whitespace-only input classifies as a word; callers guard
func Classify(s string) Kind {
	s = strings.TrimSpace(s)
	if s == "" {
		return KindWord
	}

	s = strings.ToValidUTF8(s, "")
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	cjk := 0
	for _, r := range ns {
		if _, ok := terminators[r]; ok {
			return KindSentence
		}
		if isCJK(r) {
			cjk++
		}
	}
	if len(strings.Fields(ns)) >= sentenceTokens {
		return KindSentence
	}
	if cjk >= cjkSentenceRunes {
		return KindSentence
	}
	return KindWord
}

// IsSentence is sugar over Classify
func IsSentence(s string) bool { return Classify(s) == KindSentence }

// IsWord is sugar over Classify
func IsWord(s string) bool { return Classify(s) == KindWord }

func isCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}
