// Package script provides Unicode script counting and the conservative
// script-to-language mapping behind the on-device detection heuristic.
package script

import (
	"unicode"
)

// Guess returns a coarse script name (empty when there are no letters), a
// best-effort BCP-47 lang code (empty when the mapping is too ambiguous),
// and the fraction of letters belonging to the winning script
func Guess(s string) (script, lang string, confidence float64) {
	var (
		latin, cyrillic, greek, han, hira, kata, hangul int
		arabic, hebrew, thai                            int
		totalLetters                                    int
	)

	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		totalLetters++

		switch {
		case unicode.In(r, unicode.Hangul):
			hangul++
		case unicode.In(r, unicode.Hiragana):
			hira++
		case unicode.In(r, unicode.Katakana):
			kata++
		case unicode.In(r, unicode.Han):
			han++
		case unicode.In(r, unicode.Arabic):
			arabic++
		case unicode.In(r, unicode.Hebrew):
			hebrew++
		case unicode.In(r, unicode.Thai):
			thai++
		case unicode.In(r, unicode.Greek):
			greek++
		case unicode.In(r, unicode.Cyrillic):
			cyrillic++
		default:
			if unicode.In(r, unicode.Latin) {
				latin++
			}
		}
	}

	if totalLetters == 0 {
		return "", "", 0
	}

	// Choose predominant script; tie-break prefers specific scripts over Latin
	type sc struct {
		name string
		cnt  int
	}
	cands := []sc{
		{"Hiragana", hira},
		{"Katakana", kata},
		{"Hangul", hangul},
		{"Han", han},
		{"Arabic", arabic},
		{"Hebrew", hebrew},
		{"Thai", thai},
		{"Greek", greek},
		{"Cyrillic", cyrillic},
		{"Latin", latin},
	}
	var best sc
	for _, c := range cands {
		if c.cnt > best.cnt {
			best = c
		}
	}
	script = best.name
	confidence = float64(best.cnt) / float64(totalLetters)

	// Decisive scripts fire on any evidence; dictionary lookups are often a
	// single short word. Han alone (zh/ja mixed), Cyrillic (ru/uk/bg/...),
	// and bare Latin are too ambiguous - leave lang unset and let the
	// remote provider decide
	switch {
	case hira > 0 || kata > 0:
		lang = "ja"
	case hangul > 0:
		lang = "ko"
	case arabic > 0:
		lang = "ar"
	case hebrew > 0:
		lang = "he"
	case thai > 0:
		lang = "th"
	case greek > 0:
		lang = "el"
	}

	return script, lang, confidence
}
