// Package pos defines the closed part-of-speech tag set used by glossary
// entries and the locale keys their display labels live under
package pos

import "strings"

// Tag is a part-of-speech identifier. The set is closed; unknown strings
// fail Parse
type Tag string

const (
	Noun         Tag = "noun"
	Verb         Tag = "verb"
	Adjective    Tag = "adjective"
	Adverb       Tag = "adverb"
	Pronoun      Tag = "pronoun"
	Particle     Tag = "particle"
	Auxiliary    Tag = "auxiliary"
	Conjunction  Tag = "conjunction"
	Interjection Tag = "interjection"
	Determiner   Tag = "determiner"
	Preposition  Tag = "preposition"
)

// All returns every known tag in display order
func All() []Tag {
	return []Tag{
		Noun, Verb, Adjective, Adverb, Pronoun, Particle,
		Auxiliary, Conjunction, Interjection, Determiner, Preposition,
	}
}

// Valid reports whether t is a known tag
func (t Tag) Valid() bool {
	for _, k := range All() {
		if t == k {
			return true
		}
	}
	return false
}

// Key returns the locale catalog key for the tag's display label
func (t Tag) Key() string { return "pos." + string(t) }

// Parse normalizes s into a Tag; ok is false for unknown values
func Parse(s string) (Tag, bool) {
	t := Tag(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}
