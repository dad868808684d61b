// Package domain defines the glossary view-model inputs and outputs
package domain

// SenseInput is one sense of a headword
type SenseInput struct {
	POS    string `json:"pos" validate:"required,oneof=noun verb adjective adverb pronoun particle auxiliary conjunction interjection determiner preposition"`
	Gloss  string `json:"gloss" validate:"required,max=500"`
	Nuance int    `json:"nuance" validate:"gte=0,lte=100"`
}

// EntryInput is one definition-list entry
type EntryInput struct {
	Headword string       `json:"headword" validate:"required,max=200"`
	Senses   []SenseInput `json:"senses" validate:"required,min=1,max=20,dive"`
}

// DefinitionListInput is the request body for a localized definition list
type DefinitionListInput struct {
	Lang    string       `json:"lang,omitempty" validate:"omitempty,bcp47"`
	Entries []EntryInput `json:"entries" validate:"required,min=1,max=100,dive"`
}

// Sense is a localized sense row
type Sense struct {
	POS         string `json:"pos"`
	POSLabel    string `json:"pos_label"`
	Gloss       string `json:"gloss"`
	Nuance      int    `json:"nuance"`
	NuanceLabel string `json:"nuance_label"`
}

// Entry is a localized definition-list entry
type Entry struct {
	Headword string  `json:"headword"`
	Senses   []Sense `json:"senses"`
}

// DefinitionList is the localized list view model
type DefinitionList struct {
	Title   string  `json:"title"`
	Lang    string  `json:"lang"`
	Entries []Entry `json:"entries"`
}

// ExampleCardInput is the request body for a localized example card
type ExampleCardInput struct {
	Lang        string `json:"lang,omitempty" validate:"omitempty,bcp47"`
	Text        string `json:"text" validate:"required,max=4000"`
	Translation string `json:"translation,omitempty" validate:"max=4000"`
	Nuance      int    `json:"nuance" validate:"gte=0,lte=100"`
}

// ExampleCard is the localized card view model
type ExampleCard struct {
	Text             string `json:"text"`
	Kind             string `json:"kind"`
	Translation      string `json:"translation,omitempty"`
	TranslationLabel string `json:"translation_label"`
	Nuance           int    `json:"nuance"`
	NuanceLabel      string `json:"nuance_label"`
}
