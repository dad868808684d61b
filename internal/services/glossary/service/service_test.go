package service

import (
	"context"
	"testing"

	"lingooo/internal/locale"
	perr "lingooo/internal/platform/errors"
	pnet "lingooo/internal/platform/net"
	"lingooo/internal/services/glossary/domain"
)

func newSvc(t *testing.T) *Svc {
	t.Helper()
	cat, err := locale.New()
	if err != nil {
		t.Fatalf("locale.New: %v", err)
	}
	return New(cat)
}

func TestBuildDefinitionList(t *testing.T) {
	t.Parallel()

	svc := newSvc(t)

	in := domain.DefinitionListInput{
		Lang: "ja",
		Entries: []domain.EntryInput{
			{
				Headword: "食べる",
				Senses: []domain.SenseInput{
					{POS: "verb", Gloss: "to eat", Nuance: 50},
					{POS: "noun", Gloss: "eating", Nuance: 5},
				},
			},
		},
	}
	out, err := svc.BuildDefinitionList(context.Background(), in)
	if err != nil {
		t.Fatalf("BuildDefinitionList: %v", err)
	}
	if out.Title != "定義" {
		t.Fatalf("title = %q, want 定義", out.Title)
	}
	if len(out.Entries) != 1 || len(out.Entries[0].Senses) != 2 {
		t.Fatalf("unexpected shape: %+v", out)
	}
	s0 := out.Entries[0].Senses[0]
	if s0.POSLabel != "動詞" {
		t.Fatalf("pos label = %q, want 動詞", s0.POSLabel)
	}
	if s0.NuanceLabel != "ニュートラル" {
		t.Fatalf("nuance label = %q, want ニュートラル", s0.NuanceLabel)
	}
	s1 := out.Entries[0].Senses[1]
	if s1.NuanceLabel != "とてもカジュアル" {
		t.Fatalf("nuance label = %q, want とてもカジュアル", s1.NuanceLabel)
	}
}

func TestBuildDefinitionListUnknownPOS(t *testing.T) {
	t.Parallel()

	svc := newSvc(t)

	in := domain.DefinitionListInput{
		Entries: []domain.EntryInput{
			{Headword: "x", Senses: []domain.SenseInput{{POS: "gerund", Gloss: "g", Nuance: 1}}},
		},
	}
	_, err := svc.BuildDefinitionList(context.Background(), in)
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}
}

func TestBuildDefinitionListLangFromContext(t *testing.T) {
	t.Parallel()

	svc := newSvc(t)

	ctx := pnet.WithRequest(context.Background(), "req-1", "ja")
	in := domain.DefinitionListInput{
		Entries: []domain.EntryInput{
			{Headword: "犬", Senses: []domain.SenseInput{{POS: "noun", Gloss: "dog", Nuance: 50}}},
		},
	}
	out, err := svc.BuildDefinitionList(ctx, in)
	if err != nil {
		t.Fatalf("BuildDefinitionList: %v", err)
	}
	if out.Lang != "ja" || out.Entries[0].Senses[0].POSLabel != "名詞" {
		t.Fatalf("context locale not applied: %+v", out)
	}
}

func TestBuildExampleCard(t *testing.T) {
	t.Parallel()

	svc := newSvc(t)

	in := domain.ExampleCardInput{
		Lang:        "en",
		Text:        "**I ate** [sushi](https://example.com) yesterday.",
		Translation: "昨日寿司を食べました。",
		Nuance:      75,
	}
	out, err := svc.BuildExampleCard(context.Background(), in)
	if err != nil {
		t.Fatalf("BuildExampleCard: %v", err)
	}
	if out.Text != "I ate sushi yesterday." {
		t.Fatalf("plain text = %q", out.Text)
	}
	if out.Kind != "sentence" {
		t.Fatalf("kind = %q, want sentence", out.Kind)
	}
	if out.TranslationLabel != "Translation" {
		t.Fatalf("translation label = %q", out.TranslationLabel)
	}
	if out.NuanceLabel != "formal" {
		t.Fatalf("nuance label = %q, want formal", out.NuanceLabel)
	}
}

func TestBuildExampleCardWordKind(t *testing.T) {
	t.Parallel()

	svc := newSvc(t)

	out, err := svc.BuildExampleCard(context.Background(), domain.ExampleCardInput{
		Text:   "`sushi`",
		Nuance: 100,
	})
	if err != nil {
		t.Fatalf("BuildExampleCard: %v", err)
	}
	if out.Text != "sushi" || out.Kind != "word" {
		t.Fatalf("card = %+v, want plain word", out)
	}
	if out.NuanceLabel != "very formal" {
		t.Fatalf("nuance label = %q, want very formal", out.NuanceLabel)
	}
}
