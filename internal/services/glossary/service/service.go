// Package service builds localized glossary view models
package service

import (
	"context"

	"lingooo/internal/core/pos"
	"lingooo/internal/core/textkit"
	"lingooo/internal/locale"
	perr "lingooo/internal/platform/errors"
	pnet "lingooo/internal/platform/net"
	"lingooo/internal/services/glossary/domain"
)

// Service defines the glossary service contract
type Service interface {
	BuildDefinitionList(ctx context.Context, in domain.DefinitionListInput) (domain.DefinitionList, error)
	BuildExampleCard(ctx context.Context, in domain.ExampleCardInput) (domain.ExampleCard, error)
}

// Svc implements the glossary service
type Svc struct {
	locales *locale.Catalog
}

// New constructs a glossary service
func New(locales *locale.Catalog) *Svc {
	if locales == nil {
		panic("glossary.Service requires a non nil locale catalog")
	}
	return &Svc{locales: locales}
}

// lang picks the request language, falling back to the request-scoped locale
func (s *Svc) lang(ctx context.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if l := pnet.Locale(ctx); l != "" {
		return l
	}
	return locale.DefaultLang
}

// BuildDefinitionList localizes POS labels and nuance buckets for each sense
func (s *Svc) BuildDefinitionList(ctx context.Context, in domain.DefinitionListInput) (domain.DefinitionList, error) {
	lang := s.lang(ctx, in.Lang)

	out := domain.DefinitionList{
		Title:   s.locales.T(lang, "definitions.title"),
		Lang:    lang,
		Entries: make([]domain.Entry, 0, len(in.Entries)),
	}
	for _, e := range in.Entries {
		entry := domain.Entry{
			Headword: e.Headword,
			Senses:   make([]domain.Sense, 0, len(e.Senses)),
		}
		for _, sn := range e.Senses {
			tag, ok := pos.Parse(sn.POS)
			if !ok {
				return domain.DefinitionList{}, perr.InvalidArgf("unknown part of speech %q", sn.POS)
			}
			bucket := textkit.NuanceBucket(float64(sn.Nuance))
			entry.Senses = append(entry.Senses, domain.Sense{
				POS:         string(tag),
				POSLabel:    s.locales.T(lang, tag.Key()),
				Gloss:       sn.Gloss,
				Nuance:      sn.Nuance,
				NuanceLabel: s.locales.T(lang, bucket.Key()),
			})
		}
		out.Entries = append(out.Entries, entry)
	}
	return out, nil
}

// BuildExampleCard strips markdown, classifies the text and labels the nuance
func (s *Svc) BuildExampleCard(ctx context.Context, in domain.ExampleCardInput) (domain.ExampleCard, error) {
	lang := s.lang(ctx, in.Lang)

	plain := textkit.PlainText(in.Text)
	bucket := textkit.NuanceBucket(float64(in.Nuance))

	return domain.ExampleCard{
		Text:             plain,
		Kind:             string(textkit.Classify(plain)),
		Translation:      in.Translation,
		TranslationLabel: s.locales.T(lang, "card.translation"),
		Nuance:           in.Nuance,
		NuanceLabel:      s.locales.T(lang, bucket.Key()),
	}, nil
}
