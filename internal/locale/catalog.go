// Package locale loads translation bundles and resolves display strings
// by BCP 47 language tag. Bundles ship embedded; an optional override
// directory layers .json/.yaml files on top and can be hot-reloaded
package locale

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"lingooo/internal/platform/logger"
)

//go:embed bundles/*.json
var embedded embed.FS

// DefaultLang is the fallback tag when a requested language has no bundle
const DefaultLang = "en"

// snapshot is an immutable view of the loaded bundles. Catalog swaps the
// whole snapshot on reload so readers never see a partial merge
type snapshot struct {
	bundles map[string]map[string]string // canonical tag -> key -> string
	tags    []language.Tag
	matcher language.Matcher
}

// Catalog resolves localized strings. Safe for concurrent use
type Catalog struct {
	cur         atomic.Pointer[snapshot]
	overrideDir string
	log         logger.Logger
	onReload    func()
}

// Option customizes catalog construction
type Option func(*Catalog)

// WithLogger attaches a logger used by Watch and reload diagnostics
func WithLogger(l logger.Logger) Option { return func(c *Catalog) { c.log = l } }

// WithOverrideDir layers <lang>.json / <lang>.yaml files from dir over the
// embedded bundles. Missing dir is not an error
func WithOverrideDir(dir string) Option { return func(c *Catalog) { c.overrideDir = dir } }

// WithReloadHook registers fn to run after every successful reload
func WithReloadHook(fn func()) Option { return func(c *Catalog) { c.onReload = fn } }

// New builds a catalog from the embedded bundles plus any overrides
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{log: *logger.Named("locale")}
	for _, o := range opts {
		o(c)
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// T resolves key for the given language tag. Resolution order is
// matched tag, then the default language, then the key itself
func (c *Catalog) T(lang, key string) string {
	s := c.cur.Load()

	tag := DefaultLang
	if lang != "" {
		if parsed, err := language.Parse(lang); err == nil {
			matched, _, conf := s.matcher.Match(parsed)
			if conf > language.No {
				tag = canonical(matched)
			}
		}
	}

	if b, ok := s.bundles[tag]; ok {
		if v, ok := b[key]; ok {
			return v
		}
	}
	if v, ok := s.bundles[DefaultLang][key]; ok {
		return v
	}
	return key
}

// Languages returns the canonical tags of every loaded bundle
func (c *Catalog) Languages() []string {
	s := c.cur.Load()
	out := make([]string, 0, len(s.tags))
	for _, t := range s.tags {
		out = append(out, canonical(t))
	}
	return out
}

// Ready reports whether the default bundle is loaded and non-empty
func (c *Catalog) Ready() bool {
	s := c.cur.Load()
	return s != nil && len(s.bundles[DefaultLang]) > 0
}

// Reload rebuilds the snapshot from embedded bundles and the override dir
// and swaps it in atomically
func (c *Catalog) Reload() error {
	bundles := make(map[string]map[string]string, 4)

	ents, err := embedded.ReadDir("bundles")
	if err != nil {
		return fmt.Errorf("locale: read embedded bundles: %w", err)
	}
	for _, e := range ents {
		raw, err := embedded.ReadFile("bundles/" + e.Name())
		if err != nil {
			return fmt.Errorf("locale: read %s: %w", e.Name(), err)
		}
		if err := mergeBundle(bundles, e.Name(), raw); err != nil {
			return err
		}
	}

	if c.overrideDir != "" {
		if err := c.mergeOverrides(bundles); err != nil {
			return err
		}
	}

	if len(bundles[DefaultLang]) == 0 {
		return fmt.Errorf("locale: default bundle %q is empty", DefaultLang)
	}

	tags := make([]language.Tag, 0, len(bundles))
	// default first so the matcher prefers it on ties
	tags = append(tags, language.MustParse(DefaultLang))
	for lang := range bundles {
		if lang == DefaultLang {
			continue
		}
		tags = append(tags, language.MustParse(lang))
	}

	c.cur.Store(&snapshot{
		bundles: bundles,
		tags:    tags,
		matcher: language.NewMatcher(tags),
	})
	if c.onReload != nil {
		c.onReload()
	}
	return nil
}

// mergeOverrides layers every .json/.yaml file from the override dir
// onto the embedded content, key by key
func (c *Catalog) mergeOverrides(bundles map[string]map[string]string) error {
	ents, err := os.ReadDir(c.overrideDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("locale: read override dir: %w", err)
	}
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(c.overrideDir, e.Name()))
		if err != nil {
			return fmt.Errorf("locale: read override %s: %w", e.Name(), err)
		}
		if err := mergeBundle(bundles, e.Name(), raw); err != nil {
			return err
		}
	}
	return nil
}

// mergeBundle parses raw by extension and merges it under the tag derived
// from the filename (en.json -> "en")
func mergeBundle(bundles map[string]map[string]string, name string, raw []byte) error {
	ext := filepath.Ext(name)
	lang := strings.TrimSuffix(filepath.Base(name), ext)

	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("locale: bundle %s: bad language tag %q: %w", name, lang, err)
	}
	lang = canonical(tag)

	kv := make(map[string]string)
	switch ext {
	case ".json":
		if err := json.Unmarshal(raw, &kv); err != nil {
			return fmt.Errorf("locale: parse %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &kv); err != nil {
			return fmt.Errorf("locale: parse %s: %w", name, err)
		}
	default:
		return fmt.Errorf("locale: bundle %s: unsupported extension %q", name, ext)
	}

	dst := bundles[lang]
	if dst == nil {
		dst = make(map[string]string, len(kv))
		bundles[lang] = dst
	}
	for k, v := range kv {
		dst[k] = v
	}
	return nil
}

// Watch reloads the catalog whenever a file in the override dir changes.
// Blocks until ctx is done. No-op when no override dir is configured
func (c *Catalog) Watch(ctx context.Context) error {
	if c.overrideDir == "" {
		<-ctx.Done()
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("locale: watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(c.overrideDir); err != nil {
		return fmt.Errorf("locale: watch %s: %w", c.overrideDir, err)
	}
	c.log.Info().Str("dir", c.overrideDir).Msg("watching locale overrides")

	// editors fire bursts of events per save; coalesce before reloading
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(250 * time.Millisecond)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.log.Warn().Err(err).Msg("locale watcher error")
		case <-pending:
			pending = nil
			if err := c.Reload(); err != nil {
				c.log.Error().Err(err).Msg("locale reload failed; keeping previous bundles")
				continue
			}
			c.log.Info().Msg("locale bundles reloaded")
		}
	}
}

func canonical(t language.Tag) string {
	b, _ := t.Base()
	return b.String()
}
