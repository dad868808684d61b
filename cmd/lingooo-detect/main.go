package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"lingooo/internal/core/relay"
	"lingooo/internal/modkit"
	"lingooo/internal/modkit/module"
	"lingooo/internal/platform/config"
	"lingooo/internal/platform/logger"

	detectdom "lingooo/internal/services/detect/domain"
	detectmod "lingooo/internal/services/detect/module"
)

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func main() {
	root := config.New()
	l := logger.Get()

	var (
		text   = flag.String("text", "", "text to analyze (required)")
		prov   = flag.String("provider", "", "heuristic | remote | manual")
		lang   = flag.String("lang", "", "asserted language (manual provider)")
		remote = flag.String("remote-url", "", "remote provider endpoint")
		asJSON = flag.Bool("json", false, "print the detection as JSON")
	)
	flag.Parse()

	if *text == "" {
		log.Fatal("-text is required")
	}

	// Pass CLI flags into CORE_DETECT_* so the module can read its own config
	if *prov != "" {
		mustSetEnv("CORE_DETECT_PROVIDER", *prov)
	}
	mustSetEnv("CORE_DETECT_REMOTE_URL", *remote)

	// local relay; every detection is echoed by the logging listener
	rl := relay.New(relay.WithLogger(*l))
	rl.Subscribe(func(ev relay.Event) {
		l.Info().
			Str("event_id", ev.ID).
			Str("lang", ev.Lang).
			Str("provider", string(ev.Provider)).
			Float64("confidence", ev.Confidence).
			Msg("detection event")
	})

	deps := modkit.Deps{
		Cfg:   root,
		Log:   *l,
		Relay: rl,
	}

	dm := detectmod.New(deps)
	module.Register(dm.Name(), dm.Ports())

	ports := dm.Ports().(detectmod.Ports)
	out, err := ports.Detector.Detect(context.Background(), detectdom.DetectInput{
		Text: *text,
		Lang: *lang,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("detect failed")
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			l.Fatal().Err(err).Msg("encode failed")
		}
		return
	}
	l.Info().
		Str("kind", string(out.Kind)).
		Str("script", out.Script).
		Str("lang", out.Event.Lang).
		Float64("confidence", out.Event.Confidence).
		Msg("detection")
}
