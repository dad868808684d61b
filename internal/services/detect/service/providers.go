package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"lingooo/internal/core/script"
	perr "lingooo/internal/platform/errors"
	"lingooo/internal/services/detect/domain"
)

// provider is the internal contract each detection strategy implements
type provider interface {
	detect(ctx context.Context, in domain.DetectInput) (lang string, confidence float64, err error)
}

func guessScript(s string) (string, string, float64) { return script.Guess(s) }

// Heuristic detects by predominant Unicode script. Never errors
type Heuristic struct{}

// NewHeuristic constructs the on-device heuristic provider
func NewHeuristic() *Heuristic { return &Heuristic{} }

func (*Heuristic) detect(_ context.Context, in domain.DetectInput) (string, float64, error) {
	_, lang, conf := script.Guess(in.Text)
	if lang == "" {
		// script alone was not decisive
		return "und", conf, nil
	}
	return lang, conf, nil
}

// Manual trusts the caller's asserted language
type Manual struct{}

// NewManual constructs the caller-assertion provider
func NewManual() *Manual { return &Manual{} }

func (*Manual) detect(_ context.Context, in domain.DetectInput) (string, float64, error) {
	if in.Lang == "" {
		return "", 0, perr.InvalidArgf("manual provider requires lang")
	}
	conf := 1.0
	if in.Confidence != nil {
		conf = *in.Confidence
	}
	return in.Lang, conf, nil
}

// Remote calls an external detection endpoint
type Remote struct {
	url    string
	client *http.Client
}

// NewRemote constructs the remote provider. url must be non-empty when the
// provider is actually selectable; the module enforces that at wiring time
func NewRemote(url string, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Remote{url: url, client: &http.Client{Timeout: timeout}}
}

type remoteRequest struct {
	Text string `json:"text"`
}

type remoteResponse struct {
	Lang       string  `json:"lang"`
	Confidence float64 `json:"confidence"`
}

func (p *Remote) detect(ctx context.Context, in domain.DetectInput) (string, float64, error) {
	if p.url == "" {
		return "", 0, perr.Unavailablef("remote provider not configured")
	}

	body, err := json.Marshal(remoteRequest{Text: in.Text})
	if err != nil {
		return "", 0, perr.Providerf("encode remote request: %v", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", 0, perr.Providerf("build remote request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", 0, perr.Providerf("remote detect: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(res.Body, 4096)) //nolint:errcheck
		return "", 0, perr.Providerf("remote detect: status %d", res.StatusCode)
	}

	var out remoteResponse
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<20)).Decode(&out); err != nil {
		return "", 0, perr.Providerf("decode remote response: %v", err)
	}
	if out.Lang == "" {
		return "", 0, perr.Providerf("remote response missing lang")
	}
	return out.Lang, out.Confidence, nil
}
