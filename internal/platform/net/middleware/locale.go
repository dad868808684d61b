package middleware

import (
	"net/http"
	"strings"

	"lingooo/internal/platform/logger"
	pnet "lingooo/internal/platform/net"

	"golang.org/x/text/language"
)

// Locale resolves the display locale for a request and stores it on the
// context. Order: ?lang= query param, then the first Accept-Language entry,
// then def. Unparseable tags fall back to def
func Locale(def string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc := strings.TrimSpace(r.URL.Query().Get("lang"))
			if loc == "" {
				if tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil && len(tags) > 0 {
					loc = tags[0].String()
				}
			}
			if loc == "" {
				loc = def
			} else if _, err := language.Parse(loc); err != nil {
				loc = def
			}

			ctx := pnet.WithRequest(r.Context(), "", loc)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), loc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
