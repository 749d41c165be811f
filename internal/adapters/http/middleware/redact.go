package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-task-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders turns request headers into log attributes, sorted by name.
// logging.CredentialHeaders are masked; Authorization keeps its scheme so a log
// still shows whether a bearer token was sent. Repeated values are joined
// with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, slog.String(name, redactHeader(name, headers[name])))
	}
	return attrs
}

func redactHeader(name string, values []string) string {
	canonical := http.CanonicalHeaderKey(name)
	switch {
	case canonical == headerAuthorization:
		if scheme, _, ok := strings.Cut(strings.Join(values, ","), " "); ok {
			return scheme + " " + redacted
		}
		return redacted
	case slices.Contains(logging.CredentialHeaders, canonical):
		return redacted
	default:
		return strings.Join(values, ",")
	}
}
