package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// CredentialHeaders are request headers whose values never reach logs. The
// HTTP logging middleware masks them and the handler masks attributes with
// the same names.
var CredentialHeaders = []string{
	"Authorization",
	"Cookie",
	"Proxy-Authorization",
	"Set-Cookie",
	"X-Api-Key",
}

// credentialFields are attribute names used by the auth and user code.
var credentialFields = []string{
	"password",
	"password_hash",
	"access_token",
	"token",
	"jwt_secret",
	"secret",
}

var (
	// "Bearer <token>" values, e.g. a copied Authorization header.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// Compact JWTs. Segments of 10+ characters keep version strings out.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// Modular-crypt bcrypt hashes as stored on users.
	bcryptPattern = regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`)
)

// redactor returns the masq ReplaceAttr hook used by New.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, 2*len(CredentialHeaders)+len(credentialFields)+4)
	for _, h := range CredentialHeaders {
		opts = append(opts, masq.WithFieldName(h), masq.WithFieldName(strings.ToLower(h)))
	}
	for _, f := range credentialFields {
		opts = append(opts, masq.WithFieldName(f))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bcryptPattern),
	)
	return masq.New(opts...)
}
