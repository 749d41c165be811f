package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/user"
	"github.com/jsamuelsen11/go-task-service/internal/platform/logging"
)

// maxBodyBytes caps JSON request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

func pathParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(chi.URLParam(r, name))
	if v == "" {
		return "", domain.NewValidationError(name, domain.MsgRequired)
	}
	return v, nil
}

// callerID is the user id Identity placed on the request.
func callerID(r *http.Request) (string, error) {
	id, ok := user.IdentityFrom(r.Context())
	if !ok {
		return "", fmt.Errorf("no caller identity: %w", domain.ErrUnauthorized)
	}
	return id.UserID, nil
}

// writeJSON sends v with status. Encoding failures happen after the status
// line is out, so they are only logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

type validatable interface {
	Validate() error
}

// decodeAndValidate reads the JSON body into dst and runs its Validate. On
// failure the problem response is already written and false is returned.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", decodeMessage(err)))
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

func decodeMessage(err error) string {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)
	}
	return "invalid JSON"
}
