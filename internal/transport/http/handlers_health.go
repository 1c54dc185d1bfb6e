package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	dErrors "github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/domain-errors"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/platform/httputil"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/requestcontext"
)

// Pinger reports whether the document store is reachable. Satisfied by the
// platform mongo client; tests substitute a stub.
type Pinger interface {
	Health(ctx context.Context) error
}

type healthHandler struct {
	pinger Pinger
	logger *slog.Logger
}

func newHealthHandler(pinger Pinger, logger *slog.Logger) *healthHandler {
	return &healthHandler{pinger: pinger, logger: logger}
}

// handleHealth verifies store connectivity with a lightweight ping. It
// touches no collection: an empty database is healthy, an unreachable one is
// not.
func (h *healthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.pinger.Health(ctx); err != nil {
		h.logger.ErrorContext(ctx, "health check failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "service unhealthy"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": requestcontext.Now(ctx).UTC(),
	})
}
