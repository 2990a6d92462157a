package ping

import (
	"context"
	"net/http"

	"subrewriter/internal/http/httputils"
)

type ServicePing interface {
	Ping(ctx context.Context) error
}

func HandlerPing(svc ServicePing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Ping(r.Context()); err != nil {
			httputils.WriteTextError(w, http.StatusInternalServerError, "storage unavailable")
			return
		}
		httputils.WriteTextResponse(w, http.StatusOK, "pong")
	}
}
