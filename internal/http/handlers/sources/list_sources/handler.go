package list_sources

import (
	"context"
	"net/http"

	"subrewriter/internal/domain/models"
	"subrewriter/internal/http/dto"
	"subrewriter/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceSources interface {
	ListSources(ctx context.Context) ([]models.Source, error)
}

func HandlerListSources(svc ServiceSources) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sources, err := svc.ListSources(ctx)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("list sources failed")
			httputils.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.SourcesResponseFromDomain(sources))
	}
}
