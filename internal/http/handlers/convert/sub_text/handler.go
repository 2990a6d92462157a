package sub_text

import (
	"context"
	"net/http"
	"strings"

	"subrewriter/internal/domain/models"
	"subrewriter/internal/http/dto"
	"subrewriter/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceConverter interface {
	Convert(ctx context.Context, req models.ConvertRequest) (models.ConvertResult, error)
}

// HandlerConvertText serves GET /sub?source=&host=&proxyip=&port= as
// newline separated links.
func HandlerConvertText(svc ServiceConverter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if r.Method != http.MethodGet {
			httputils.WriteTextError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		req := dto.ConvertRequestFromQuery(r.URL.Query())
		if strings.TrimSpace(req.Source) == "" {
			httputils.WriteTextError(w, http.StatusBadRequest, "source is required")
			return
		}

		res, err := svc.Convert(ctx, req)
		if err != nil {
			status, msg := httputils.StatusFromError(err)
			if status >= http.StatusInternalServerError {
				zerolog.Ctx(ctx).Error().Err(err).Str("source", req.Source).Msg("convert failed")
			}
			httputils.WriteTextError(w, status, msg)
			return
		}

		httputils.WriteTextResponse(w, http.StatusOK, strings.Join(res.Links, "\n"))
	}
}
