package convert_json

import (
	"context"
	"encoding/json"
	"net/http"

	"subrewriter/internal/domain/models"
	"subrewriter/internal/http/dto"
	"subrewriter/internal/http/httputils"

	"github.com/rs/zerolog"
)

const maxRequestBytes = 1 << 20

type ServiceConverter interface {
	Convert(ctx context.Context, req models.ConvertRequest) (models.ConvertResult, error)
}

func HandlerConvertJSON(svc ServiceConverter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if r.Method != http.MethodPost {
			httputils.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req dto.ConvertRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidData.Error())
			return
		}

		res, err := svc.Convert(ctx, req.ToDomain())
		if err != nil {
			status, msg := httputils.StatusFromError(err)
			if status >= http.StatusInternalServerError {
				zerolog.Ctx(ctx).Error().Err(err).Str("source", req.Source).Msg("convert failed")
			}
			httputils.WriteJSONError(w, status, msg)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.ConvertResponseFromDomain(res))
	}
}
