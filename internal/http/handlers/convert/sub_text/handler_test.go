package sub_text

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"subrewriter/internal/domain/models"
	"subrewriter/internal/linkrewriter"
	"subrewriter/internal/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandlerConvertText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConverter := mocks.NewMockSubscriptionConverter(ctrl)

	tests := []struct {
		name         string
		method       string
		target       string
		setupMock    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "links are joined by newline",
			method: http.MethodGet,
			target: "/sub?source=main&host=edge.example&proxyip=1.1.1.1&port=443",
			setupMock: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), models.ConvertRequest{
						Source:     "main",
						TargetHost: "edge.example",
						ProxyIP:    "1.1.1.1",
						Port:       "443",
					}).
					Return(models.ConvertResult{Links: []string{"https://edge.example/sub?uuid=a", "https://edge.example/sub?uuid=b"}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "https://edge.example/sub?uuid=a\nhttps://edge.example/sub?uuid=b",
		},
		{
			name:         "missing source",
			method:       http.MethodGet,
			target:       "/sub?host=edge.example",
			setupMock:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "source is required",
		},
		{
			name:   "no convertible links",
			method: http.MethodGet,
			target: "/sub?source=main",
			setupMock: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), gomock.Any()).
					Return(models.ConvertResult{}, linkrewriter.ErrNoLinks)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: "no convertible links found",
		},
		{
			name:   "upstream failure",
			method: http.MethodGet,
			target: "/sub?source=main",
			setupMock: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), gomock.Any()).
					Return(models.ConvertResult{}, fmt.Errorf("failed to fetch subscription: %w", models.ErrUpstream))
			},
			expectedCode: http.StatusBadGateway,
			expectedBody: "failed to fetch subscription",
		},
		{
			name:         "wrong HTTP method",
			method:       http.MethodPost,
			target:       "/sub?source=main",
			setupMock:    func() {},
			expectedCode: http.StatusMethodNotAllowed,
			expectedBody: "method not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(tt.method, tt.target, nil)
			rr := httptest.NewRecorder()
			HandlerConvertText(mockConverter)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, strings.TrimSpace(rr.Body.String()))
			assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/plain"))
		})
	}
}
