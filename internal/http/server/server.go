package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"subrewriter/internal/config"
	"subrewriter/internal/domain/models"
	"subrewriter/internal/http/handlers/convert/convert_json"
	"subrewriter/internal/http/handlers/convert/sub_text"
	"subrewriter/internal/http/handlers/getdefault"
	"subrewriter/internal/http/handlers/middlewares"
	"subrewriter/internal/http/handlers/sources/list_sources"
	"subrewriter/internal/http/handlers/system/ping"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=server.go -destination=../../mocks/mock_server.go -package=mocks
type SubscriptionConverter interface {
	Convert(ctx context.Context, req models.ConvertRequest) (models.ConvertResult, error)
	ListSources(ctx context.Context) ([]models.Source, error)
	Ping(ctx context.Context) error
}

type Server struct {
	httpServer *http.Server
	router     *mux.Router
	log        *zerolog.Logger
	converter  SubscriptionConverter
	cfg        config.Config
}

func NewServer(log *zerolog.Logger, cfg config.Config, svc SubscriptionConverter) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if svc == nil {
		return nil, errors.New("service cannot be nil")
	}

	s := &Server{
		router:    mux.NewRouter(),
		cfg:       cfg,
		log:       log,
		converter: svc,
	}

	// WriteTimeout covers the upstream fetch, retries included.
	writeTimeout := 10 * time.Second
	if budget := cfg.FetchTimeout*time.Duration(cfg.FetchRetryMax+1) + 5*time.Second; budget > writeTimeout {
		writeTimeout = budget
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(middlewares.MiddlewareLogging(s.log))
	s.router.Use(middlewares.MiddlewareCompressing())

	s.router.HandleFunc("/ping", ping.HandlerPing(s.converter)).Methods(http.MethodGet)
	s.router.HandleFunc("/sub", sub_text.HandlerConvertText(s.converter)).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/convert", convert_json.HandlerConvertJSON(s.converter)).Methods(http.MethodPost)
	api.HandleFunc("/sources", list_sources.HandlerListSources(s.converter)).Methods(http.MethodGet)

	s.router.HandleFunc("/", getdefault.HandlerGetDefault()).Methods(http.MethodGet)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
