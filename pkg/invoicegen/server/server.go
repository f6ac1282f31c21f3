package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rockai-dev/invoicegen/pkg/invoicegen"
	"github.com/rockai-dev/invoicegen/pkg/invoicegen/render"
	"github.com/rockai-dev/invoicegen/pkg/invoicegen/store"
)

// Server wires the extraction pipeline, record store and renderer behind
// the HTTP API.
type Server struct {
	cfg   Config
	proc  *invoicegen.Processor
	store *store.Store
	log   zerolog.Logger
}

// New builds a server from config: the font is resolved once here and the
// resulting handle is shared read-only by all renders.
func New(cfg Config, log zerolog.Logger) *Server {
	st := store.Open(cfg.StorePath, log)
	renderer := render.NewRenderer(render.ResolveFont(cfg.FontPath), cfg.LogoPath, log)
	return &Server{
		cfg:   cfg,
		store: st,
		log:   log,
		proc: &invoicegen.Processor{
			Opts:      invoicegen.DefaultOptions(),
			Renderer:  renderer,
			Store:     st,
			OutputDir: cfg.OutputDir,
			Log:       log,
		},
	}
}

// Router builds the gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.MaxMultipartMemory = s.cfg.MaxUploadBytes

	api := r.Group("/api/invoices")
	{
		api.POST("/upload", s.handleUpload)
		api.GET("", s.handleList)
		api.GET("/archive", s.handleArchive)
		api.GET("/:id", s.handleGet)
		api.GET("/:id/pdf", s.handleDownloadPDF)
		api.DELETE("", s.handleClear)
	}
	return r
}

// Run starts the HTTP listener.
func (s *Server) Run() error {
	s.log.Info().Str("port", s.cfg.Port).Msg("invoice server listening")
	return s.Router().Run(":" + s.cfg.Port)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("request")
	}
}
