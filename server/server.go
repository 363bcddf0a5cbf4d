// Package server exposes the sampling explorer over HTTP: JSON endpoints for
// transforms and sampling, HTML bar charts, the experiment log and an MCP
// endpoint for agents.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/papercomputeco/explorer/pkg/config"
	"github.com/papercomputeco/explorer/pkg/distribution"
	"github.com/papercomputeco/explorer/pkg/experiment"
	"github.com/papercomputeco/explorer/pkg/explorer"
	"github.com/papercomputeco/explorer/pkg/llm"
	"github.com/papercomputeco/explorer/pkg/mcptools"
)

// Server is the explorer HTTP service. It holds no per-request state: every
// handler resolves its base distribution, runs the transform library and
// records the run in the experiment log.
type Server struct {
	config config.Server
	svc    *explorer.Service
	logger *zap.Logger
	server *fiber.App
}

// New creates a new Server.
func New(cfg config.Server, svc *explorer.Service, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		// Disable startup message for cleaner logs
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
	})

	s := &Server{
		config: cfg,
		svc:    svc,
		logger: logger,
		server: app,
	}
	s.routes(app)

	if cfg.MCP {
		mcpServer := mcptools.NewServer(svc)
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return mcpServer }, nil)
		app.All("/mcp", adaptor.HTTPHandler(handler))
	}

	return s
}

func (s *Server) routes(app *fiber.App) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})

	app.Get("/api/presets", s.handleListPresets)
	app.Get("/api/presets/:name", s.handleGetPreset)
	app.Post("/api/transform", s.handleTransform)
	app.Post("/api/pipeline", s.handlePipeline)
	app.Post("/api/sample", s.handleSample)
	app.Post("/api/empirical", s.handleEmpirical)

	app.Get("/chart/:preset", s.handleChart)

	// Experiment log inspection endpoints
	app.Get("/experiments/stats", s.handleExperimentStats)
	app.Get("/experiments/node/:hash", s.handleGetNode)
	app.Get("/experiments/history", s.handleListHistories)
	app.Get("/experiments/history/:hash", s.handleGetHistory)
}

// Run starts the server on the configured listening address
func (s *Server) Run() error {
	s.logger.Info("starting explorer server",
		zap.String("listen", s.config.ListenAddr),
		zap.Bool("mcp", s.config.MCP),
	)

	return s.server.Listen(s.config.ListenAddr)
}

// Close shuts down the server and releases resources.
func (s *Server) Close() error {
	err := s.server.Shutdown()
	if storer := s.svc.Storer(); storer != nil {
		err = errors.Join(err, storer.Close())
	}
	return err
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.server
}

// fail writes err as an llm.ErrorResponse with a status derived from its kind.
func (s *Server) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	kind := distribution.Kind(err)

	var notFound experiment.ErrNotFound
	switch {
	case errors.Is(err, explorer.ErrUnknownPreset):
		status, kind = fiber.StatusNotFound, "unknown_preset"
	case errors.As(err, &notFound):
		status, kind = fiber.StatusNotFound, "not_found"
	case kind == "degenerate_distribution":
		status = fiber.StatusUnprocessableEntity
	case kind != "internal":
		status = fiber.StatusBadRequest
	}

	if status == fiber.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	} else {
		s.logger.Debug("request rejected", zap.String("path", c.Path()), zap.Int("status", status), zap.Error(err))
	}

	return c.Status(status).JSON(llm.ErrorResponse{Error: err.Error(), Kind: kind})
}

// badBody answers a request whose JSON body could not be decoded.
func (s *Server) badBody(c *fiber.Ctx, err error) error {
	s.logger.Debug("failed to parse request", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusBadRequest).JSON(llm.ErrorResponse{Error: "invalid request body", Kind: "invalid_input"})
}

func (s *Server) handleListPresets(c *fiber.Ctx) error {
	presets := s.svc.Presets()
	return c.JSON(map[string]any{
		"count":   len(presets),
		"presets": presets,
	})
}

func (s *Server) handleGetPreset(c *fiber.Ctx) error {
	p, err := s.svc.Preset(c.Params("name"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(p)
}

func (s *Server) handleTransform(c *fiber.Ctx) error {
	var req llm.TransformRequest
	if err := c.BodyParser(&req); err != nil {
		return s.badBody(c, err)
	}

	resp, err := s.svc.Transform(c.Context(), req)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(resp)
}

func (s *Server) handlePipeline(c *fiber.Ctx) error {
	var req llm.PipelineRequest
	if err := c.BodyParser(&req); err != nil {
		return s.badBody(c, err)
	}

	resp, err := s.svc.Pipeline(c.Context(), req)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(resp)
}

func (s *Server) handleSample(c *fiber.Ctx) error {
	start := time.Now()

	var req llm.SampleRequest
	if err := c.BodyParser(&req); err != nil {
		return s.badBody(c, err)
	}

	resp, err := s.svc.Sample(c.Context(), req)
	if err != nil {
		return s.fail(c, err)
	}

	s.logger.Info("samples drawn",
		zap.Int("samples", len(resp.Samples)),
		zap.String("transform", resp.Transform),
		zap.Uint64("seed", resp.Seed),
		zap.Duration("duration", time.Since(start)),
	)
	return c.JSON(resp)
}

func (s *Server) handleEmpirical(c *fiber.Ctx) error {
	var req llm.EmpiricalRequest
	if err := c.BodyParser(&req); err != nil {
		return s.badBody(c, err)
	}

	resp, err := s.svc.Empirical(req)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(resp)
}
