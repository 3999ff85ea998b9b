package httpserver

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tinytelemetry/termfolio/internal/profile"
	"github.com/tinytelemetry/termfolio/internal/terminal"
	"github.com/tinytelemetry/termfolio/internal/typewriter"
)

const defaultAddr = "127.0.0.1:3000"

// Options tunes the API beyond its profile.
type Options struct {
	Typewriter     typewriter.Config
	CursorInterval time.Duration
	Logger         *zap.Logger
	// Clock drives the frame stream; nil means the real clock.
	Clock typewriter.Clock
}

// Server exposes the portfolio, the typewriter and the command terminal
// over HTTP.
type Server struct {
	addr           string
	profile        *profile.Profile
	registry       *terminal.Registry
	typewriter     typewriter.Config
	cursorInterval time.Duration
	clock          typewriter.Clock
	logger         *zap.Logger
	server         *http.Server
	ctx            context.Context
	cancel         context.CancelFunc
	startTime      time.Time
}

// NewServer creates a new HTTP API server.
func NewServer(addr string, p *profile.Profile, opts Options) *Server {
	if addr == "" {
		addr = defaultAddr
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = typewriter.RealClock()
	}
	if opts.CursorInterval <= 0 {
		opts.CursorInterval = typewriter.DefaultCursorInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:           addr,
		profile:        p,
		registry:       terminal.DefaultRegistry(p),
		typewriter:     opts.Typewriter.Normalize(),
		cursorInterval: opts.CursorInterval,
		clock:          opts.Clock,
		logger:         opts.Logger,
		ctx:            ctx,
		cancel:         cancel,
		startTime:      time.Now(),
	}
}

// Handler returns the routed gin engine.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/profile", s.handleProfile)
	r.GET("/api/typewriter/frames", s.handleFrames)
	r.GET("/api/typewriter/stream", s.handleStream)
	r.POST("/api/terminal", s.handleTerminal)
	r.GET("/api/terminal/complete", s.handleComplete)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// No WriteTimeout: the frame stream stays open.
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()
	s.logger.Info("api listening", zap.String("addr", listener.Addr().String()))

	go s.server.Serve(listener)
	return nil
}

// Stop gracefully shuts down the HTTP server. Open streams see their
// request context cancelled first.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func requestLogger(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

func (s *Server) handleProfile(c *gin.Context) {
	c.JSON(http.StatusOK, s.profile)
}

func (s *Server) handleFrames(c *gin.Context) {
	ticks := typewriter.CycleTicks(s.profile.Segments)
	if raw := c.Query("ticks"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ticks must be an integer"})
			return
		}
		ticks = n
	}
	ticks = min(max(ticks, 1), typewriter.MaxTicks)

	c.JSON(http.StatusOK, gin.H{
		"segments": s.profile.Segments,
		"config":   s.typewriter,
		"ticks":    ticks,
		"steps":    typewriter.Simulate(s.profile.Segments, s.typewriter, ticks),
	})
}

// handleStream sends one "frame" event per engine tick or cursor blink and
// a final "done" event when a non-looping engine finishes.
func (s *Server) handleStream(c *gin.Context) {
	frames := make(chan typewriter.Frame, 16)

	// Stop must run after cancel: onFrame may be blocked on a full channel
	// while holding the runner lock.
	var runner *typewriter.Runner
	defer func() {
		if runner != nil {
			runner.Stop()
		}
	}()
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	engine := typewriter.NewEngine(s.profile.Segments, s.typewriter)
	cursor := typewriter.NewCursor("", s.cursorInterval)
	runner = typewriter.NewRunner(engine, cursor, func(f typewriter.Frame) {
		select {
		case frames <- f:
		case <-ctx.Done():
		}
	}, typewriter.WithClock(s.clock), typewriter.WithLogger(s.logger))

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	if err := runner.Start(ctx); err != nil {
		s.logger.Error("start frame stream", zap.Error(err))
		return
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("frame stream closed by client")
			return
		case f := <-frames:
			if f.State.Mode == typewriter.ModeDone {
				c.SSEvent("done", f)
				c.Writer.Flush()
				return
			}
			c.SSEvent("frame", f)
			c.Writer.Flush()
		}
	}
}

type terminalRequest struct {
	History terminal.History `json:"history"`
	Input   string           `json:"input"`
}

func (s *Server) handleTerminal(c *gin.Context) {
	var req terminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	history := req.History
	if history == nil {
		history = terminal.Greeting(s.profile.Greeting...)
	}
	next := terminal.Reduce(history, req.Input, s.registry, s.clock.Now())
	c.JSON(http.StatusOK, gin.H{"history": next})
}

func (s *Server) handleComplete(c *gin.Context) {
	prefix := c.Query("prefix")
	name, ok := terminal.Complete(s.registry, prefix)
	c.JSON(http.StatusOK, gin.H{
		"prefix":     prefix,
		"completion": name,
		"ok":         ok,
	})
}
