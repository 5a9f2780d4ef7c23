package server

import (
	"context"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"slate/pkg/flight"
	"slate/pkg/inference"
	"slate/pkg/schema"
	"slate/pkg/utils"
)

const plansFile = "Plans.json"

// StoredPlan is one materialized shot list held by the server between
// planning and generation. Shots are the source of truth; prompts are
// recompiled per request.
type StoredPlan struct {
	ID         string                `json:"id"`
	Synopsis   string                `json:"synopsis,omitempty"`
	Genre      string                `json:"genre,omitempty"`
	Characters []schema.CharacterRef `json:"characters,omitempty"`
	StyleBible *schema.StyleBible    `json:"style_bible,omitempty"`
	Shots      []schema.Shot         `json:"shots"`
	CreatedAt  string                `json:"created_at"`
}

type Server struct {
	Echo       *echo.Echo
	Inferencer inference.Inferencer
	Ctx        context.Context

	mu    sync.RWMutex
	plans map[string]StoredPlan

	analyses *flight.Cache[analyzeKey, schema.ScriptAnalysis]
}

func NewServer(ctx context.Context, inf inference.Inferencer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:       e,
		Inferencer: inf,
		Ctx:        ctx,
		plans:      make(map[string]StoredPlan),
	}
	s.analyses = flight.NewCache(s.analyzeWork)

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)

	api := s.Echo.Group("/api")
	api.POST("/analyze", s.handlePostAnalyze)   // movie description -> schema.ScriptAnalysis
	api.POST("/duration", s.handlePostDuration) // analysis + target -> pacing report
	api.POST("/plan", s.handlePostPlan)         // analysis -> stored shot list
	api.GET("/plan/:id", s.handleGetPlan)

	api.POST("/prompt", s.handlePostPrompt)            // one shot -> compiled prompt + validation
	api.POST("/prompt/batch", s.handlePostPromptBatch) // several shots -> numbered batch prompt
	api.POST("/prompt/diff", s.handlePostPromptDiff)   // recompiled vs stored prompt deltas
}

func (s *Server) LoadPlans() {
	if !utils.Exists(plansFile) {
		return
	}
	plans, err := utils.Load[map[string]StoredPlan](plansFile)
	if err == nil && plans != nil {
		s.mu.Lock()
		s.plans = plans
		s.mu.Unlock()
	}
}

func (s *Server) Start(addr string) error {
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.RLock()
	saveErr := utils.Save(plansFile, s.plans)
	s.mu.RUnlock()

	if err := s.Echo.Shutdown(ctx); err != nil {
		return err
	}
	return saveErr
}
