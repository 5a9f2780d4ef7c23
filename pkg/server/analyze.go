package server

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"slate/pkg/inference"
	"slate/pkg/pacing"
	"slate/pkg/schema"
	"slate/pkg/utils"
)

type analyzeReq struct {
	Description string `json:"description"`
	Target      int    `json:"target_seconds,omitempty"`
	Force       bool   `json:"force,omitempty"`
}

type analyzeKey struct {
	description string
	target      int
}

func (s *Server) handleGetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "Slate Shot Planning API",
		"status":  "ok",
	})
}

// POST /api/analyze
func (s *Server) handlePostAnalyze(c echo.Context) error {
	var req analyzeReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}

	key := analyzeKey{description: req.Description, target: req.Target}
	var analysis schema.ScriptAnalysis
	var err error
	if req.Force {
		analysis, err = s.analyses.Force(key)
	} else {
		analysis, err = s.analyses.Get(key)
	}
	if err != nil {
		log.Error("script analysis failed", "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "script analysis failed: "+err.Error())
	}

	log.Info("script analyzed", "description", utils.LimitStr(req.Description, 80),
		"scenes", len(analysis.Scenes), "shots", analysis.EstimatedShots)
	return c.JSON(http.StatusOK, analysis)
}

// analyzeWork is the flight-coalesced body of /api/analyze: one description
// in flight is inferred once no matter how many callers ask.
func (s *Server) analyzeWork(key analyzeKey) (schema.ScriptAnalysis, error) {
	return inference.AnalyzeScript(s.Ctx, s.Inferencer, key.description, key.target)
}

type durationReq struct {
	Analysis schema.ScriptAnalysis `json:"analysis"`
	Target   int                   `json:"target_seconds"`
}

// POST /api/duration
func (s *Server) handlePostDuration(c echo.Context) error {
	var req durationReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	report := pacing.Analyze(req.Analysis, req.Target)
	return c.JSON(http.StatusOK, report)
}
