package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/ksuid"

	"slate/pkg/catalog"
	"slate/pkg/director"
	"slate/pkg/schema"
)

type planReq struct {
	Analysis   schema.ScriptAnalysis `json:"analysis"`
	Characters []schema.CharacterRef `json:"characters"`
	StyleBible *schema.StyleBible    `json:"style_bible,omitempty"`
	Genre      string                `json:"genre,omitempty"`
	Seed       int64                 `json:"seed,omitempty"`
}

type planResp struct {
	PlanID     string             `json:"plan_id"`
	Shots      []schema.Shot      `json:"shots"`
	StyleBible *schema.StyleBible `json:"style_bible,omitempty"`
}

// POST /api/plan
func (s *Server) handlePostPlan(c echo.Context) error {
	var req planReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if len(req.Analysis.Scenes) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "analysis has no scenes")
	}

	genreLabel := req.Genre
	if genreLabel == "" {
		genreLabel = req.Analysis.Genre
	}
	var preset *catalog.GenrePreset
	if g, ok := catalog.GenreFor(genreLabel); ok {
		preset = &g
	}

	style := req.StyleBible
	if style == nil && preset != nil {
		style = &preset.StyleBible
	}

	planner := director.New()
	if req.Seed != 0 {
		planner = director.NewSeeded(req.Seed)
	}
	shots := planner.Plan(req.Analysis, req.Characters, style, preset)

	stored := StoredPlan{
		ID:         ksuid.New().String(),
		Synopsis:   req.Analysis.Synopsis,
		Genre:      genreLabel,
		Characters: req.Characters,
		StyleBible: style,
		Shots:      shots,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	s.mu.Lock()
	s.plans[stored.ID] = stored
	s.mu.Unlock()

	log.Info("plan complete", "plan", stored.ID, "shots", len(shots), "genre", genreLabel)
	return c.JSON(http.StatusOK, planResp{PlanID: stored.ID, Shots: shots, StyleBible: style})
}

// GET /api/plan/:id
func (s *Server) handleGetPlan(c echo.Context) error {
	s.mu.RLock()
	plan, ok := s.plans[c.Param("id")]
	s.mu.RUnlock()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "plan not found")
	}
	return c.JSON(http.StatusOK, plan)
}
