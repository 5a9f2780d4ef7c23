package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"slate/pkg/prompt"
	"slate/pkg/schema"
	"slate/pkg/utils"
)

type promptReq struct {
	Shot           schema.Shot                    `json:"shot"`
	Characters     []schema.CharacterRef          `json:"characters"`
	StyleBible     *schema.StyleBible             `json:"style_bible,omitempty"`
	Voices         map[string]schema.VoiceProfile `json:"voices,omitempty"`
	ExtraNegatives []string                       `json:"extra_negatives,omitempty"`
}

type promptResp struct {
	Prompt         string                  `json:"prompt"`
	NegativePrompt string                  `json:"negative_prompt"`
	Validation     schema.PromptValidation `json:"validation"`
	Tokens         int                     `json:"tokens,omitempty"`
}

// POST /api/prompt
func (s *Server) handlePostPrompt(c echo.Context) error {
	var req promptReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}

	compiled := prompt.Assemble(req.Shot, req.Characters, req.StyleBible, req.Voices)
	negative := prompt.FormatNegativePrompt(req.StyleBible, req.ExtraNegatives...)
	validation := prompt.Validate(compiled, req.Shot, req.Characters, req.StyleBible)

	tokens, err := utils.NumTokensFromPrompt(compiled)
	if err != nil {
		log.Warn("token estimate unavailable", "error", err)
	}

	if !validation.IsValid {
		log.Warn("prompt failed validation", "shot", req.Shot.Order, "errors", validation.Errors)
	}
	return c.JSON(http.StatusOK, promptResp{
		Prompt:         compiled,
		NegativePrompt: negative,
		Validation:     validation,
		Tokens:         tokens,
	})
}

type batchReq struct {
	Shots      []schema.Shot         `json:"shots"`
	Characters []schema.CharacterRef `json:"characters"`
	StyleBible *schema.StyleBible    `json:"style_bible,omitempty"`
}

// POST /api/prompt/batch
func (s *Server) handlePostPromptBatch(c echo.Context) error {
	var req batchReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	if len(req.Shots) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "shots are required")
	}
	compiled := prompt.AssembleMultiShot(req.Shots, req.Characters, req.StyleBible)
	return c.JSON(http.StatusOK, map[string]string{"prompt": compiled})
}

type diffResp struct {
	Prompt string            `json:"prompt"`
	Deltas []utils.WordDelta `json:"deltas"`
}

// POST /api/prompt/diff
//
// Recompiles the shot's prompt and reports word-level deltas against the
// prompt stored on the shot, so editors can see what their changes did.
func (s *Server) handlePostPromptDiff(c echo.Context) error {
	var req promptReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	compiled := prompt.Assemble(req.Shot, req.Characters, req.StyleBible, req.Voices)
	deltas := utils.DiffWords(req.Shot.GeneratedPrompt, compiled)
	return c.JSON(http.StatusOK, diffResp{Prompt: compiled, Deltas: deltas})
}
