package handlers

import (
	"telephysio/internal/dto"
	"telephysio/internal/faq"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Assistant interface {
	Ask(text string) faq.Answer
}

type AssistantHandler struct {
	assistant Assistant
	logger    *zap.Logger
}

func NewAssistantHandler(assistant Assistant, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		logger:    logger,
	}
}

// Ask godoc
// @Summary Ask the FAQ assistant
// @Description Answers immediately; the chat socket adds a typing delay.
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Question"
// @Success 200 {object} dto.AskResponse
// @Failure 400 {object} map[string]string
// @Router /api/assistant/ask [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var req dto.AskRequest
	if ok, err := parseBody(c, &req, "Text is required"); !ok {
		return err
	}

	answer := h.assistant.Ask(req.Text)
	resp := dto.AskResponse{Reply: answer.Text, Outcome: string(answer.Outcome)}
	if answer.Match.Found() {
		resp.EntryID = answer.Match.Entry.ID
		resp.Score = answer.Match.Score
	}
	return c.JSON(resp)
}
