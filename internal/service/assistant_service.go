package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"telephysio/internal/faq"
	"telephysio/internal/models"
	"telephysio/pkg/config"
	"telephysio/pkg/metrics"

	"go.uber.org/zap"
)

// AssistantService answers chat questions from the FAQ knowledge base.
type AssistantService struct {
	responder atomic.Pointer[faq.Responder]
	delay     time.Duration
	logger    *zap.Logger
}

func NewAssistantService(kb *faq.KnowledgeBase, delay time.Duration, logger *zap.Logger) *AssistantService {
	s := &AssistantService{delay: delay, logger: logger}
	s.responder.Store(faq.NewResponder(kb))
	return s
}

// Ask answers immediately.
func (s *AssistantService) Ask(text string) faq.Answer {
	answer := s.responder.Load().Answer(text)
	metrics.AssistantAnswers.WithLabelValues(string(answer.Outcome)).Inc()

	fields := []zap.Field{zap.String("outcome", string(answer.Outcome))}
	if answer.Match.Found() {
		fields = append(fields, zap.String("entry", answer.Match.Entry.ID), zap.Int("score", answer.Match.Score))
	}
	s.logger.Debug("Assistant answered", fields...)
	return answer
}

// Reply answers after the configured typing delay. It returns early with the
// context's error when ctx is done first.
func (s *AssistantService) Reply(ctx context.Context, text string) (faq.Answer, error) {
	answer := s.Ask(text)
	if s.delay <= 0 {
		return answer, nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return answer, nil
	case <-ctx.Done():
		return faq.Answer{}, ctx.Err()
	}
}

// Reload swaps in a new knowledge base for subsequent questions.
func (s *AssistantService) Reload(kb *faq.KnowledgeBase) {
	s.responder.Store(faq.NewResponder(kb))
	s.logger.Info("Knowledge base reloaded", zap.Int("entries", kb.Len()))
}

func (s *AssistantService) KnowledgeBase() *faq.KnowledgeBase {
	return s.responder.Load().KnowledgeBase()
}

// LoadKnowledgeBase builds the knowledge base from the configured source.
// An empty database falls back to the built-in entries.
func LoadKnowledgeBase(ctx context.Context, cfg *config.AssistantConfig, store FAQStore, logger *zap.Logger) (*faq.KnowledgeBase, error) {
	switch cfg.KnowledgeSource {
	case "", "builtin":
		return faq.DefaultKnowledgeBase(), nil
	case "file":
		if cfg.KnowledgeFile == "" {
			return nil, fmt.Errorf("ASSISTANT_KNOWLEDGE_FILE is required for the file source")
		}
		return faq.LoadFile(cfg.KnowledgeFile)
	case "database":
		if store == nil {
			return nil, fmt.Errorf("database knowledge source needs a database")
		}
		rows, err := store.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load knowledge base: %w", err)
		}
		if len(rows) == 0 {
			logger.Warn("No knowledge base entries stored, using built-in entries")
			return faq.DefaultKnowledgeBase(), nil
		}
		return faq.NewKnowledgeBase(EntriesFromModels(rows))
	default:
		return nil, fmt.Errorf("unknown knowledge source %q", cfg.KnowledgeSource)
	}
}

func EntriesFromModels(rows []*models.FAQEntry) []faq.Entry {
	entries := make([]faq.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, faq.Entry{
			ID:       r.ID,
			Keywords: r.Keywords,
			Content:  r.Content,
			CatchAll: r.CatchAll,
		})
	}
	return entries
}

func EntriesToModels(entries []faq.Entry) []*models.FAQEntry {
	rows := make([]*models.FAQEntry, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, &models.FAQEntry{
			ID:       e.ID,
			Position: i,
			Keywords: e.Keywords,
			Content:  e.Content,
			CatchAll: e.CatchAll,
		})
	}
	return rows
}
