package repository

import (
	"context"
	"time"

	"telephysio/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type FAQRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewFAQRepository(db *pgxpool.Pool, logger *zap.Logger) *FAQRepository {
	return &FAQRepository{
		db:     db,
		logger: logger,
	}
}

// List returns every entry in match order.
func (r *FAQRepository) List(ctx context.Context) ([]*models.FAQEntry, error) {
	query := squirrel.Select("id", "position", "keywords", "content", "catch_all", "created_at", "updated_at").
		From("faq_entries").
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.FAQEntry
	for rows.Next() {
		var e models.FAQEntry
		if err := rows.Scan(&e.ID, &e.Position, &e.Keywords, &e.Content, &e.CatchAll, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// ReplaceAll swaps the stored knowledge base for entries in one transaction.
// Positions are reassigned from the slice order.
func (r *FAQRepository) ReplaceAll(ctx context.Context, entries []*models.FAQEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, "DELETE FROM faq_entries"); err != nil {
		return err
	}

	if len(entries) > 0 {
		now := time.Now()
		query := squirrel.Insert("faq_entries").
			Columns("id", "position", "keywords", "content", "catch_all", "created_at", "updated_at").
			PlaceholderFormat(squirrel.Dollar)
		for i, e := range entries {
			keywords := e.Keywords
			if keywords == nil {
				keywords = []string{}
			}
			query = query.Values(e.ID, i, keywords, e.Content, e.CatchAll, now, now)
		}

		sql, args, err := query.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return translate(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	r.logger.Info("knowledge base replaced", zap.Int("entries", len(entries)))
	return nil
}

// Count reports the number of stored entries.
func (r *FAQRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM faq_entries").Scan(&n)
	return n, err
}

