package repository

import (
	"context"

	"telephysio/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CallbackRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCallbackRepository(db *pgxpool.Pool, logger *zap.Logger) *CallbackRepository {
	return &CallbackRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CallbackRepository) Create(ctx context.Context, cb *models.CallbackRequest) error {
	query := squirrel.Insert("callbacks").
		Columns("id", "name", "phone", "message", "notified", "created_at").
		Values(cb.ID, cb.Name, cb.Phone, cb.Message, cb.Notified, cb.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return translate(err)
}

func (r *CallbackRepository) MarkNotified(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Update("callbacks").
		Set("notified", true).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
