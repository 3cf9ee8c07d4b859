package repository

import (
	"context"
	"strings"

	"telephysio/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type AppointmentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAppointmentRepository(db *pgxpool.Pool, logger *zap.Logger) *AppointmentRepository {
	return &AppointmentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *models.Appointment) error {
	query := squirrel.Insert("appointments").
		Columns("id", "name", "email", "phone", "age", "gender", "condition", "created_at").
		Values(a.ID, a.Name, a.Email, a.Phone, a.Age, a.Gender, a.Condition, a.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return translate(err)
}

// ListByEmail returns the appointments booked under email, newest first.
// The comparison ignores case.
func (r *AppointmentRepository) ListByEmail(ctx context.Context, email string, limit, offset int) ([]*models.Appointment, error) {
	query := squirrel.Select("id", "name", "email", "phone", "age", "gender", "condition", "created_at").
		From("appointments").
		Where(squirrel.Expr("LOWER(email) = ?", strings.ToLower(email))).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
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

	var appointments []*models.Appointment
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Age, &a.Gender, &a.Condition, &a.CreatedAt); err != nil {
			return nil, err
		}
		appointments = append(appointments, &a)
	}

	return appointments, rows.Err()
}
