package deletionlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

// Repository журнал удалений выполненных записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала удалений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в журнал
func (r *Repository) Create(ctx context.Context, l *domain.DeletionLog) (*domain.DeletionLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}

	details, err := json.Marshal(l.AppointmentDetails)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("deletion_logs").
		Columns("id", "user_email", "appointment_details", "reason").
		Values(l.ID, l.UserEmail, string(details), l.Reason).
		Suffix("RETURNING deleted_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&l.DeletedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return l, nil
}

// List возвращает журнал, сначала последние удаления
func (r *Repository) List(ctx context.Context) ([]*domain.DeletionLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_email", "appointment_details", "reason", "deleted_at").
		From("deletion_logs").
		OrderBy("deleted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.DeletionLog, 0)
	for rows.Next() {
		var (
			l       domain.DeletionLog
			details []byte
		)
		if err := rows.Scan(&l.ID, &l.UserEmail, &details, &l.Reason, &l.DeletedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan log: %v", ErrScanRow, err)
		}
		if err := json.Unmarshal(details, &l.AppointmentDetails); err != nil {
			return nil, fmt.Errorf("%w: List - decode details: %v", ErrScanRow, err)
		}
		result = append(result, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}
