package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

// Repository репозиторий уведомлений администратора
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет уведомление; data хранится в JSONB
func (r *Repository) Create(ctx context.Context, n *domain.AdminNotification) (*domain.AdminNotification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	data, err := json.Marshal(n.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("admin_notifications").
		Columns("id", "type", "data", "read").
		Values(n.ID, string(n.Type), string(data), n.Read).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return n, nil
}

// GetByID получает уведомление по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminNotification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "type", "data", "read", "created_at").
		From("admin_notifications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	n, err := scanNotification(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan notification: %v", ErrScanRow, err)
	}

	return n, nil
}

// List возвращает уведомления, сначала новые; unreadOnly оставляет непрочитанные
func (r *Repository) List(ctx context.Context, unreadOnly bool) ([]*domain.AdminNotification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id", "type", "data", "read", "created_at").
		From("admin_notifications").
		OrderBy("created_at DESC")
	if unreadOnly {
		builder = builder.Where(squirrel.Eq{"read": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AdminNotification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan notification: %v", ErrScanRow, err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

// MarkRead помечает уведомление прочитанным, только если оно ещё не прочитано.
// Возвращает false, если строка не изменилась (уже прочитано или не существует).
func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("admin_notifications").
		Set("read", true).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"read": false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: MarkRead - rows affected: %v", ErrExecQuery, err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNotification(row rowScanner) (*domain.AdminNotification, error) {
	var (
		n       domain.AdminNotification
		nType   string
		rawData []byte
	)

	if err := row.Scan(&n.ID, &nType, &rawData, &n.Read, &n.CreatedAt); err != nil {
		return nil, err
	}

	n.Type = domain.NotificationType(nType)
	if len(rawData) > 0 {
		if err := json.Unmarshal(rawData, &n.Data); err != nil {
			return nil, fmt.Errorf("decode data: %w", err)
		}
	}

	return &n, nil
}
