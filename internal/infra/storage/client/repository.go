package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

const uniqueViolation = pq.ErrorCode("23505")

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// selectClients строит выборку клиентов вместе с суммой оплат и датой последнего визита
func selectClients() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"c.id",
		"c.name",
		"c.phone",
		"COALESCE(SUM(a.price) FILTER (WHERE a.is_paid), 0) AS total_spent",
		"MAX(a.start_time) FILTER (WHERE a.status = 'COMPLETED') AS last_visit",
		"c.deleted_at",
		"c.created_at",
	).
		From("clients c").
		LeftJoin("appointments a ON a.client_id = c.id").
		GroupBy("c.id")
}

// Create создает клиента.
// При занятом телефоне возвращает ErrDuplicatePhone.
func (r *Repository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("clients").
		Columns("id", "name", "phone").
		Values(c.ID, c.Name, c.Phone).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.CreatedAt); err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrDuplicatePhone
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// GetByID получает клиента по ID (включая удаленных)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query, args, err := selectClients().
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.getOne(ctx, "GetByID", query, args)
}

// FindByPhone ищет активного клиента по любому из вариантов номера
func (r *Repository) FindByPhone(ctx context.Context, phones ...string) (*domain.Client, error) {
	candidates := make([]string, 0, len(phones))
	for _, p := range phones {
		if p != "" {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrClientNotFound
	}

	query, args, err := selectClients().
		Where(squirrel.Eq{"c.phone": candidates}).
		Where(squirrel.Eq{"c.deleted_at": nil}).
		OrderBy("c.created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByPhone - build select query: %v", ErrBuildQuery, err)
	}

	return r.getOne(ctx, "FindByPhone", query, args)
}

// FindByName ищет активного клиента по имени без учета регистра
func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Client, error) {
	query, args, err := selectClients().
		Where(squirrel.Expr("LOWER(c.name) = LOWER(?)", name)).
		Where(squirrel.Eq{"c.deleted_at": nil}).
		OrderBy("c.created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByName - build select query: %v", ErrBuildQuery, err)
	}

	return r.getOne(ctx, "FindByName", query, args)
}

// List возвращает клиентов, отсортированных по имени
func (r *Repository) List(ctx context.Context, includeDeleted bool) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectClients().OrderBy("c.name ASC")
	if !includeDeleted {
		builder = builder.Where(squirrel.Eq{"c.deleted_at": nil})
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

	result := make([]*domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan client: %v", ErrScanRow, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

// UpdatePhone обновляет телефон клиента
func (r *Repository) UpdatePhone(ctx context.Context, id uuid.UUID, phone string) error {
	return r.update(ctx, "UpdatePhone", id, map[string]interface{}{"phone": phone})
}

// UpdateName переименовывает клиента
func (r *Repository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	return r.update(ctx, "UpdateName", id, map[string]interface{}{"name": name})
}

// SoftDelete помечает клиента удаленным. Повторное удаление возвращает ErrClientNotFound.
func (r *Repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("clients").
		Set("deleted_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SoftDelete", query, args)
}

func (r *Repository) update(ctx context.Context, op string, id uuid.UUID, fields map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("clients").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	return r.execAffectingOne(ctx, executor, op, query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicatePhone
		}
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, op, query string, args []interface{}) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	c, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan client: %v", ErrScanRow, op, err)
	}

	return c, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var (
		c         domain.Client
		lastVisit sql.NullTime
		deletedAt sql.NullTime
	)

	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.TotalSpent, &lastVisit, &deletedAt, &c.CreatedAt); err != nil {
		return nil, err
	}

	if lastVisit.Valid {
		t := lastVisit.Time
		c.LastVisit = &t
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		c.DeletedAt = &t
	}

	return &c, nil
}

// IsUniqueViolation проверяет, что ошибка - нарушение уникального ограничения PostgreSQL
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
