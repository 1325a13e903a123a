package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

const table = "appointments"

var columns = []string{
	"id",
	"client_id",
	"client_name",
	"customer_name",
	"customer_phone",
	"employee_name",
	"service_name",
	"start_time",
	"duration_minutes",
	"price",
	"is_paid",
	"payment_method",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись. ID генерируется, если не задан.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"client_id",
			"client_name",
			"customer_name",
			"customer_phone",
			"employee_name",
			"service_name",
			"start_time",
			"duration_minutes",
			"price",
			"is_paid",
			"payment_method",
			"status",
			"notes",
		).
		Values(
			a.ID,
			nullUUID(a.ClientID),
			a.ClientName,
			a.CustomerName,
			a.CustomerPhone,
			a.EmployeeName,
			a.ServiceName,
			a.StartTime,
			a.DurationMinutes,
			a.Price,
			a.IsPaid,
			paymentMethodValue(a.PaymentMethod),
			string(a.Status),
			a.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return a, nil
}

// GetByID получает запись по ID.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// List получает записи по фильтру, отсортированные по времени начала.
//
// Отмененные записи исключаются, если не указаны статусы и не выставлен IncludeCanceled.
// Внутри транзакции при выборке за период строки блокируются (FOR UPDATE),
// чтобы проверка ёмкости и вставка шли по одному снимку.
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table)

	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"start_time": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"start_time": *filter.To})
	}
	if filter.StartedBefore != nil {
		builder = builder.Where(squirrel.Lt{"start_time": *filter.StartedBefore})
	}
	if filter.ClientID != nil {
		builder = builder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}

	if len(filter.Statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	} else if !filter.IncludeCanceled {
		builder = builder.Where(squirrel.NotEq{"status": string(domain.StatusCanceled)})
	}

	if filter.ClientID != nil {
		builder = builder.OrderBy("start_time DESC")
	} else {
		builder = builder.OrderBy("start_time ASC", "created_at ASC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.From != nil && filter.To != nil {
		builder = builder.Suffix("FOR UPDATE")
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

	result := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan appointment: %v", ErrScanRow, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

// Update сохраняет изменяемые поля записи
func (r *Repository) Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("client_id", nullUUID(a.ClientID)).
		Set("client_name", a.ClientName).
		Set("employee_name", a.EmployeeName).
		Set("service_name", a.ServiceName).
		Set("start_time", a.StartTime).
		Set("duration_minutes", a.DurationMinutes).
		Set("price", a.Price).
		Set("is_paid", a.IsPaid).
		Set("payment_method", paymentMethodValue(a.PaymentMethod)).
		Set("status", string(a.Status)).
		Set("notes", a.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return a, nil
}

// MarkNoShow переводит в NO_SHOW указанные записи, которые всё ещё SCHEDULED.
// Возвращает количество измененных строк.
func (r *Repository) MarkNoShow(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", string(domain.StatusNoShow)).
		Set("is_paid", false).
		Set("payment_method", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"status": string(domain.StatusScheduled)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkNoShow - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkNoShow - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkNoShow - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a             domain.Appointment
		clientID      uuid.NullUUID
		customerName  sql.NullString
		customerPhone sql.NullString
		paymentMethod sql.NullString
		status        string
		notes         sql.NullString
		createdAt     sql.NullTime
		updatedAt     sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&clientID,
		&a.ClientName,
		&customerName,
		&customerPhone,
		&a.EmployeeName,
		&a.ServiceName,
		&a.StartTime,
		&a.DurationMinutes,
		&a.Price,
		&a.IsPaid,
		&paymentMethod,
		&status,
		&notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if clientID.Valid {
		id := clientID.UUID
		a.ClientID = &id
	}
	a.CustomerName = nullStringPtr(customerName)
	a.CustomerPhone = nullStringPtr(customerPhone)
	a.Notes = nullStringPtr(notes)
	a.Status = domain.AppointmentStatus(status)
	if paymentMethod.Valid {
		method := domain.PaymentMethod(paymentMethod.String)
		a.PaymentMethod = &method
	}
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func paymentMethodValue(m *domain.PaymentMethod) interface{} {
	if m == nil {
		return nil
	}
	return string(*m)
}

func statusStrings(statuses []domain.AppointmentStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
