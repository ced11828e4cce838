package servicecatalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avtodetail/carshop-booking/internal/domain"
	"github.com/avtodetail/carshop-booking/pkg/dbmetrics"
	"github.com/avtodetail/carshop-booking/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"code",
	"name",
	"price",
	"resource_type",
	"duration_minutes",
	"duration_days",
	"is_addon",
	"description",
}

// Repository репозиторий справочника услуг.
// Услуги - справочные данные: засеваются миграцией и не удаляются,
// пока на них ссылаются записи.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode получает услугу по уникальному коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Code,
		&svc.Name,
		&svc.Price,
		&svc.ResourceType,
		&svc.DurationMinutes,
		&svc.DurationDays,
		&svc.IsAddon,
		&svc.Description,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// GetByCodes получает услуги по списку кодов. Порядок результата повторяет
// порядок кодов; отсутствие любого кода - ErrServiceNotFound.
func (r *Repository) GetByCodes(ctx context.Context, codes []string) ([]*domain.Service, error) {
	if len(codes) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"code": codes}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCodes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCodes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services, err := scanServices(rows)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]*domain.Service, len(services))
	for _, s := range services {
		byCode[s.Code] = s
	}

	ordered := make([]*domain.Service, 0, len(codes))
	for _, code := range codes {
		svc, ok := byCode[code]
		if !ok {
			return nil, fmt.Errorf("%w: code=%s", ErrServiceNotFound, code)
		}
		ordered = append(ordered, svc)
	}

	return ordered, nil
}

// ListPrimary получает основные услуги каталога (is_addon = false)
func (r *Repository) ListPrimary(ctx context.Context) ([]*domain.Service, error) {
	return r.list(ctx, false)
}

// ListAddons получает дополнения каталога (is_addon = true)
func (r *Repository) ListAddons(ctx context.Context) ([]*domain.Service, error) {
	return r.list(ctx, true)
}

func (r *Repository) list(ctx context.Context, isAddon bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"is_addon": isAddon}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// scanServices сканирует результаты запроса в слайс услуг
func scanServices(rows *sql.Rows) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)

	for rows.Next() {
		var svc domain.Service
		err := rows.Scan(
			&svc.ID,
			&svc.Code,
			&svc.Name,
			&svc.Price,
			&svc.ResourceType,
			&svc.DurationMinutes,
			&svc.DurationDays,
			&svc.IsAddon,
			&svc.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
