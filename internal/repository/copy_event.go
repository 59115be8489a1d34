package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/felixbrock/lemonai/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var copyEventColumns = []string{
	"id", "source_id", "permission", "outcome", "content_length", "error_message", "created_at",
}

// CopyEventFilters narrows a copy history listing.
type CopyEventFilters struct {
	Outcome  *domain.CopyOutcome
	SourceID *string
	Limit    int
	Offset   int
}

// CopyEventRepository handles database operations for copy events.
type CopyEventRepository struct {
	pool *pgxpool.Pool
}

// NewCopyEventRepository creates a new CopyEventRepository.
func NewCopyEventRepository(pool *pgxpool.Pool) *CopyEventRepository {
	return &CopyEventRepository{pool: pool}
}

// Create inserts the event and fills in its ID and CreatedAt.
func (r *CopyEventRepository) Create(ctx context.Context, event *domain.CopyEvent) error {
	query, args, err := psql.
		Insert("copy_events").
		Columns("source_id", "permission", "outcome", "content_length", "error_message").
		Values(event.SourceID, event.Permission, event.Outcome, event.ContentLength, event.ErrorMessage).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&event.ID, &event.CreatedAt); err != nil {
		return fmt.Errorf("create copy event: %w", err)
	}

	return nil
}

// GetByID retrieves a copy event by ID.
func (r *CopyEventRepository) GetByID(ctx context.Context, id string) (*domain.CopyEvent, error) {
	query, args, err := psql.
		Select(copyEventColumns...).
		From("copy_events").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	event, err := scanCopyEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCopyEventNotFound
		}
		return nil, fmt.Errorf("query copy event: %w", err)
	}

	return event, nil
}

// List returns copy events newest first, plus the total count matching filters.
func (r *CopyEventRepository) List(ctx context.Context, filters CopyEventFilters) ([]*domain.CopyEvent, int, error) {
	where := sq.And{}
	if filters.Outcome != nil {
		where = append(where, sq.Eq{"outcome": *filters.Outcome})
	}
	if filters.SourceID != nil {
		where = append(where, sq.Eq{"source_id": *filters.SourceID})
	}

	countQuery, countArgs, err := psql.
		Select("COUNT(*)").
		From("copy_events").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count copy events: %w", err)
	}

	builder := psql.
		Select(copyEventColumns...).
		From("copy_events").
		Where(where).
		OrderBy("created_at DESC", "id DESC")
	if filters.Limit > 0 {
		builder = builder.Limit(uint64(filters.Limit))
	}
	if filters.Offset > 0 {
		builder = builder.Offset(uint64(filters.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query copy events: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.CopyEvent, 0)
	for rows.Next() {
		event, err := scanCopyEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan copy event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate rows: %w", err)
	}

	return events, total, nil
}

func scanCopyEvent(row pgx.Row) (*domain.CopyEvent, error) {
	var event domain.CopyEvent
	err := row.Scan(
		&event.ID,
		&event.SourceID,
		&event.Permission,
		&event.Outcome,
		&event.ContentLength,
		&event.ErrorMessage,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
