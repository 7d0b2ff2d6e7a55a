package readstore

import (
	"context"

	"slotdesk/internal/infra"
	"slotdesk/internal/pkg/pgconv"
	"slotdesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceReadStore struct {
	pool *pgxpool.Pool
}

func NewResourceReadStore(pool *pgxpool.Pool) queries.ResourceReadStore {
	return &ResourceReadStore{pool: pool}
}

func (s *ResourceReadStore) FindByID(ctx context.Context, id int64) (*queries.ResourceView, error) {
	const query = `
		SELECT r.id, r.name, rt.name, r.type_id, r.created_at, r.updated_at
		FROM resources r
		JOIN resource_types rt ON rt.id = r.type_id
		WHERE r.id = $1`

	var (
		view      queries.ResourceView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.Type, &view.TypeID, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource", err)
	}

	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func (s *ResourceReadStore) FindAll(ctx context.Context, typeFilter *string) ([]*queries.ResourceView, error) {
	query := `
		SELECT r.id, r.name, rt.name, r.type_id, r.created_at, r.updated_at
		FROM resources r
		JOIN resource_types rt ON rt.id = r.type_id`
	args := []any{}
	if typeFilter != nil {
		query += " WHERE rt.name = $1"
		args = append(args, *typeFilter)
	}
	query += " ORDER BY r.id"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}
	defer rows.Close()

	views := make([]*queries.ResourceView, 0)
	for rows.Next() {
		var (
			view      queries.ResourceView
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Type, &view.TypeID, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate resource rows", err)
	}
	return views, nil
}

func (s *ResourceReadStore) FindAllTypes(ctx context.Context) ([]*queries.ResourceTypeView, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM resource_types ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resource types", err)
	}
	defer rows.Close()

	views := make([]*queries.ResourceTypeView, 0)
	for rows.Next() {
		var view queries.ResourceTypeView
		if err := rows.Scan(&view.ID, &view.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource type row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate resource type rows", err)
	}
	return views, nil
}
