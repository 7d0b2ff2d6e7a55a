package repository

import (
	"context"

	"slotdesk/internal/domain/resource"
	"slotdesk/internal/infra"
	"slotdesk/internal/infra/db"
	"slotdesk/internal/pkg/pgconv"
	"slotdesk/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) commands.ResourceRepository {
	return &ResourceRepository{pool: pool}
}

func (r *ResourceRepository) Create(ctx context.Context, tx db.DBTX, res *resource.Resource) (int64, error) {
	const query = `
		INSERT INTO resources (name, type_id)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query, res.Name(), res.TypeID()).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create resource", err)
	}

	return id, nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id int64) (*commands.ResourceSnapshot, error) {
	const query = `
		SELECT r.id, r.name, r.type_id, rt.name, r.created_at, r.updated_at
		FROM resources r
		JOIN resource_types rt ON rt.id = r.type_id
		WHERE r.id = $1`

	var (
		snap      commands.ResourceSnapshot
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &snap.TypeID, &snap.TypeName, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource", err)
	}

	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snap, nil
}

func (r *ResourceRepository) Update(ctx context.Context, tx db.DBTX, id int64, res *resource.Resource) error {
	const query = `
		UPDATE resources
		SET name = $2, type_id = $3, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, res.Name(), res.TypeID())
	if err != nil {
		return infra.WrapRepoErr("failed to update resource", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete resource", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return nil
}
