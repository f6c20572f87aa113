package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-api/internal/data/entity"
	"cinema-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ActorRepository interface {
	FindAll(ctx context.Context) ([]*entity.Actor, error)
	FindByID(ctx context.Context, id int64) (*entity.Actor, error)
	FindMissingIDs(ctx context.Context, ids []int64) ([]int64, error)
	Create(ctx context.Context, actor *entity.Actor) error
	Update(ctx context.Context, actor *entity.Actor) error
	Delete(ctx context.Context, id int64) error
}

type actorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActorRepository(db database.PgxIface, log *zap.Logger) ActorRepository {
	return &actorRepository{
		db:  db,
		log: log.With(zap.String("repository", "actor")),
	}
}

func (r *actorRepository) FindAll(ctx context.Context) ([]*entity.Actor, error) {
	query := `SELECT id, first_name, last_name FROM actors ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find actors", zap.Error(err))
		return nil, fmt.Errorf("find actors: %w", err)
	}

	actors, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.Actor])
	if err != nil {
		r.log.Error("Failed to scan actor rows", zap.Error(err))
		return nil, fmt.Errorf("scan actors: %w", err)
	}

	return actors, nil
}

func (r *actorRepository) FindByID(ctx context.Context, id int64) (*entity.Actor, error) {
	query := `SELECT id, first_name, last_name FROM actors WHERE id = $1`

	var actor entity.Actor
	err := r.db.QueryRow(ctx, query, id).Scan(&actor.ID, &actor.FirstName, &actor.LastName)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find actor by ID",
			zap.Error(err),
			zap.Int64("actor_id", id),
		)
		return nil, fmt.Errorf("find actor by id %d: %w", id, err)
	}

	return &actor, nil
}

func (r *actorRepository) FindMissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	missing, err := findMissingIDs(ctx, r.db, "actors", ids)
	if err != nil {
		r.log.Error("Failed to check actor ids", zap.Error(err), zap.Int64s("actor_ids", ids))
		return nil, fmt.Errorf("check actor ids: %w", err)
	}
	return missing, nil
}

func (r *actorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	query := `INSERT INTO actors (first_name, last_name) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRow(ctx, query, actor.FirstName, actor.LastName).Scan(&actor.ID)
	if err != nil {
		r.log.Error("Failed to create actor",
			zap.Error(err),
			zap.String("last_name", actor.LastName),
		)
		return fmt.Errorf("create actor: %w", translateError(err))
	}

	return nil
}

func (r *actorRepository) Update(ctx context.Context, actor *entity.Actor) error {
	query := `UPDATE actors SET first_name = $2, last_name = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, actor.ID, actor.FirstName, actor.LastName)
	if err != nil {
		r.log.Error("Failed to update actor",
			zap.Error(err),
			zap.Int64("actor_id", actor.ID),
		)
		return fmt.Errorf("update actor %d: %w", actor.ID, translateError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("actor %d: %w", actor.ID, ErrNotFound)
	}

	return nil
}

func (r *actorRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM actors WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.Int64("actor_id", id),
		)
		return fmt.Errorf("delete actor %d: %w", id, translateError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("actor %d: %w", id, ErrNotFound)
	}

	r.log.Info("Actor deleted", zap.Int64("actor_id", id))
	return nil
}
