package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rabbitt-ai/quizforge/internal/data/pgxutil"
	"github.com/rabbitt-ai/quizforge/internal/domain/model"
)

// BlueprintRepo provides database operations for assessment blueprints.
type BlueprintRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewBlueprintRepo creates a new BlueprintRepo with real time provider.
func NewBlueprintRepo(db *sql.DB) *BlueprintRepo {
	return &BlueprintRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewBlueprintRepoWithTimeProvider creates a new BlueprintRepo with a custom time provider (useful for tests).
func NewBlueprintRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *BlueprintRepo {
	return &BlueprintRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries.
const (
	blueprintColumns = `id, topic, job_description, question_count, experience, easy, medium, hard, created_by, created_at`

	blueprintGetByIDQuery = `
		SELECT ` + blueprintColumns + `
		FROM blueprints
		WHERE id = $1`

	blueprintListQuery = `
		SELECT ` + blueprintColumns + `
		FROM blueprints
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	blueprintListByCreatorQuery = `
		SELECT ` + blueprintColumns + `
		FROM blueprints
		WHERE created_by = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
)

// Create inserts a new blueprint.
func (r *BlueprintRepo) Create(ctx context.Context, req *model.CreateBlueprintRequest) (*model.Blueprint, error) {
	if req == nil {
		return nil, errors.New("create blueprint request is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	experience := req.Experience
	if experience == "" {
		experience = model.ExperienceIntermediate
	}

	var out model.Blueprint
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO blueprints (
				topic, job_description, question_count, experience, easy, medium, hard, created_by, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9
			) RETURNING `+blueprintColumns,
			strings.TrimSpace(req.Topic),
			req.JobDescription,
			req.QuestionCount,
			experience,
			req.Distribution.Easy,
			req.Distribution.Medium,
			req.Distribution.Hard,
			req.CreatedBy,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Blueprint])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create blueprint: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a blueprint by ID.
func (r *BlueprintRepo) GetByID(ctx context.Context, id string) (*model.Blueprint, error) {
	var bp model.Blueprint
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, blueprintGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		bp, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Blueprint])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlueprintNotFound
		}
		return nil, fmt.Errorf("failed to get blueprint by ID: %w", err)
	}
	return &bp, nil
}

// List retrieves blueprints with pagination, newest first.
func (r *BlueprintRepo) List(ctx context.Context, limit, offset int) ([]*model.Blueprint, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Blueprint
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, blueprintListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Blueprint])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list blueprints: %w", err)
	}

	res := make([]*model.Blueprint, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListByCreator retrieves blueprints created by the given user, newest first.
func (r *BlueprintRepo) ListByCreator(ctx context.Context, createdBy string, limit, offset int) ([]*model.Blueprint, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Blueprint
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, blueprintListByCreatorQuery, createdBy, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Blueprint])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list blueprints by creator: %w", err)
	}

	res := make([]*model.Blueprint, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Delete deletes a blueprint by ID. Returns true when a row was removed.
func (r *BlueprintRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM blueprints WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete blueprint: %w", err)
	}
	return rows > 0, nil
}
