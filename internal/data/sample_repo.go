package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rabbitt-ai/quizforge/internal/data/pgxutil"
	"github.com/rabbitt-ai/quizforge/internal/domain/model"
)

// SampleRepo provides database operations for uploaded sample sets.
type SampleRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewSampleRepo creates a new SampleRepo with real time provider.
func NewSampleRepo(db *sql.DB) *SampleRepo {
	return &SampleRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewSampleRepoWithTimeProvider creates a new SampleRepo with a custom time provider (useful for tests).
func NewSampleRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *SampleRepo {
	return &SampleRepo{DB: db, timeProvider: tp}
}

const (
	sampleColumns = `id, name, file_name, content_type, size_bytes, uploaded_by, created_at`

	sampleGetByIDQuery = `
		SELECT ` + sampleColumns + `
		FROM sample_sets
		WHERE id = $1`

	sampleListQuery = `
		SELECT ` + sampleColumns + `
		FROM sample_sets
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
)

// Create registers an uploaded sample set.
func (r *SampleRepo) Create(ctx context.Context, req *model.UploadSampleRequest) (*model.SampleSet, error) {
	if req == nil {
		return nil, errors.New("upload sample request is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.SampleSet
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO sample_sets (
				name, file_name, content_type, size_bytes, uploaded_by, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6
			) RETURNING `+sampleColumns,
			strings.TrimSpace(req.Name),
			req.FileName,
			strings.ToLower(strings.TrimSpace(req.ContentType)),
			req.SizeBytes,
			req.UploadedBy,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SampleSet])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// GetByID retrieves a sample set by ID.
func (r *SampleRepo) GetByID(ctx context.Context, id string) (*model.SampleSet, error) {
	var set model.SampleSet
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, sampleGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		set, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SampleSet])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSampleNotFound
		}
		return nil, fmt.Errorf("failed to get sample set by ID: %w", err)
	}
	return &set, nil
}

// List retrieves sample sets with pagination, newest first.
func (r *SampleRepo) List(ctx context.Context, limit, offset int) ([]*model.SampleSet, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.SampleSet
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, sampleListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.SampleSet])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list sample sets: %w", err)
	}

	res := make([]*model.SampleSet, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Delete deletes a sample set by ID. Returns true when a row was removed.
func (r *SampleRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM sample_sets WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete sample set: %w", err)
	}
	return rows > 0, nil
}

func (r *SampleRepo) mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrSampleNameExists
	}
	return err
}
