package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Computation records one finished enumeration: which grid, the count,
// and how long the search took. Telemetry only; the engine's in-process
// cache is the source of truth within a run.
type Computation struct {
	ComputationId int64              `json:"computation_id"`
	GridRows      int                `json:"rows"`
	GridCols      int                `json:"cols"`
	SolutionCount int64              `json:"count"`
	DurationMs    float64            `json:"duration_ms"`
	ComputedAt    pgtype.Timestamptz `json:"computed_at"`
}

type CreateComputationParams struct {
	GridRows      int
	GridCols      int
	SolutionCount int
	DurationMs    float64
}

func (q *Queries) CreateComputation(
	ctx context.Context, params CreateComputationParams,
) (*Computation, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO computation (grid_rows, grid_cols, solution_count, duration_ms)
		VALUES (@grid_rows, @grid_cols, @solution_count, @duration_ms)
		RETURNING *;`,
		pgx.NamedArgs{
			"grid_rows":      params.GridRows,
			"grid_cols":      params.GridCols,
			"solution_count": params.SolutionCount,
			"duration_ms":    params.DurationMs,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Computation])
}

type ComputationFilter struct {
	GridRows *int
	GridCols *int
}

func (f ComputationFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.GridRows != nil {
		clauses = append(clauses, "grid_rows = @grid_rows")
		args["grid_rows"] = *f.GridRows
	}
	if f.GridCols != nil {
		clauses = append(clauses, "grid_cols = @grid_cols")
		args["grid_cols"] = *f.GridCols
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) ListComputations(
	ctx context.Context, filter ComputationFilter, limit int,
) ([]Computation, error) {
	query := "SELECT * FROM computation"
	where, args := filter.WhereClause()
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY computed_at DESC LIMIT @limit"
	args["limit"] = limit

	rows, _ := q.db.Query(ctx, query, args)
	return pgx.CollectRows(rows, pgx.RowToStructByName[Computation])
}
