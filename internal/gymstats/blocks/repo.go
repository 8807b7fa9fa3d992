package blocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gyminsights/internal/db"
	"github.com/2beens/gyminsights/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

var ErrBlockNotFound = errors.New("block not found")

type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, ownerID, id string) (_ *Block, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.blocks.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	var b Block
	if err := r.db.QueryRow(
		ctx,
		`
			SELECT
				id, owner_id, name, start_date, end_date, duration_weeks, completed_date
			FROM gymstats_block
			WHERE id = $1 AND owner_id = $2;`,
		id, ownerID,
	).Scan(
		&b.ID, &b.OwnerID, &b.Name, &b.StartDate, &b.EndDate, &b.DurationWeeks, &b.CompletedDate,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlockNotFound
		}
		return nil, fmt.Errorf("get block %s: %w", id, err)
	}

	return &b, nil
}

func (r *Repo) ListByOwner(ctx context.Context, ownerID string) (_ []Block, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.blocks.list-by-owner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner_id", ownerID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, owner_id, name, start_date, end_date, duration_weeks, completed_date
			FROM gymstats_block
			WHERE owner_id = $1
			ORDER BY start_date DESC;`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []Block
	for rows.Next() {
		var b Block
		if err := rows.Scan(
			&b.ID, &b.OwnerID, &b.Name, &b.StartDate, &b.EndDate, &b.DurationWeeks, &b.CompletedDate,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		blocks = append(blocks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blocks, nil
}
