package entries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gyminsights/internal/db"
	"github.com/2beens/gyminsights/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

var ErrEntryNotFound = errors.New("entry not found")

type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

// ListByOwner returns the full history (tracked or not) of one owner.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.entries.list-by-owner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner_id", ownerID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, owner_id, date, created_at, name, COALESCE(details, ''), tracked, metrics
			FROM gymstats_entry
			WHERE owner_id = $1
			ORDER BY date, created_at;`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e           Entry
			metricsJson []byte
		)
		if err := rows.Scan(
			&e.ID, &e.OwnerID, &e.Date, &e.CreatedAt, &e.Name, &e.Details, &e.Tracked, &metricsJson,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if len(metricsJson) > 0 {
			if err := json.Unmarshal(metricsJson, &e.Metrics); err != nil {
				return nil, fmt.Errorf("unmarshal metrics of entry %s: %w", e.ID, err)
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("entries.count", len(entries)))
	return entries, nil
}

// UpdateName rewrites the name of a single entry.
func (r *Repo) UpdateName(ctx context.Context, ownerID, id, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.entries.update-name")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE gymstats_entry SET name = $1, updated_at = $2 WHERE id = $3 AND owner_id = $4;`,
		name, time.Now().UTC(), id, ownerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// ApplyRename persists a rename plan, one write per entry. A failed write does not
// stop the rest; all failures are returned combined, together with the number of
// entries actually renamed.
func (r *Repo) ApplyRename(ctx context.Context, ownerID string, plan []Entry) (renamed int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.entries.apply-rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.size", len(plan)))

	for _, e := range plan {
		if e.ID == "" {
			err = multierr.Append(err, fmt.Errorf("entry %q has no id", e.Name))
			continue
		}
		if uerr := r.UpdateName(ctx, ownerID, e.ID, e.Name); uerr != nil {
			err = multierr.Append(err, fmt.Errorf("rename entry %s: %w", e.ID, uerr))
			continue
		}
		renamed++
	}

	span.SetAttributes(attribute.Int("renamed", renamed))
	return renamed, err
}
