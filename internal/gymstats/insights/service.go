// Package insights serves progress summaries, muscle load distributions, block
// status and movement renames over the entries and blocks of one owner.
package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gyminsights/internal/gymstats/blocks"
	"github.com/2beens/gyminsights/internal/gymstats/entries"
	"github.com/2beens/gyminsights/internal/gymstats/muscleload"
	"github.com/2beens/gyminsights/internal/gymstats/progress"
	"github.com/2beens/gyminsights/internal/telemetry/metrics"
	"github.com/2beens/gyminsights/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=insights_test

type entriesRepo interface {
	ListByOwner(ctx context.Context, ownerID string) ([]entries.Entry, error)
	ApplyRename(ctx context.Context, ownerID string, plan []entries.Entry) (int, error)
}

type blocksRepo interface {
	Get(ctx context.Context, ownerID, id string) (*blocks.Block, error)
	ListByOwner(ctx context.Context, ownerID string) ([]blocks.Block, error)
}

type ProgressItem struct {
	progress.Summary
	DateRange string `json:"dateRange"`
}

type MuscleBar struct {
	muscleload.Bar
	Label string `json:"label"`
}

type MuscleLoad struct {
	BlockID          string      `json:"blockId,omitempty"`
	Bars             []MuscleBar `json:"bars"`
	UnknownMovements []string    `json:"unknownMovements,omitempty"`
}

type BlockStatus struct {
	Block    blocks.Block    `json:"block"`
	Progress blocks.Progress `json:"progress"`
}

type ParsedValue struct {
	Kind  entries.ScalarKind `json:"kind"`
	Value float64            `json:"value"`
	Text  string             `json:"text"`
}

type Service struct {
	entriesRepo    entriesRepo
	blocksRepo     blocksRepo
	policy         progress.Policy
	catalog        *muscleload.Catalog
	metricsManager *metrics.Manager
}

type NewServiceParams struct {
	EntriesRepo    entriesRepo
	BlocksRepo     blocksRepo
	Policy         progress.Policy
	Catalog        *muscleload.Catalog
	MetricsManager *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	catalog := params.Catalog
	if catalog == nil {
		catalog = muscleload.DefaultCatalog()
	}
	metricsManager := params.MetricsManager
	if metricsManager == nil {
		metricsManager = metrics.NewTestManager()
	}

	return &Service{
		entriesRepo:    params.EntriesRepo,
		blocksRepo:     params.BlocksRepo,
		policy:         params.Policy,
		catalog:        catalog,
		metricsManager: metricsManager,
	}
}

func (s *Service) Progress(ctx context.Context, ownerID string) (_ []ProgressItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.insights.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := s.entriesRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	summaries := progress.SummarizeAll(all, s.policy)
	items := make([]ProgressItem, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, ProgressItem{
			Summary:   summary,
			DateRange: progress.DateRangeText(summary),
		})
	}

	s.metricsManager.CounterInsightsComputations.WithLabelValues("progress").Inc()
	span.SetAttributes(attribute.Int("summaries.count", len(items)))

	return items, nil
}

// MuscleLoad computes the muscle distribution of all history, or of a single block
// when blockID is set. Dates are checked against the block as of now.
func (s *Service) MuscleLoad(ctx context.Context, ownerID, blockID string, now time.Time) (_ *MuscleLoad, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.insights.muscle-load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("block_id", blockID))

	all, err := s.entriesRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	if blockID != "" {
		block, err := s.blocksRepo.Get(ctx, ownerID, blockID)
		if err != nil {
			return nil, fmt.Errorf("get block %s: %w", blockID, err)
		}
		all = inBlock(all, *block, now)
	}

	performed, unknown := s.catalog.Performed(all)
	if len(unknown) > 0 {
		log.Debugf("muscle load [%s]: %d movements not in catalog: %v", ownerID, len(unknown), unknown)
	}

	result := &MuscleLoad{
		BlockID:          blockID,
		Bars:             []MuscleBar{},
		UnknownMovements: unknown,
	}
	for _, bar := range muscleload.Aggregate(muscleload.ComputeShares(performed)) {
		result.Bars = append(result.Bars, MuscleBar{
			Bar:   bar,
			Label: bar.Label(),
		})
	}

	s.metricsManager.CounterInsightsComputations.WithLabelValues("muscle_load").Inc()

	return result, nil
}

func inBlock(all []entries.Entry, block blocks.Block, today time.Time) []entries.Entry {
	var scoped []entries.Entry
	for _, e := range all {
		if block.Contains(e.Date, today) {
			scoped = append(scoped, e)
		}
	}
	return scoped
}

func (s *Service) BlockStatus(ctx context.Context, ownerID, blockID string, now time.Time) (_ *BlockStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.insights.block-status")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("block_id", blockID))

	block, err := s.blocksRepo.Get(ctx, ownerID, blockID)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", blockID, err)
	}

	s.metricsManager.CounterInsightsComputations.WithLabelValues("block_status").Inc()

	return &BlockStatus{
		Block:    *block,
		Progress: block.Lifecycle(now),
	}, nil
}

// BlockStatuses returns the status of every block of the owner, in repo order.
func (s *Service) BlockStatuses(ctx context.Context, ownerID string, now time.Time) (_ []BlockStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.insights.block-statuses")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	list, err := s.blocksRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}

	statuses := make([]BlockStatus, 0, len(list))
	for _, block := range list {
		statuses = append(statuses, BlockStatus{
			Block:    block,
			Progress: block.Lifecycle(now),
		})
	}

	s.metricsManager.CounterInsightsComputations.WithLabelValues("block_statuses").Inc()
	span.SetAttributes(attribute.Int("blocks.count", len(statuses)))

	return statuses, nil
}

// Rename propagates a movement rename to every entry of the owner that carries the
// old name. The snapshot is read right before the writes; entries added in between
// keep the old name. Failed writes do not stop the rest and are returned combined
// with the number of entries renamed.
func (s *Service) Rename(ctx context.Context, ownerID, oldName, newName string) (renamed int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymstats.insights.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := s.entriesRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("list entries: %w", err)
	}

	plan := entries.PlanRename(oldName, newName, all)
	span.SetAttributes(attribute.Int("plan.size", len(plan)))
	if len(plan) == 0 {
		return 0, nil
	}

	renamed, err = s.entriesRepo.ApplyRename(ctx, ownerID, plan)
	s.metricsManager.CounterRenamedEntries.Add(float64(renamed))
	if err != nil {
		return renamed, fmt.Errorf("apply rename: %w", err)
	}

	log.Debugf("rename [%s]: %q -> %q, %d entries", ownerID, oldName, newName, renamed)
	return renamed, nil
}

// ParseValue validates a user-entered value of the given kind. Rejected inputs are
// counted and returned as *entries.ParseError.
func (s *Service) ParseValue(kind entries.ScalarKind, input string) (*ParsedValue, error) {
	value, err := entries.ParseValue(kind, input)
	if err != nil {
		var parseErr *entries.ParseError
		if errors.As(err, &parseErr) {
			s.metricsManager.CounterParseFailures.WithLabelValues(string(kind)).Inc()
		}
		return nil, err
	}

	scalar := entries.Scalar{Kind: kind, Value: value}
	return &ParsedValue{
		Kind:  kind,
		Value: value,
		Text:  entries.Format(entries.Entry{Metrics: entries.Metrics{Scalar: &scalar}}),
	}, nil
}
