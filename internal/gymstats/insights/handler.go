package insights

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/gyminsights/internal/gymstats/blocks"
	"github.com/2beens/gyminsights/internal/gymstats/entries"
	"github.com/2beens/gyminsights/internal/telemetry/tracing"
	"github.com/2beens/gyminsights/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// OwnerHeader carries the id of the owner whose data is read. Requests reach this
// service already authenticated.
const OwnerHeader = "X-Owner-Id"

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=insights_test

type insightsService interface {
	Progress(ctx context.Context, ownerID string) ([]ProgressItem, error)
	MuscleLoad(ctx context.Context, ownerID, blockID string, now time.Time) (*MuscleLoad, error)
	BlockStatus(ctx context.Context, ownerID, blockID string, now time.Time) (*BlockStatus, error)
	BlockStatuses(ctx context.Context, ownerID string, now time.Time) ([]BlockStatus, error)
	Rename(ctx context.Context, ownerID, oldName, newName string) (int, error)
	ParseValue(kind entries.ScalarKind, input string) (*ParsedValue, error)
}

type RenameRequest struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

type RenameResponse struct {
	Renamed int    `json:"renamed"`
	Error   string `json:"error,omitempty"`
}

type ParseValueRequest struct {
	Kind  string `json:"kind"`
	Input string `json:"input"`
}

type ProgressResponse struct {
	Movements []ProgressItem `json:"movements"`
}

type BlockStatusesResponse struct {
	Blocks []BlockStatus `json:"blocks"`
}

type Handler struct {
	service insightsService
	now     func() time.Time
}

func NewHandler(service insightsService) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/gymstats/insights/progress", handler.HandleProgress).Methods("GET", "OPTIONS").Name("insights-progress")
	r.HandleFunc("/gymstats/insights/muscle-load", handler.HandleMuscleLoad).Methods("GET", "OPTIONS").Name("insights-muscle-load")
	r.HandleFunc("/gymstats/insights/blocks", handler.HandleBlockStatuses).Methods("GET", "OPTIONS").Name("insights-block-statuses")
	r.HandleFunc("/gymstats/insights/blocks/{id}/status", handler.HandleBlockStatus).Methods("GET", "OPTIONS").Name("insights-block-status")
	r.HandleFunc("/gymstats/insights/rename", handler.HandleRename).Methods("POST", "OPTIONS").Name("insights-rename")
	r.HandleFunc("/gymstats/insights/parse-value", handler.HandleParseValue).Methods("POST", "OPTIONS").Name("insights-parse-value")
}

func ownerFrom(r *http.Request) (string, bool) {
	owner := strings.TrimSpace(r.Header.Get(OwnerHeader))
	return owner, owner != ""
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.insights.progress")
	defer span.End()

	owner, ok := ownerFrom(r)
	if !ok {
		http.Error(w, "error, owner missing", http.StatusBadRequest)
		return
	}

	items, err := handler.service.Progress(ctx, owner)
	if err != nil {
		log.Errorf("insights progress [%s]: %s", owner, err)
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, ProgressResponse{Movements: items}, http.StatusOK)
}

func (handler *Handler) HandleMuscleLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.insights.muscle-load")
	defer span.End()

	owner, ok := ownerFrom(r)
	if !ok {
		http.Error(w, "error, owner missing", http.StatusBadRequest)
		return
	}
	blockID := r.URL.Query().Get("block")

	load, err := handler.service.MuscleLoad(ctx, owner, blockID, handler.now())
	if err != nil {
		if errors.Is(err, blocks.ErrBlockNotFound) {
			http.Error(w, "block not found", http.StatusNotFound)
			return
		}
		log.Errorf("insights muscle load [%s], block [%s]: %s", owner, blockID, err)
		http.Error(w, "failed to get muscle load", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, load, http.StatusOK)
}

func (handler *Handler) HandleBlockStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.insights.block-status")
	defer span.End()

	owner, ok := ownerFrom(r)
	if !ok {
		http.Error(w, "error, owner missing", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	blockID := vars["id"]
	if blockID == "" {
		http.Error(w, "error, block id empty", http.StatusBadRequest)
		return
	}

	status, err := handler.service.BlockStatus(ctx, owner, blockID, handler.now())
	if err != nil {
		if errors.Is(err, blocks.ErrBlockNotFound) {
			http.Error(w, "block not found", http.StatusNotFound)
			return
		}
		log.Errorf("insights block status [%s], block [%s]: %s", owner, blockID, err)
		http.Error(w, "failed to get block status", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, status, http.StatusOK)
}

func (handler *Handler) HandleBlockStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.insights.block-statuses")
	defer span.End()

	owner, ok := ownerFrom(r)
	if !ok {
		http.Error(w, "error, owner missing", http.StatusBadRequest)
		return
	}

	statuses, err := handler.service.BlockStatuses(ctx, owner, handler.now())
	if err != nil {
		log.Errorf("insights block statuses [%s]: %s", owner, err)
		http.Error(w, "failed to get block statuses", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, BlockStatusesResponse{Blocks: statuses}, http.StatusOK)
}

func (handler *Handler) HandleRename(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.insights.rename")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	owner, ok := ownerFrom(r)
	if !ok {
		http.Error(w, "error, owner missing", http.StatusBadRequest)
		return
	}

	var req RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("insights rename, unmarshal json params: %s", err)
		http.Error(w, "rename failed", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.OldName) == "" {
		http.Error(w, "error, old name empty", http.StatusBadRequest)
		return
	}

	renamed, err := handler.service.Rename(ctx, owner, req.OldName, req.NewName)
	if err != nil {
		log.Errorf("insights rename [%s] %q -> %q, renamed %d: %s", owner, req.OldName, req.NewName, renamed, err)
		pkg.WriteJSON(w, RenameResponse{
			Renamed: renamed,
			Error:   "rename failed",
		}, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, RenameResponse{Renamed: renamed}, http.StatusOK)
}

func (handler *Handler) HandleParseValue(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.insights.parse-value")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req ParseValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("insights parse value, unmarshal json params: %s", err)
		http.Error(w, "parse value failed", http.StatusBadRequest)
		return
	}

	kind, err := entries.ParseScalarKind(req.Kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	parsed, err := handler.service.ParseValue(kind, req.Input)
	if err != nil {
		if errors.Is(err, entries.ErrParse) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("insights parse value %q: %s", req.Input, err)
		http.Error(w, "parse value failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, parsed, http.StatusOK)
}
