package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/2beens/gyminsights/internal/gymstats/blocks"
	"github.com/2beens/gyminsights/internal/gymstats/entries"
)

// snapshot is an offline export of one owner's entries and blocks.
// It serves as the entries repo of the insights service; snapshotBlocks
// serves its blocks.
type snapshot struct {
	Entries []entries.Entry `json:"entries"`
	Blocks  []blocks.Block  `json:"blocks"`

	path  string
	dirty bool
}

func loadSnapshot(path string) (*snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	s := &snapshot{path: path}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}

	// renames are matched by id
	for i := range s.Entries {
		if s.Entries[i].ID == "" {
			s.Entries[i].ID = fmt.Sprintf("local-%d", i+1)
		}
	}

	return s, nil
}

// save writes the snapshot back only if a rename changed it.
func (s *snapshot) save() error {
	if !s.dirty {
		return nil
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	s.dirty = false
	return nil
}

// ListByOwner returns every entry; an export holds a single owner.
func (s *snapshot) ListByOwner(_ context.Context, _ string) ([]entries.Entry, error) {
	all := make([]entries.Entry, len(s.Entries))
	copy(all, s.Entries)
	return all, nil
}

func (s *snapshot) ApplyRename(_ context.Context, _ string, plan []entries.Entry) (int, error) {
	id2entry := make(map[string]entries.Entry, len(plan))
	for _, e := range plan {
		id2entry[e.ID] = e
	}

	renamed := 0
	for i, e := range s.Entries {
		updated, ok := id2entry[e.ID]
		if !ok {
			continue
		}
		s.Entries[i] = updated
		renamed++
	}
	if renamed > 0 {
		s.dirty = true
	}

	return renamed, nil
}

// snapshotBlocks serves the blocks of a snapshot. It is separate from the
// snapshot itself, which already lists entries by owner.
type snapshotBlocks struct {
	s *snapshot
}

func (b snapshotBlocks) Get(_ context.Context, _ string, id string) (*blocks.Block, error) {
	for _, block := range b.s.Blocks {
		if block.ID == id {
			found := block
			return &found, nil
		}
	}
	return nil, blocks.ErrBlockNotFound
}

// ListByOwner returns the blocks latest start first, as the store does.
func (b snapshotBlocks) ListByOwner(_ context.Context, _ string) ([]blocks.Block, error) {
	list := make([]blocks.Block, len(b.s.Blocks))
	copy(list, b.s.Blocks)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].StartDate.After(list[j].StartDate)
	})
	return list, nil
}
