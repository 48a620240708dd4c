// Package policy orchestrates the pipeline: loaders → builders → enrichment
// → aggregations, composed into one immutable snapshot per set of input
// files. A content-derived fingerprint of the four sources decides when the
// cached snapshot is stale; there is no time-based expiry, since serving an
// old spreadsheet silently would be a correctness bug.
package policy

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/dao"
	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/entity"
	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/service"
	"github.com/RichDInfGrp/FimiliarVis/internal/render"
)

// Orchestrator builds and caches pipeline snapshots. Safe for concurrent
// callers: a rebuild is serialized, and readers get either a complete
// snapshot or an error, never a partially built one.
type Orchestrator struct {
	loader           *dao.Loader
	serviceStartDate string
	log              *slog.Logger

	mu          sync.Mutex
	fingerprint string
	snapshot    *entity.Snapshot
	documents   *render.Set
}

// New creates an orchestrator over the given loader.
func New(loader *dao.Loader, serviceStartDate string, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		loader:           loader,
		serviceStartDate: serviceStartDate,
		log:              log,
	}
}

// Snapshot returns the current snapshot, rebuilding the pipeline if the
// source files changed since the last build. Structural errors (missing
// file, missing column) propagate to the caller untouched.
func (o *Orchestrator) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.refreshLocked(ctx); err != nil {
		return nil, err
	}
	return o.snapshot, nil
}

// Documents returns the rendered JSON documents of the current snapshot,
// cached under the same fingerprint as the snapshot itself.
func (o *Orchestrator) Documents(ctx context.Context) (*render.Set, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.refreshLocked(ctx); err != nil {
		return nil, err
	}
	return o.documents, nil
}

// refreshLocked revalidates the cache and rebuilds when stale. Caller holds mu.
func (o *Orchestrator) refreshLocked(ctx context.Context) error {
	fp, err := o.sourceFingerprint()
	if err != nil {
		return err
	}
	if o.snapshot != nil && fp == o.fingerprint {
		return nil
	}

	snap, err := o.build(ctx)
	if err != nil {
		return err
	}
	docs, err := render.Build(snap, o.serviceStartDate)
	if err != nil {
		return err
	}

	o.fingerprint = fp
	o.snapshot = snap
	o.documents = docs
	return nil
}

// sourceFingerprint identifies the input set: path, size, and modification
// time of each matched source file.
func (o *Orchestrator) sourceFingerprint() (string, error) {
	paths, err := o.loader.SourceFiles()
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("fingerprinting %s: %w", path, err)
		}
		parts = append(parts, fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano()))
	}
	return strings.Join(parts, ";"), nil
}

// build runs the full pipeline in strict dependency order.
func (o *Orchestrator) build(ctx context.Context) (*entity.Snapshot, error) {
	start := time.Now()

	contacts, err := o.loader.Contacts()
	if err != nil {
		return nil, err
	}
	engagements, err := o.loader.Engagements()
	if err != nil {
		return nil, err
	}
	posts, err := o.loader.Posts()
	if err != nil {
		return nil, err
	}
	worksheet, err := o.loader.Worksheet()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	enriched := service.Enrich(engagements, contacts)

	snap := &entity.Snapshot{
		RunID:   uuid.New().String(),
		BuiltAt: time.Now().UTC(),

		Contacts:    contacts,
		Engagements: engagements,
		Posts:       posts,
		Worksheet:   worksheet,

		Enriched:          enriched,
		EngagerSummary:    service.BuildEngagerSummary(enriched),
		WeeklyPosts:       service.BuildWeeklyPosts(posts),
		WeeklyICP:         service.BuildWeeklyICP(enriched),
		ICPFirstSeen:      service.BuildICPFirstSeen(enriched),
		ReactionBreakdown: service.BuildReactionBreakdown(enriched),
		WeeklyShare:       service.BuildWeeklyShare(enriched),
	}

	o.log.Info("pipeline snapshot built",
		"run_id", snap.RunID,
		"contacts", len(contacts),
		"engagements", len(engagements),
		"posts", len(posts),
		"duration", time.Since(start).String(),
	)
	return snap, nil
}
