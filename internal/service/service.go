// Package service implements the business logic of the event cost engine on
// top of a storage.Store. Derived costs are recomputed from the persisted
// graph on every read; nothing is cached.
package service

import (
	"log/slog"

	"github.com/Joaolrm/quantodeu/internal/allocator"
	"github.com/Joaolrm/quantodeu/internal/models"
)

// buildAllocation runs the allocation engine over a freshly loaded event
// graph. Stale participation rows are a data-integrity fault: they are
// logged and excluded from every total instead of failing the read.
func buildAllocation(g *models.EventGraph) *allocator.Allocation {
	items := make([]allocator.Item, 0, len(g.Items))
	for _, it := range g.Items {
		items = append(items, allocator.Item{
			ID:         it.ID,
			Name:       it.Name,
			IsRequired: it.IsRequired,
			TotalCost:  it.TotalCost,
			ChosenBy:   it.ChosenBy,
		})
	}
	memberIDs := make([]int64, 0, len(g.Members))
	for _, m := range g.Members {
		memberIDs = append(memberIDs, m.ID)
	}

	alloc := allocator.Allocate(items, memberIDs)
	if len(alloc.Orphans) > 0 {
		slog.Warn("stale participation rows excluded from allocation",
			"event_id", g.Event.ID,
			"people_ids", alloc.Orphans,
		)
	}
	return alloc
}
