package service

import (
	"context"

	"github.com/Joaolrm/quantodeu/internal/reports"
	"github.com/Joaolrm/quantodeu/internal/storage"
)

// ReportService produces the three read-only projections of an event. Every
// call reloads the graph and reruns the allocation, so reports always
// reflect the current membership and selections.
type ReportService struct {
	store storage.Store
}

// NewReportService creates a ReportService.
func NewReportService(store storage.Store) *ReportService {
	return &ReportService{store: store}
}

// ShoppingStatistics returns the per-item headcount and gender breakdown.
func (s *ReportService) ShoppingStatistics(ctx context.Context, eventID int64) (*reports.EventShoppingStatistics, error) {
	g, err := s.store.GetEventGraph(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return reports.BuildShoppingStatistics(g, buildAllocation(g)), nil
}

// CompleteReport returns the item and participant cost breakdown.
func (s *ReportService) CompleteReport(ctx context.Context, eventID int64) (*reports.EventCompleteReport, error) {
	g, err := s.store.GetEventGraph(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return reports.BuildCompleteReport(g, buildAllocation(g)), nil
}

// SpreadsheetReport returns the matrix-shaped export of shares per person
// and item.
func (s *ReportService) SpreadsheetReport(ctx context.Context, eventID int64) (*reports.EventSpreadsheetReport, error) {
	g, err := s.store.GetEventGraph(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return reports.BuildSpreadsheetReport(g, buildAllocation(g)), nil
}
