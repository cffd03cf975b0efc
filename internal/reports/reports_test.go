package reports

import (
	"math"
	"testing"

	"github.com/Joaolrm/quantodeu/internal/allocator"
	"github.com/Joaolrm/quantodeu/internal/models"
)

func churrasGraph() *models.EventGraph {
	return &models.EventGraph{
		Event: models.Event{
			ID:         1,
			Name:       "Churras",
			Date:       "2025-12-20",
			Address:    "Rua das Laranjeiras, 42",
			HashInvite: "abc123",
			OwnerID:    1,
		},
		Items: []models.ItemWithChosenBy{
			{Item: models.Item{ID: 10, EventID: 1, Name: "Carne", IsRequired: true, TotalCost: 100}},
			{Item: models.Item{ID: 11, EventID: 1, Name: "Suco", TotalCost: 20}, ChosenBy: []int64{1}},
		},
		Members: []models.People{
			{ID: 1, Name: "Ana", PhoneNumber: "51-991984252", Gender: models.GenderFemale},
			{ID: 2, Name: "Bruno", PhoneNumber: "51-998877665", Gender: models.GenderMale},
		},
	}
}

func allocate(g *models.EventGraph) *allocator.Allocation {
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
	return allocator.Allocate(items, memberIDs)
}

func TestBuildShoppingStatistics(t *testing.T) {
	g := churrasGraph()
	stats := BuildShoppingStatistics(g, allocate(g))

	if stats.TotalParticipants != 2 {
		t.Errorf("totalParticipants = %d, want 2", stats.TotalParticipants)
	}
	if len(stats.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(stats.Items))
	}

	carne := stats.Items[0]
	if carne.TotalChosenBy != 2 || carne.MaleCount != 1 || carne.FemaleCount != 1 || carne.UnspecifiedCount != 0 {
		t.Errorf("Carne breakdown = %+v, want 2 chosen (1 male, 1 female)", carne)
	}

	suco := stats.Items[1]
	if suco.TotalChosenBy != 1 || suco.FemaleCount != 1 || suco.MaleCount != 0 {
		t.Errorf("Suco breakdown = %+v, want 1 chosen (female)", suco)
	}
}

func TestBuildCompleteReport(t *testing.T) {
	g := churrasGraph()
	report := BuildCompleteReport(g, allocate(g))

	if math.Abs(report.TotalEventCost-120) > 0.01 {
		t.Errorf("totalEventCost = %v, want 120", report.TotalEventCost)
	}
	if report.TotalParticipants != 2 {
		t.Errorf("totalParticipants = %d, want 2", report.TotalParticipants)
	}

	// every participant's totalCost must equal the sum of their item shares
	for _, p := range report.Participants {
		var sum float64
		for _, item := range p.ItemsResponsible {
			sum += item.IndividualCost
		}
		if math.Abs(sum-p.TotalCost) > 0.01 {
			t.Errorf("%s: sum of individualCost = %v, totalCost = %v", p.Name, sum, p.TotalCost)
		}
		if p.TotalItems != len(p.ItemsResponsible) {
			t.Errorf("%s: totalItems = %d, want %d", p.Name, p.TotalItems, len(p.ItemsResponsible))
		}
	}

	ana := report.Participants[0]
	if !ana.IsAdmin || math.Abs(ana.TotalCost-70) > 0.01 {
		t.Errorf("Ana = %+v, want admin owing 70", ana)
	}
	bruno := report.Participants[1]
	if bruno.IsAdmin || math.Abs(bruno.TotalCost-50) > 0.01 {
		t.Errorf("Bruno = %+v, want non-admin owing 50", bruno)
	}

	// per-item individualCost equals the item's costPerPerson
	for _, item := range report.Items {
		for _, p := range report.Participants {
			for _, detail := range p.ItemsResponsible {
				if detail.ItemID == item.ItemID && math.Abs(detail.IndividualCost-item.CostPerPerson) > 0.01 {
					t.Errorf("%s/%s: individualCost %v != costPerPerson %v", p.Name, item.ItemName, detail.IndividualCost, item.CostPerPerson)
				}
			}
		}
	}
}

func TestBuildSpreadsheetReport(t *testing.T) {
	g := churrasGraph()
	report := BuildSpreadsheetReport(g, allocate(g))

	var itemSum, participantSum float64
	for _, v := range report.Totals.ItemTotals {
		itemSum += v
	}
	for _, v := range report.Totals.ParticipantTotals {
		participantSum += v
	}

	// every item is claimed, so allocated == nominal
	if math.Abs(itemSum-participantSum) > 0.01 {
		t.Errorf("itemTotals sum %v != participantTotals sum %v", itemSum, participantSum)
	}
	if math.Abs(itemSum-report.TotalEventCost) > 0.01 {
		t.Errorf("itemTotals sum %v != totalEventCost %v", itemSum, report.TotalEventCost)
	}

	ana := report.Participants[0]
	if math.Abs(ana.ItemCosts["Carne"]-50) > 0.01 || math.Abs(ana.ItemCosts["Suco"]-20) > 0.01 {
		t.Errorf("Ana itemCosts = %v, want Carne 50 and Suco 20", ana.ItemCosts)
	}
	bruno := report.Participants[1]
	if _, ok := bruno.ItemCosts["Suco"]; ok {
		t.Errorf("Bruno itemCosts = %v, must not include Suco", bruno.ItemCosts)
	}
}

func TestBuildSpreadsheetReport_UnclaimedOptional(t *testing.T) {
	g := churrasGraph()
	g.Items = append(g.Items, models.ItemWithChosenBy{
		Item: models.Item{ID: 12, EventID: 1, Name: "Gelo", TotalCost: 15},
	})
	report := BuildSpreadsheetReport(g, allocate(g))

	var itemSum, participantSum float64
	for _, v := range report.Totals.ItemTotals {
		itemSum += v
	}
	for _, v := range report.Totals.ParticipantTotals {
		participantSum += v
	}

	// nominal exceeds allocated by exactly the unclaimed item's cost
	if math.Abs((itemSum-participantSum)-15) > 0.01 {
		t.Errorf("nominal %v - allocated %v = %v, want 15", itemSum, participantSum, itemSum-participantSum)
	}
	if math.Abs(report.TotalEventCost-135) > 0.01 {
		t.Errorf("totalEventCost = %v, want 135", report.TotalEventCost)
	}
}

func TestBuildReports_EmptyEvent(t *testing.T) {
	g := &models.EventGraph{Event: models.Event{ID: 7, Name: "Vazio"}}
	alloc := allocate(g)

	stats := BuildShoppingStatistics(g, alloc)
	if stats.TotalParticipants != 0 || len(stats.Items) != 0 {
		t.Errorf("shopping statistics = %+v, want empty", stats)
	}

	complete := BuildCompleteReport(g, alloc)
	if complete.TotalEventCost != 0 || len(complete.Items) != 0 || len(complete.Participants) != 0 {
		t.Errorf("complete report = %+v, want empty", complete)
	}

	sheet := BuildSpreadsheetReport(g, alloc)
	if len(sheet.Totals.ItemTotals) != 0 || len(sheet.Totals.ParticipantTotals) != 0 {
		t.Errorf("spreadsheet totals = %+v, want empty", sheet.Totals)
	}
}

func TestRound2(t *testing.T) {
	g := &models.EventGraph{
		Event: models.Event{ID: 1, Name: "Terços", OwnerID: 1},
		Items: []models.ItemWithChosenBy{
			{Item: models.Item{ID: 1, EventID: 1, Name: "Picanha", IsRequired: true, TotalCost: 100}},
		},
		Members: []models.People{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}},
	}
	report := BuildCompleteReport(g, allocate(g))

	// 100/3 rounds to 33.33 at the edge
	if report.Items[0].CostPerPerson != 33.33 {
		t.Errorf("costPerPerson = %v, want 33.33", report.Items[0].CostPerPerson)
	}
}
