package allocator

import (
	"math"
	"testing"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name         string
		items        []Item
		members      []int64
		validateFunc func(t *testing.T, alloc *Allocation)
	}{
		{
			name: "required item split across both members",
			items: []Item{
				{ID: 1, Name: "Carne", IsRequired: true, TotalCost: 100},
			},
			members: []int64{1, 2},
			validateFunc: func(t *testing.T, alloc *Allocation) {
				if math.Abs(alloc.Items[0].CostPerPerson-50) > 0.01 {
					t.Errorf("Carne costPerPerson = %v, want 50", alloc.Items[0].CostPerPerson)
				}
				for _, id := range []int64{1, 2} {
					if math.Abs(alloc.People[id].Total-50) > 0.01 {
						t.Errorf("person %d total = %v, want 50", id, alloc.People[id].Total)
					}
				}
			},
		},
		{
			name: "optional item selected by one member",
			items: []Item{
				{ID: 1, Name: "Carne", IsRequired: true, TotalCost: 100},
				{ID: 2, Name: "Suco", TotalCost: 20, ChosenBy: []int64{1}},
			},
			members: []int64{1, 2},
			validateFunc: func(t *testing.T, alloc *Allocation) {
				// A owes 50 + 20 = 70, B owes 50
				if math.Abs(alloc.People[1].Total-70) > 0.01 {
					t.Errorf("person 1 total = %v, want 70", alloc.People[1].Total)
				}
				if math.Abs(alloc.People[2].Total-50) > 0.01 {
					t.Errorf("person 2 total = %v, want 50", alloc.People[2].Total)
				}
				if math.Abs(alloc.TotalEventCost-120) > 0.01 {
					t.Errorf("totalEventCost = %v, want 120", alloc.TotalEventCost)
				}
			},
		},
		{
			name: "optional item selected by both members",
			items: []Item{
				{ID: 1, Name: "Carne", IsRequired: true, TotalCost: 100},
				{ID: 2, Name: "Suco", TotalCost: 20, ChosenBy: []int64{1, 2}},
			},
			members: []int64{1, 2},
			validateFunc: func(t *testing.T, alloc *Allocation) {
				// each owes 50 + 10 = 60
				for _, id := range []int64{1, 2} {
					if math.Abs(alloc.People[id].Total-60) > 0.01 {
						t.Errorf("person %d total = %v, want 60", id, alloc.People[id].Total)
					}
				}
			},
		},
		{
			name: "unclaimed optional item contributes zero per person",
			items: []Item{
				{ID: 1, Name: "Gelo", TotalCost: 15},
			},
			members: []int64{1, 2},
			validateFunc: func(t *testing.T, alloc *Allocation) {
				if alloc.Items[0].CostPerPerson != 0 {
					t.Errorf("costPerPerson = %v, want 0", alloc.Items[0].CostPerPerson)
				}
				if len(alloc.Items[0].Responsible) != 0 {
					t.Errorf("responsible = %v, want empty", alloc.Items[0].Responsible)
				}
				// nominal total still includes the unclaimed item
				if math.Abs(alloc.TotalEventCost-15) > 0.01 {
					t.Errorf("totalEventCost = %v, want 15", alloc.TotalEventCost)
				}
				for _, id := range []int64{1, 2} {
					if alloc.People[id].Total != 0 {
						t.Errorf("person %d total = %v, want 0", id, alloc.People[id].Total)
					}
				}
			},
		},
		{
			name:    "empty event yields valid empty allocation",
			items:   nil,
			members: nil,
			validateFunc: func(t *testing.T, alloc *Allocation) {
				if len(alloc.Items) != 0 || len(alloc.People) != 0 {
					t.Errorf("expected empty allocation, got %+v", alloc)
				}
				if alloc.TotalEventCost != 0 {
					t.Errorf("totalEventCost = %v, want 0", alloc.TotalEventCost)
				}
			},
		},
		{
			name: "stale selection is excluded and reported",
			items: []Item{
				{ID: 1, Name: "Suco", TotalCost: 20, ChosenBy: []int64{1, 99}},
			},
			members: []int64{1, 2},
			validateFunc: func(t *testing.T, alloc *Allocation) {
				if math.Abs(alloc.Items[0].CostPerPerson-20) > 0.01 {
					t.Errorf("costPerPerson = %v, want 20 (orphan must not count)", alloc.Items[0].CostPerPerson)
				}
				if len(alloc.Orphans) != 1 || alloc.Orphans[0] != 99 {
					t.Errorf("orphans = %v, want [99]", alloc.Orphans)
				}
			},
		},
		{
			name: "duplicate selections count once",
			items: []Item{
				{ID: 1, Name: "Suco", TotalCost: 20, ChosenBy: []int64{1, 1}},
			},
			members: []int64{1, 2},
			validateFunc: func(t *testing.T, alloc *Allocation) {
				if len(alloc.Items[0].Responsible) != 1 {
					t.Errorf("responsible = %v, want single entry", alloc.Items[0].Responsible)
				}
				if math.Abs(alloc.People[1].Total-20) > 0.01 {
					t.Errorf("person 1 total = %v, want 20", alloc.People[1].Total)
				}
			},
		},
		{
			name: "member with no selections owes nothing but appears",
			items: []Item{
				{ID: 1, Name: "Suco", TotalCost: 20, ChosenBy: []int64{1}},
			},
			members: []int64{1, 2, 3},
			validateFunc: func(t *testing.T, alloc *Allocation) {
				p, ok := alloc.People[3]
				if !ok {
					t.Fatal("person 3 missing from allocation")
				}
				if p.Total != 0 || len(p.Items) != 0 {
					t.Errorf("person 3 = %+v, want zero allocation", p)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := Allocate(tt.items, tt.members)
			tt.validateFunc(t, alloc)
		})
	}
}

// Adding a member then removing them from an optional item must return every
// other responsible person's share to its pre-toggle value.
func TestAllocate_ToggleIdempotence(t *testing.T) {
	members := []int64{1, 2, 3}
	before := Allocate([]Item{{ID: 1, Name: "Suco", TotalCost: 30, ChosenBy: []int64{1, 2}}}, members)
	during := Allocate([]Item{{ID: 1, Name: "Suco", TotalCost: 30, ChosenBy: []int64{1, 2, 3}}}, members)
	after := Allocate([]Item{{ID: 1, Name: "Suco", TotalCost: 30, ChosenBy: []int64{1, 2}}}, members)

	if math.Abs(during.Items[0].CostPerPerson-10) > 0.01 {
		t.Errorf("during toggle costPerPerson = %v, want 10", during.Items[0].CostPerPerson)
	}
	for _, id := range []int64{1, 2} {
		if math.Abs(before.People[id].Total-after.People[id].Total) > 1e-9 {
			t.Errorf("person %d total changed: before %v, after %v", id, before.People[id].Total, after.People[id].Total)
		}
	}
}

// Every member joining after item creation must be retroactively included in
// required item denominators.
func TestAllocate_RequiredTracksMembership(t *testing.T) {
	items := []Item{{ID: 1, Name: "Carne", IsRequired: true, TotalCost: 90}}

	two := Allocate(items, []int64{1, 2})
	if math.Abs(two.Items[0].CostPerPerson-45) > 0.01 {
		t.Errorf("two members: costPerPerson = %v, want 45", two.Items[0].CostPerPerson)
	}

	three := Allocate(items, []int64{1, 2, 3})
	if math.Abs(three.Items[0].CostPerPerson-30) > 0.01 {
		t.Errorf("three members: costPerPerson = %v, want 30", three.Items[0].CostPerPerson)
	}
	if len(three.Items[0].Responsible) != 3 {
		t.Errorf("responsible = %v, want all three members", three.Items[0].Responsible)
	}
}
