// Package allocator computes per-item and per-person cost shares for an
// event. It is a pure package: inputs are plain values, there is no storage
// or transport dependency, and allocations are recomputed on every read
// instead of being cached.
package allocator

import "sort"

// Item is a single event item with its explicit selection set.
// ChosenBy is only meaningful for optional items; required items are split
// across every member regardless of it.
type Item struct {
	ID         int64
	Name       string
	IsRequired bool
	TotalCost  float64
	ChosenBy   []int64
}

// ItemAllocation is the computed split for one item.
type ItemAllocation struct {
	ItemID        int64
	Name          string
	IsRequired    bool
	TotalCost     float64
	Responsible   []int64 // sorted member ids splitting this item
	CostPerPerson float64 // TotalCost / len(Responsible), 0 when nobody is responsible
}

// PersonItem is one person's share of one item.
type PersonItem struct {
	ItemID int64
	Name   string
	Share  float64
}

// PersonAllocation is everything one member owes.
type PersonAllocation struct {
	PeopleID int64
	Items    []PersonItem
	Total    float64
}

// Allocation is the complete computed split for an event.
//
// TotalEventCost is the nominal total spend (sum of every item's TotalCost)
// and is independent of allocation: an optional item nobody selected still
// contributes its full cost here while contributing 0 to every person.
type Allocation struct {
	Items          []ItemAllocation
	People         map[int64]*PersonAllocation
	TotalEventCost float64

	// Orphans lists people ids referenced by a selection but absent from
	// the member set. Such stale rows are a data-integrity fault; they are
	// excluded from every denominator and total, and reported here so the
	// caller can log them.
	Orphans []int64
}

// Allocate computes the cost split for one event.
//
// Rules:
//   - required item: responsible = all members
//   - optional item: responsible = explicit selections that are members
//   - costPerPerson = totalCost / count, or 0 when count == 0
//   - each member's total = sum of costPerPerson over items they are
//     responsible for; members with no items owe 0 but still appear
//
// Amounts keep full float64 precision; rounding is a display concern.
func Allocate(items []Item, memberIDs []int64) *Allocation {
	members := make(map[int64]bool, len(memberIDs))
	sortedMembers := make([]int64, 0, len(memberIDs))
	for _, id := range memberIDs {
		if members[id] {
			continue
		}
		members[id] = true
		sortedMembers = append(sortedMembers, id)
	}
	sort.Slice(sortedMembers, func(i, j int) bool { return sortedMembers[i] < sortedMembers[j] })

	alloc := &Allocation{
		Items:  make([]ItemAllocation, 0, len(items)),
		People: make(map[int64]*PersonAllocation, len(sortedMembers)),
	}
	for _, id := range sortedMembers {
		alloc.People[id] = &PersonAllocation{PeopleID: id}
	}

	orphans := make(map[int64]bool)
	for _, item := range items {
		alloc.TotalEventCost += item.TotalCost

		var responsible []int64
		if item.IsRequired {
			responsible = append(responsible, sortedMembers...)
		} else {
			seen := make(map[int64]bool, len(item.ChosenBy))
			for _, id := range item.ChosenBy {
				if seen[id] {
					continue
				}
				seen[id] = true
				if !members[id] {
					orphans[id] = true
					continue
				}
				responsible = append(responsible, id)
			}
			sort.Slice(responsible, func(i, j int) bool { return responsible[i] < responsible[j] })
		}

		ia := ItemAllocation{
			ItemID:      item.ID,
			Name:        item.Name,
			IsRequired:  item.IsRequired,
			TotalCost:   item.TotalCost,
			Responsible: responsible,
		}
		if len(responsible) > 0 {
			ia.CostPerPerson = item.TotalCost / float64(len(responsible))
		}

		for _, id := range responsible {
			p := alloc.People[id]
			p.Items = append(p.Items, PersonItem{
				ItemID: item.ID,
				Name:   item.Name,
				Share:  ia.CostPerPerson,
			})
			p.Total += ia.CostPerPerson
		}

		alloc.Items = append(alloc.Items, ia)
	}

	for id := range orphans {
		alloc.Orphans = append(alloc.Orphans, id)
	}
	sort.Slice(alloc.Orphans, func(i, j int) bool { return alloc.Orphans[i] < alloc.Orphans[j] })

	return alloc
}
