// Package reports projects an event allocation into the three read-only
// report shapes the frontend consumes: shopping statistics, the complete
// report and the spreadsheet report. Reports are built on demand from a
// freshly computed allocation and are never cached.
//
// Currency values are rounded to 2 decimals here, at the edge; the allocator
// keeps full precision so rounding errors do not compound across totals.
package reports

import (
	"math"

	"github.com/Joaolrm/quantodeu/internal/allocator"
	"github.com/Joaolrm/quantodeu/internal/models"
)

// ItemShoppingStatistics is one shopping-list row: who needs to buy what, and
// for how many people, broken down by gender.
type ItemShoppingStatistics struct {
	ItemID           int64   `json:"itemId"`
	ItemName         string  `json:"itemName"`
	IsRequired       bool    `json:"isRequired"`
	TotalCost        float64 `json:"totalCost"`
	TotalChosenBy    int     `json:"totalChosenBy"`
	MaleCount        int     `json:"maleCount"`
	FemaleCount      int     `json:"femaleCount"`
	UnspecifiedCount int     `json:"unspecifiedCount"`
}

// EventShoppingStatistics is the shopping-list projection of an event.
// Purchase status is client-side state and deliberately absent here.
type EventShoppingStatistics struct {
	EventID           int64                    `json:"eventId"`
	EventName         string                   `json:"eventName"`
	TotalParticipants int                      `json:"totalParticipants"`
	Items             []ItemShoppingStatistics `json:"items"`
}

// ItemCompleteReport is the per-item block of the complete report.
type ItemCompleteReport struct {
	ItemID         int64   `json:"itemId"`
	ItemName       string  `json:"itemName"`
	IsRequired     bool    `json:"isRequired"`
	TotalCost      float64 `json:"totalCost"`
	TotalChosenBy  int     `json:"totalChosenBy"`
	CostPerPerson  float64 `json:"costPerPerson"`
	ParticipantIDs []int64 `json:"participantIds"`
}

// ParticipantItemDetail is one item a participant is responsible for.
type ParticipantItemDetail struct {
	ItemID         int64   `json:"itemId"`
	ItemName       string  `json:"itemName"`
	IndividualCost float64 `json:"individualCost"`
}

// ParticipantSummary is the per-participant block of the complete report.
// TotalCost always equals the sum of IndividualCost over ItemsResponsible.
type ParticipantSummary struct {
	PeopleID         int64                   `json:"peopleId"`
	Name             string                  `json:"name"`
	PhoneNumber      string                  `json:"phoneNumber"`
	IsAdmin          bool                    `json:"isAdmin"`
	TotalItems       int                     `json:"totalItems"`
	TotalCost        float64                 `json:"totalCost"`
	ItemsResponsible []ParticipantItemDetail `json:"itemsResponsible"`
}

// EventCompleteReport is the full breakdown of an event.
type EventCompleteReport struct {
	EventID           int64                `json:"eventId"`
	EventName         string               `json:"eventName"`
	EventDate         string               `json:"eventDate"`
	EventAddress      string               `json:"eventAddress"`
	HashInvite        string               `json:"hashInvite"`
	TotalParticipants int                  `json:"totalParticipants"`
	TotalEventCost    float64              `json:"totalEventCost"`
	Items             []ItemCompleteReport `json:"items"`
	Participants      []ParticipantSummary `json:"participants"`
}

// SpreadsheetItem is one column of the spreadsheet report.
type SpreadsheetItem struct {
	ItemID        int64   `json:"itemId"`
	ItemName      string  `json:"itemName"`
	IsRequired    bool    `json:"isRequired"`
	TotalCost     float64 `json:"totalCost"`
	CostPerPerson float64 `json:"costPerPerson"`
}

// SpreadsheetParticipant is one row of the spreadsheet report, with the
// participant's cost for each item keyed by item name.
type SpreadsheetParticipant struct {
	PeopleID    int64              `json:"peopleId"`
	Name        string             `json:"name"`
	PhoneNumber string             `json:"phoneNumber"`
	IsAdmin     bool               `json:"isAdmin"`
	TotalCost   float64            `json:"totalCost"`
	ItemCosts   map[string]float64 `json:"itemCosts"`
}

// SpreadsheetTotals carries the column and row totals of the matrix.
//
// Sum of ParticipantTotals equals sum of ItemTotals only when every optional
// item has at least one responsible person; an unclaimed optional item keeps
// its full cost in ItemTotals (nominal) while allocating nothing.
type SpreadsheetTotals struct {
	TotalEventCost    float64            `json:"totalEventCost"`
	ItemTotals        map[string]float64 `json:"itemTotals"`
	ParticipantTotals map[string]float64 `json:"participantTotals"`
}

// EventSpreadsheetReport is the item-by-participant matrix projection.
type EventSpreadsheetReport struct {
	EventID        int64                    `json:"eventId"`
	EventName      string                   `json:"eventName"`
	EventDate      string                   `json:"eventDate"`
	EventAddress   string                   `json:"eventAddress"`
	TotalEventCost float64                  `json:"totalEventCost"`
	Items          []SpreadsheetItem        `json:"items"`
	Participants   []SpreadsheetParticipant `json:"participants"`
	Totals         SpreadsheetTotals        `json:"totals"`
}

// BuildShoppingStatistics renders the shopping-list projection.
func BuildShoppingStatistics(g *models.EventGraph, alloc *allocator.Allocation) *EventShoppingStatistics {
	stats := &EventShoppingStatistics{
		EventID:           g.Event.ID,
		EventName:         g.Event.Name,
		TotalParticipants: len(g.Members),
		Items:             make([]ItemShoppingStatistics, 0, len(alloc.Items)),
	}

	for _, ia := range alloc.Items {
		row := ItemShoppingStatistics{
			ItemID:        ia.ItemID,
			ItemName:      ia.Name,
			IsRequired:    ia.IsRequired,
			TotalCost:     round2(ia.TotalCost),
			TotalChosenBy: len(ia.Responsible),
		}
		for _, id := range ia.Responsible {
			member := g.Member(id)
			if member == nil {
				continue
			}
			switch member.Gender {
			case models.GenderMale:
				row.MaleCount++
			case models.GenderFemale:
				row.FemaleCount++
			default:
				row.UnspecifiedCount++
			}
		}
		stats.Items = append(stats.Items, row)
	}

	return stats
}

// BuildCompleteReport renders the full breakdown projection.
func BuildCompleteReport(g *models.EventGraph, alloc *allocator.Allocation) *EventCompleteReport {
	report := &EventCompleteReport{
		EventID:           g.Event.ID,
		EventName:         g.Event.Name,
		EventDate:         g.Event.Date,
		EventAddress:      g.Event.Address,
		HashInvite:        g.Event.HashInvite,
		TotalParticipants: len(g.Members),
		TotalEventCost:    round2(alloc.TotalEventCost),
		Items:             make([]ItemCompleteReport, 0, len(alloc.Items)),
		Participants:      make([]ParticipantSummary, 0, len(g.Members)),
	}

	for _, ia := range alloc.Items {
		report.Items = append(report.Items, ItemCompleteReport{
			ItemID:         ia.ItemID,
			ItemName:       ia.Name,
			IsRequired:     ia.IsRequired,
			TotalCost:      round2(ia.TotalCost),
			TotalChosenBy:  len(ia.Responsible),
			CostPerPerson:  round2(ia.CostPerPerson),
			ParticipantIDs: ia.Responsible,
		})
	}

	for _, member := range g.Members {
		pa := alloc.People[member.ID]
		summary := ParticipantSummary{
			PeopleID:         member.ID,
			Name:             member.Name,
			PhoneNumber:      member.PhoneNumber,
			IsAdmin:          member.ID == g.Event.OwnerID,
			ItemsResponsible: make([]ParticipantItemDetail, 0),
		}
		if pa != nil {
			summary.TotalItems = len(pa.Items)
			summary.TotalCost = round2(pa.Total)
			for _, pi := range pa.Items {
				summary.ItemsResponsible = append(summary.ItemsResponsible, ParticipantItemDetail{
					ItemID:         pi.ItemID,
					ItemName:       pi.Name,
					IndividualCost: round2(pi.Share),
				})
			}
		}
		report.Participants = append(report.Participants, summary)
	}

	return report
}

// BuildSpreadsheetReport renders the item-by-participant matrix projection.
func BuildSpreadsheetReport(g *models.EventGraph, alloc *allocator.Allocation) *EventSpreadsheetReport {
	report := &EventSpreadsheetReport{
		EventID:        g.Event.ID,
		EventName:      g.Event.Name,
		EventDate:      g.Event.Date,
		EventAddress:   g.Event.Address,
		TotalEventCost: round2(alloc.TotalEventCost),
		Items:          make([]SpreadsheetItem, 0, len(alloc.Items)),
		Participants:   make([]SpreadsheetParticipant, 0, len(g.Members)),
		Totals: SpreadsheetTotals{
			TotalEventCost:    round2(alloc.TotalEventCost),
			ItemTotals:        make(map[string]float64, len(alloc.Items)),
			ParticipantTotals: make(map[string]float64, len(g.Members)),
		},
	}

	for _, ia := range alloc.Items {
		report.Items = append(report.Items, SpreadsheetItem{
			ItemID:        ia.ItemID,
			ItemName:      ia.Name,
			IsRequired:    ia.IsRequired,
			TotalCost:     round2(ia.TotalCost),
			CostPerPerson: round2(ia.CostPerPerson),
		})
		report.Totals.ItemTotals[ia.Name] = round2(ia.TotalCost)
	}

	for _, member := range g.Members {
		row := SpreadsheetParticipant{
			PeopleID:    member.ID,
			Name:        member.Name,
			PhoneNumber: member.PhoneNumber,
			IsAdmin:     member.ID == g.Event.OwnerID,
			ItemCosts:   make(map[string]float64),
		}
		if pa := alloc.People[member.ID]; pa != nil {
			row.TotalCost = round2(pa.Total)
			for _, pi := range pa.Items {
				row.ItemCosts[pi.Name] = round2(pi.Share)
			}
		}
		report.Participants = append(report.Participants, row)
		report.Totals.ParticipantTotals[member.Name] = row.TotalCost
	}

	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
