package models

// ItemWithChosenBy pairs an item with its explicit selection set.
// For required items the slice is always empty; responsibility for those is
// derived from event membership.
type ItemWithChosenBy struct {
	Item
	ChosenBy []int64
}

// EventGraph is the full persisted state of one event: the event row, its
// items with their selection sets, and its members in join order (owner
// first). It is the input to the allocation engine.
type EventGraph struct {
	Event   Event
	Items   []ItemWithChosenBy
	Members []People
}

// Member returns the member with the given id, or nil.
func (g *EventGraph) Member(peopleID int64) *People {
	for i := range g.Members {
		if g.Members[i].ID == peopleID {
			return &g.Members[i]
		}
	}
	return nil
}

// PeopleRef is the reduced person view embedded in event details.
type PeopleRef struct {
	ID   int64
	Name string
}

// ItemWithPeople is an item together with everyone currently responsible for
// it. For required items this is every member of the event.
type ItemWithPeople struct {
	Item
	Participants []PeopleRef
}

// EventDetails is the full event graph as seen by one person, with required
// item responsibility already expanded to all members.
type EventDetails struct {
	Event
	Items      []ItemWithPeople
	ActualUser People
	IsAdmin    bool
}

// InviteItem is the reduced item view shown to a visitor resolving an invite
// hash: no cost and no participant roster.
type InviteItem struct {
	ID         int64
	Name       string
	IsRequired bool
}

// InviteView is what an invite hash resolves to before joining.
type InviteView struct {
	Event
	Items []InviteItem
}
