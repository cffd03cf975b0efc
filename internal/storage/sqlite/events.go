package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Joaolrm/quantodeu/internal/models"
)

// CreateEvent persists an event with its nested items in one transaction.
// The owner becomes the first member; optional items flagged
// OwnerWantsThisItem get a participation row for the owner.
func (s *SQLiteStore) CreateEvent(ctx context.Context, event *models.Event, items []models.NewItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO events (name, date, address, hash_invite, owner_id) VALUES (?, ?, ?, ?, ?)",
		event.Name, event.Date, event.Address, event.HashInvite, event.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	eventID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read event id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO event_members (event_id, people_id, joined_at) VALUES (?, ?, ?)",
		eventID, event.OwnerID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert owner membership: %w", err)
	}

	for _, item := range items {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO items (event_id, name, is_required, total_cost) VALUES (?, ?, ?, ?)",
			eventID, item.Name, item.IsRequired, item.TotalCost,
		)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}

		// required items are implicitly everyone's; only optional
		// pre-claims become participation rows
		if item.OwnerWantsThisItem && !item.IsRequired {
			itemID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read item id: %w", err)
			}
			_, err = tx.ExecContext(ctx,
				"INSERT INTO item_participants (item_id, people_id) VALUES (?, ?)",
				itemID, event.OwnerID,
			)
			if err != nil {
				return fmt.Errorf("failed to insert owner participation: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	event.ID = eventID
	return nil
}

// GetEvent retrieves an event by ID.
func (s *SQLiteStore) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.scanEvent(s.db.QueryRowContext(ctx,
		"SELECT id, name, date, address, hash_invite, owner_id FROM events WHERE id = ?", id,
	))
}

// GetEventByHash retrieves an event by its invite hash.
func (s *SQLiteStore) GetEventByHash(ctx context.Context, hash string) (*models.Event, error) {
	return s.scanEvent(s.db.QueryRowContext(ctx,
		"SELECT id, name, date, address, hash_invite, owner_id FROM events WHERE hash_invite = ?", hash,
	))
}

func (s *SQLiteStore) scanEvent(row *sql.Row) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(&event.ID, &event.Name, &event.Date, &event.Address, &event.HashInvite, &event.OwnerID)
	if err == sql.ErrNoRows {
		return nil, models.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// GetEventGraph loads the event, its items with selection sets, and its
// members in join order.
func (s *SQLiteStore) GetEventGraph(ctx context.Context, id int64) (*models.EventGraph, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	graph := &models.EventGraph{Event: *event}

	itemRows, err := s.db.QueryContext(ctx,
		"SELECT id, event_id, name, is_required, total_cost FROM items WHERE event_id = ? ORDER BY id", id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer itemRows.Close()

	index := make(map[int64]int)
	for itemRows.Next() {
		var item models.Item
		if err := itemRows.Scan(&item.ID, &item.EventID, &item.Name, &item.IsRequired, &item.TotalCost); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		index[item.ID] = len(graph.Items)
		graph.Items = append(graph.Items, models.ItemWithChosenBy{Item: item})
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	selRows, err := s.db.QueryContext(ctx, `
		SELECT ip.item_id, ip.people_id
		FROM item_participants ip
		JOIN items i ON i.id = ip.item_id
		WHERE i.event_id = ?
		ORDER BY ip.item_id, ip.people_id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participations: %w", err)
	}
	defer selRows.Close()

	for selRows.Next() {
		var itemID, peopleID int64
		if err := selRows.Scan(&itemID, &peopleID); err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		if i, ok := index[itemID]; ok {
			graph.Items[i].ChosenBy = append(graph.Items[i].ChosenBy, peopleID)
		}
	}
	if err := selRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participations: %w", err)
	}

	memberRows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.phone_number, p.date_of_birth, p.gender
		FROM people p
		JOIN event_members m ON m.people_id = p.id
		WHERE m.event_id = ?
		ORDER BY m.joined_at, p.id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var p models.People
		var gender string
		if err := memberRows.Scan(&p.ID, &p.Name, &p.PhoneNumber, &p.DateOfBirth, &gender); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		p.Gender = models.Gender(gender)
		graph.Members = append(graph.Members, p)
	}
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return graph, nil
}

// DeleteEvent removes an event; items, memberships and participations
// cascade.
func (s *SQLiteStore) DeleteEvent(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrEventNotFound
	}
	return nil
}

// AddEventMember records a join with its optional-item selections in one
// transaction. Required items are not listed; responsibility for those
// follows from the membership row itself.
func (s *SQLiteStore) AddEventMember(ctx context.Context, eventID, peopleID int64, selectedOptionalItems []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM events WHERE id = ?", eventID).Scan(&exists)
	if err == sql.ErrNoRows {
		return models.ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO event_members (event_id, people_id, joined_at) VALUES (?, ?, ?)",
		eventID, peopleID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert membership: %w", err)
	}

	for _, itemID := range selectedOptionalItems {
		var itemEventID int64
		var isRequired bool
		err = tx.QueryRowContext(ctx,
			"SELECT event_id, is_required FROM items WHERE id = ?", itemID,
		).Scan(&itemEventID, &isRequired)
		if err == sql.ErrNoRows {
			return models.ErrItemNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check item: %w", err)
		}
		if itemEventID != eventID {
			return fmt.Errorf("%w: item %d does not belong to event %d", models.ErrValidation, itemID, eventID)
		}
		if isRequired {
			return fmt.Errorf("%w: item %d", models.ErrItemRequired, itemID)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO item_participants (item_id, people_id) VALUES (?, ?)",
			itemID, peopleID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// IsEventMember reports whether the person has a membership row.
func (s *SQLiteStore) IsEventMember(ctx context.Context, eventID, peopleID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM event_members WHERE event_id = ? AND people_id = ?",
		eventID, peopleID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return true, nil
}
