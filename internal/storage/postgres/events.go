package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Joaolrm/quantodeu/internal/models"
)

// CreateEvent persists an event with its nested items in one transaction.
func (s *PostgresStore) CreateEvent(ctx context.Context, event *models.Event, items []models.NewItem) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var eventID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO events (name, date, address, hash_invite, owner_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		event.Name, event.Date, event.Address, event.HashInvite, event.OwnerID,
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO event_members (event_id, people_id, joined_at) VALUES ($1, $2, $3)",
		eventID, event.OwnerID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert owner membership: %w", err)
	}

	for _, item := range items {
		var itemID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO items (event_id, name, is_required, total_cost)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			eventID, item.Name, item.IsRequired, item.TotalCost,
		).Scan(&itemID)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}

		if item.OwnerWantsThisItem && !item.IsRequired {
			_, err = tx.Exec(ctx,
				"INSERT INTO item_participants (item_id, people_id) VALUES ($1, $2)",
				itemID, event.OwnerID,
			)
			if err != nil {
				return fmt.Errorf("failed to insert owner participation: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	event.ID = eventID
	return nil
}

// GetEvent retrieves an event by ID.
func (s *PostgresStore) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.getEvent(ctx,
		"SELECT id, name, date, address, hash_invite, owner_id FROM events WHERE id = $1", id)
}

// GetEventByHash retrieves an event by its invite hash.
func (s *PostgresStore) GetEventByHash(ctx context.Context, hash string) (*models.Event, error) {
	return s.getEvent(ctx,
		"SELECT id, name, date, address, hash_invite, owner_id FROM events WHERE hash_invite = $1", hash)
}

func (s *PostgresStore) getEvent(ctx context.Context, query string, arg any) (*models.Event, error) {
	event := &models.Event{}
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&event.ID, &event.Name, &event.Date, &event.Address, &event.HashInvite, &event.OwnerID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// GetEventGraph loads the event, its items with selection sets, and its
// members in join order, all inside one repeatable-read transaction.
func (s *PostgresStore) GetEventGraph(ctx context.Context, id int64) (*models.EventGraph, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	event := &models.Event{}
	err = tx.QueryRow(ctx,
		"SELECT id, name, date, address, hash_invite, owner_id FROM events WHERE id = $1", id,
	).Scan(&event.ID, &event.Name, &event.Date, &event.Address, &event.HashInvite, &event.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	graph := &models.EventGraph{Event: *event}

	itemRows, err := tx.Query(ctx,
		"SELECT id, event_id, name, is_required, total_cost FROM items WHERE event_id = $1 ORDER BY id", id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	index := make(map[int64]int)
	for itemRows.Next() {
		var item models.Item
		if err := itemRows.Scan(&item.ID, &item.EventID, &item.Name, &item.IsRequired, &item.TotalCost); err != nil {
			itemRows.Close()
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		index[item.ID] = len(graph.Items)
		graph.Items = append(graph.Items, models.ItemWithChosenBy{Item: item})
	}
	itemRows.Close()
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	selRows, err := tx.Query(ctx, `
		SELECT ip.item_id, ip.people_id
		FROM item_participants ip
		JOIN items i ON i.id = ip.item_id
		WHERE i.event_id = $1
		ORDER BY ip.item_id, ip.people_id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participations: %w", err)
	}
	for selRows.Next() {
		var itemID, peopleID int64
		if err := selRows.Scan(&itemID, &peopleID); err != nil {
			selRows.Close()
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		if i, ok := index[itemID]; ok {
			graph.Items[i].ChosenBy = append(graph.Items[i].ChosenBy, peopleID)
		}
	}
	selRows.Close()
	if err := selRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participations: %w", err)
	}

	memberRows, err := tx.Query(ctx, `
		SELECT p.id, p.name, p.phone_number, p.date_of_birth, p.gender
		FROM people p
		JOIN event_members m ON m.people_id = p.id
		WHERE m.event_id = $1
		ORDER BY m.joined_at, p.id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	for memberRows.Next() {
		var p models.People
		var gender string
		if err := memberRows.Scan(&p.ID, &p.Name, &p.PhoneNumber, &p.DateOfBirth, &gender); err != nil {
			memberRows.Close()
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		p.Gender = models.Gender(gender)
		graph.Members = append(graph.Members, p)
	}
	memberRows.Close()
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return graph, nil
}

// DeleteEvent removes an event; items, memberships and participations
// cascade.
func (s *PostgresStore) DeleteEvent(ctx context.Context, id int64) error {
	res, err := s.pool.Exec(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if res.RowsAffected() == 0 {
		return models.ErrEventNotFound
	}
	return nil
}

// AddEventMember records a join with its optional-item selections in one
// transaction.
func (s *PostgresStore) AddEventMember(ctx context.Context, eventID, peopleID int64, selectedOptionalItems []int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists int64
	err = tx.QueryRow(ctx, "SELECT id FROM events WHERE id = $1", eventID).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO event_members (event_id, people_id, joined_at)
		 VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		eventID, peopleID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert membership: %w", err)
	}

	for _, itemID := range selectedOptionalItems {
		var itemEventID int64
		var isRequired bool
		err = tx.QueryRow(ctx,
			"SELECT event_id, is_required FROM items WHERE id = $1 FOR UPDATE", itemID,
		).Scan(&itemEventID, &isRequired)
		if errors.Is(err, pgx.ErrNoRows) {
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

		_, err = tx.Exec(ctx,
			`INSERT INTO item_participants (item_id, people_id)
			 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			itemID, peopleID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participation: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// IsEventMember reports whether the person has a membership row.
func (s *PostgresStore) IsEventMember(ctx context.Context, eventID, peopleID int64) (bool, error) {
	var one int
	err := s.pool.QueryRow(ctx,
		"SELECT 1 FROM event_members WHERE event_id = $1 AND people_id = $2",
		eventID, peopleID,
	).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return true, nil
}
