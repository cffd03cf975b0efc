package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Joaolrm/quantodeu/internal/models"
)

// CreateItem inserts a new item under an existing event.
func (s *PostgresStore) CreateItem(ctx context.Context, item *models.Item) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists int64
	err = tx.QueryRow(ctx, "SELECT id FROM events WHERE id = $1", item.EventID).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO items (event_id, name, is_required, total_cost)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		item.EventID, item.Name, item.IsRequired, item.TotalCost,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetItem retrieves an item by ID.
func (s *PostgresStore) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	item := &models.Item{}
	err := s.pool.QueryRow(ctx,
		"SELECT id, event_id, name, is_required, total_cost FROM items WHERE id = $1", id,
	).Scan(&item.ID, &item.EventID, &item.Name, &item.IsRequired, &item.TotalCost)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// UpdateItem replaces the item's mutable fields. The row lock taken by
// FOR UPDATE makes edits mutually exclusive with concurrent toggles.
func (s *PostgresStore) UpdateItem(ctx context.Context, item *models.Item) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var wasRequired bool
	err = tx.QueryRow(ctx,
		"SELECT is_required FROM items WHERE id = $1 FOR UPDATE", item.ID,
	).Scan(&wasRequired)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check item: %w", err)
	}

	_, err = tx.Exec(ctx,
		"UPDATE items SET name = $1, is_required = $2, total_cost = $3 WHERE id = $4",
		item.Name, item.IsRequired, item.TotalCost, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	if item.IsRequired && !wasRequired {
		_, err = tx.Exec(ctx, "DELETE FROM item_participants WHERE item_id = $1", item.ID)
		if err != nil {
			return fmt.Errorf("failed to clear participations: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteItem removes an item; its participation rows cascade. The row lock
// ensures in-flight toggles finish before the delete applies.
func (s *PostgresStore) DeleteItem(ctx context.Context, id int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var locked int64
	err = tx.QueryRow(ctx, "SELECT id FROM items WHERE id = $1 FOR UPDATE", id).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock item: %w", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM items WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AddItemParticipant inserts a participation edge, guarded by a row lock on
// the item.
func (s *PostgresStore) AddItemParticipant(ctx context.Context, itemID, peopleID int64) error {
	return s.toggleParticipant(ctx, itemID, peopleID,
		`INSERT INTO item_participants (item_id, people_id)
		 VALUES ($1, $2) ON CONFLICT DO NOTHING`)
}

// RemoveItemParticipant deletes a participation edge, guarded by a row lock
// on the item.
func (s *PostgresStore) RemoveItemParticipant(ctx context.Context, itemID, peopleID int64) error {
	return s.toggleParticipant(ctx, itemID, peopleID,
		"DELETE FROM item_participants WHERE item_id = $1 AND people_id = $2")
}

func (s *PostgresStore) toggleParticipant(ctx context.Context, itemID, peopleID int64, stmt string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var eventID int64
	var isRequired bool
	err = tx.QueryRow(ctx,
		"SELECT event_id, is_required FROM items WHERE id = $1 FOR UPDATE", itemID,
	).Scan(&eventID, &isRequired)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check item: %w", err)
	}
	if isRequired {
		return models.ErrItemRequired
	}

	var one int
	err = tx.QueryRow(ctx,
		"SELECT 1 FROM event_members WHERE event_id = $1 AND people_id = $2",
		eventID, peopleID,
	).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotMember
	}
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}

	if _, err := tx.Exec(ctx, stmt, itemID, peopleID); err != nil {
		return fmt.Errorf("failed to toggle participation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
