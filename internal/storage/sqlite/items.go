package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Joaolrm/quantodeu/internal/models"
)

// CreateItem inserts a new item under an existing event.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM events WHERE id = ?", item.EventID).Scan(&exists)
	if err == sql.ErrNoRows {
		return models.ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO items (event_id, name, is_required, total_cost) VALUES (?, ?, ?, ?)",
		item.EventID, item.Name, item.IsRequired, item.TotalCost,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read item id: %w", err)
	}
	item.ID = id

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetItem retrieves an item by ID.
func (s *SQLiteStore) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	item := &models.Item{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, event_id, name, is_required, total_cost FROM items WHERE id = ?", id,
	).Scan(&item.ID, &item.EventID, &item.Name, &item.IsRequired, &item.TotalCost)
	if err == sql.ErrNoRows {
		return nil, models.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// UpdateItem replaces the item's mutable fields. The transaction reads the
// current row first, so a concurrent toggle can never interleave with the
// edit. When the item becomes required its explicit selections are cleared;
// responsibility is derived from membership from then on.
func (s *SQLiteStore) UpdateItem(ctx context.Context, item *models.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var wasRequired bool
	err = tx.QueryRowContext(ctx, "SELECT is_required FROM items WHERE id = ?", item.ID).Scan(&wasRequired)
	if err == sql.ErrNoRows {
		return models.ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check item: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE items SET name = ?, is_required = ?, total_cost = ? WHERE id = ?",
		item.Name, item.IsRequired, item.TotalCost, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	if item.IsRequired && !wasRequired {
		_, err = tx.ExecContext(ctx, "DELETE FROM item_participants WHERE item_id = ?", item.ID)
		if err != nil {
			return fmt.Errorf("failed to clear participations: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteItem removes an item; its participation rows cascade.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

// AddItemParticipant inserts a participation edge, guarded by the item's
// current state inside the transaction.
func (s *SQLiteStore) AddItemParticipant(ctx context.Context, itemID, peopleID int64) error {
	return s.toggleParticipant(ctx, itemID, peopleID,
		"INSERT OR IGNORE INTO item_participants (item_id, people_id) VALUES (?, ?)")
}

// RemoveItemParticipant deletes a participation edge, guarded by the item's
// current state inside the transaction.
func (s *SQLiteStore) RemoveItemParticipant(ctx context.Context, itemID, peopleID int64) error {
	return s.toggleParticipant(ctx, itemID, peopleID,
		"DELETE FROM item_participants WHERE item_id = ? AND people_id = ?")
}

// toggleParticipant applies one edge mutation after re-checking, in the same
// transaction, that the item is still optional and the person is still a
// member of its event. Two participants toggling the same item concurrently
// therefore serialize instead of losing an update.
func (s *SQLiteStore) toggleParticipant(ctx context.Context, itemID, peopleID int64, stmt string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var eventID int64
	var isRequired bool
	err = tx.QueryRowContext(ctx,
		"SELECT event_id, is_required FROM items WHERE id = ?", itemID,
	).Scan(&eventID, &isRequired)
	if err == sql.ErrNoRows {
		return models.ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check item: %w", err)
	}
	if isRequired {
		return models.ErrItemRequired
	}

	var one int
	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM event_members WHERE event_id = ? AND people_id = ?",
		eventID, peopleID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return models.ErrNotMember
	}
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}

	if _, err := tx.ExecContext(ctx, stmt, itemID, peopleID); err != nil {
		return fmt.Errorf("failed to toggle participation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
