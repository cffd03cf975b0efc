package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Joaolrm/quantodeu/internal/models"
)

// CreatePeople inserts a new person, enforcing phone number uniqueness.
func (s *SQLiteStore) CreatePeople(ctx context.Context, people *models.People) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing int64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM people WHERE phone_number = ?", people.PhoneNumber,
	).Scan(&existing)
	if err == nil {
		return models.ErrPhoneTaken
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check phone number: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO people (name, phone_number, date_of_birth, gender) VALUES (?, ?, ?, ?)",
		people.Name, people.PhoneNumber, people.DateOfBirth, string(people.Gender),
	)
	if err != nil {
		return fmt.Errorf("failed to insert people: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read people id: %w", err)
	}
	people.ID = id

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetPeopleByID retrieves a person by their ID.
func (s *SQLiteStore) GetPeopleByID(ctx context.Context, id int64) (*models.People, error) {
	return s.scanPeople(s.db.QueryRowContext(ctx,
		"SELECT id, name, phone_number, date_of_birth, gender FROM people WHERE id = ?", id,
	))
}

// GetPeopleByPhone retrieves a person by their normalized phone number.
func (s *SQLiteStore) GetPeopleByPhone(ctx context.Context, phone string) (*models.People, error) {
	return s.scanPeople(s.db.QueryRowContext(ctx,
		"SELECT id, name, phone_number, date_of_birth, gender FROM people WHERE phone_number = ?", phone,
	))
}

func (s *SQLiteStore) scanPeople(row *sql.Row) (*models.People, error) {
	people := &models.People{}
	var gender string
	err := row.Scan(&people.ID, &people.Name, &people.PhoneNumber, &people.DateOfBirth, &gender)
	if err == sql.ErrNoRows {
		return nil, models.ErrPeopleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get people: %w", err)
	}
	people.Gender = models.Gender(gender)
	return people, nil
}

// ListPeople returns every registered person ordered by ID.
func (s *SQLiteStore) ListPeople(ctx context.Context) ([]models.People, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, phone_number, date_of_birth, gender FROM people ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var out []models.People
	for rows.Next() {
		var p models.People
		var gender string
		if err := rows.Scan(&p.ID, &p.Name, &p.PhoneNumber, &p.DateOfBirth, &gender); err != nil {
			return nil, fmt.Errorf("failed to scan people: %w", err)
		}
		p.Gender = models.Gender(gender)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}
	return out, nil
}

// ListEventsByPeople returns the events a person owns or joined, annotated
// with the admin flag relative to that person.
func (s *SQLiteStore) ListEventsByPeople(ctx context.Context, peopleID int64) ([]models.EventWithAdmin, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.name, e.date, e.address, e.hash_invite, e.owner_id
		FROM events e
		JOIN event_members m ON m.event_id = e.id
		WHERE m.people_id = ?
		ORDER BY e.id`,
		peopleID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list events by people: %w", err)
	}
	defer rows.Close()

	var out []models.EventWithAdmin
	for rows.Next() {
		var e models.EventWithAdmin
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Address, &e.HashInvite, &e.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.IsAdmin = e.OwnerID == peopleID
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return out, nil
}
