package service

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/Joaolrm/quantodeu/internal/auth"
	"github.com/Joaolrm/quantodeu/internal/models"
	"github.com/Joaolrm/quantodeu/internal/storage"
	"github.com/Joaolrm/quantodeu/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return store
}

func newTestServices(t *testing.T) (storage.Store, *PeopleService, *EventService, *ItemService, *ReportService) {
	t.Helper()

	store := newTestStore(t)
	jwt := auth.NewJWTManager("test-secret", time.Hour)
	return store,
		NewPeopleService(store, jwt),
		NewEventService(store, nil),
		NewItemService(store),
		NewReportService(store)
}

func registerPeople(t *testing.T, people *PeopleService, name, phone string, gender models.Gender) *models.People {
	t.Helper()

	p, _, err := people.Register(context.Background(), models.CreatePeopleInput{
		Name:        name,
		PhoneNumber: phone,
		DateOfBirth: "1995-06-15",
		Gender:      gender,
	})
	if err != nil {
		t.Fatalf("failed to register %s: %v", name, err)
	}
	return p
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "full international format",
			input: "+55 (51) 99198-4252",
			want:  "51-991984252",
		},
		{
			name:  "already normalized",
			input: "51-991984252",
			want:  "51-991984252",
		},
		{
			name:  "bare digits without country code",
			input: "51991984252",
			want:  "51-991984252",
		},
		{
			name:  "eight digit landline",
			input: "5133334444",
			want:  "51-33334444",
		},
		{
			name:    "too short",
			input:   "9919",
			wantErr: true,
		},
		{
			name:    "no digits",
			input:   "not a phone",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.wantErr {
				if !errors.Is(err, models.ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPeopleService(t *testing.T) {
	ctx := context.Background()
	_, people, _, _, _ := newTestServices(t)

	t.Run("register issues a token and normalizes the phone", func(t *testing.T) {
		p, token, err := people.Register(ctx, models.CreatePeopleInput{
			Name:        "João",
			PhoneNumber: "+55 51 99198-4252",
			DateOfBirth: "1998-03-02",
			Gender:      models.GenderMale,
		})
		if err != nil {
			t.Fatalf("failed to register: %v", err)
		}
		if p.ID == 0 {
			t.Error("expected a store-assigned id")
		}
		if p.PhoneNumber != "51-991984252" {
			t.Errorf("expected normalized phone, got %q", p.PhoneNumber)
		}
		if token == "" {
			t.Error("expected a session token")
		}
	})

	t.Run("register rejects missing name", func(t *testing.T) {
		_, _, err := people.Register(ctx, models.CreatePeopleInput{
			PhoneNumber: "51-991110000",
			DateOfBirth: "1990-01-01",
		})
		if !errors.Is(err, models.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("login accepts any spelling of a registered phone", func(t *testing.T) {
		p, token, err := people.Login(ctx, "5551991984252")
		if err != nil {
			t.Fatalf("failed to login: %v", err)
		}
		if p.Name != "João" {
			t.Errorf("expected João, got %q", p.Name)
		}
		if token == "" {
			t.Error("expected a session token")
		}
	})

	t.Run("login with unknown phone fails", func(t *testing.T) {
		_, _, err := people.Login(ctx, "51-999990000")
		if !errors.Is(err, models.ErrPeopleNotFound) {
			t.Errorf("expected ErrPeopleNotFound, got %v", err)
		}
	})
}

func TestEventLifecycle(t *testing.T) {
	ctx := context.Background()
	_, people, events, items, reportSvc := newTestServices(t)

	owner := registerPeople(t, people, "Ana", "51-991110001", models.GenderFemale)
	guest := registerPeople(t, people, "Bruno", "51-991110002", models.GenderMale)

	event, err := events.Create(ctx, owner.ID, models.CreateEventInput{
		Name:    "Churras",
		Date:    "2026-09-12",
		Address: "Av. Ipiranga 1000",
		Items: []models.NewItem{
			{Name: "Carne", IsRequired: true, TotalCost: 100},
			{Name: "Suco", TotalCost: 40, OwnerWantsThisItem: true},
		},
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.HashInvite == "" {
		t.Fatal("expected an invite hash")
	}

	var sucoID int64
	details, err := events.Details(ctx, event.ID, owner.ID)
	if err != nil {
		t.Fatalf("failed to load details: %v", err)
	}
	for _, it := range details.Items {
		if it.Name == "Suco" {
			sucoID = it.ID
		}
	}
	if sucoID == 0 {
		t.Fatal("expected Suco in the created items")
	}

	t.Run("invite hash resolves to event without costs", func(t *testing.T) {
		view, err := events.ResolveInvite(ctx, event.HashInvite)
		if err != nil {
			t.Fatalf("failed to resolve invite: %v", err)
		}
		if view.ID != event.ID {
			t.Errorf("expected event %d, got %d", event.ID, view.ID)
		}
		if len(view.Items) != 2 {
			t.Errorf("expected 2 items, got %d", len(view.Items))
		}
	})

	t.Run("unknown invite hash is not found", func(t *testing.T) {
		_, err := events.ResolveInvite(ctx, "deadbeef")
		if !errors.Is(err, models.ErrInviteNotFound) {
			t.Errorf("expected ErrInviteNotFound, got %v", err)
		}
	})

	t.Run("guest joins with an optional selection", func(t *testing.T) {
		if err := events.AddParticipant(ctx, event.ID, guest.ID, guest.ID, []int64{sucoID}); err != nil {
			t.Fatalf("failed to join: %v", err)
		}

		report, err := reportSvc.CompleteReport(ctx, event.ID)
		if err != nil {
			t.Fatalf("failed to build report: %v", err)
		}
		if report.TotalParticipants != 2 {
			t.Fatalf("expected 2 participants, got %d", report.TotalParticipants)
		}
		// Carne 100/2 + Suco 40/2 each.
		for _, p := range report.Participants {
			if math.Abs(p.TotalCost-70) > 0.01 {
				t.Errorf("expected %s to owe 70, got %.2f", p.Name, p.TotalCost)
			}
		}
	})

	t.Run("non-member cannot view details", func(t *testing.T) {
		outsider := registerPeople(t, people, "Carla", "51-991110003", models.GenderFemale)
		_, err := events.Details(ctx, event.ID, outsider.ID)
		if !errors.Is(err, models.ErrNotMember) {
			t.Errorf("expected ErrNotMember, got %v", err)
		}
	})

	t.Run("guest cannot add someone else", func(t *testing.T) {
		stranger := registerPeople(t, people, "Dani", "51-991110004", models.GenderUnspecified)
		err := events.AddParticipant(ctx, event.ID, guest.ID, stranger.ID, nil)
		if !errors.Is(err, models.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("only the owner edits items", func(t *testing.T) {
		_, err := items.Update(ctx, guest.ID, sucoID, models.UpdateItemInput{Name: "Suco", TotalCost: 50})
		if !errors.Is(err, models.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
		if err := items.Delete(ctx, guest.ID, sucoID); !errors.Is(err, models.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("deleting an item redistributes costs on the next read", func(t *testing.T) {
		if err := items.Delete(ctx, owner.ID, sucoID); err != nil {
			t.Fatalf("failed to delete item: %v", err)
		}

		report, err := reportSvc.CompleteReport(ctx, event.ID)
		if err != nil {
			t.Fatalf("failed to build report: %v", err)
		}
		if math.Abs(report.TotalEventCost-100) > 0.01 {
			t.Errorf("expected total 100, got %.2f", report.TotalEventCost)
		}
		for _, p := range report.Participants {
			if math.Abs(p.TotalCost-50) > 0.01 {
				t.Errorf("expected %s to owe 50, got %.2f", p.Name, p.TotalCost)
			}
		}
	})

	t.Run("only the owner deletes the event", func(t *testing.T) {
		if err := events.Delete(ctx, event.ID, guest.ID); !errors.Is(err, models.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
		if err := events.Delete(ctx, event.ID, owner.ID); err != nil {
			t.Fatalf("failed to delete event: %v", err)
		}
		if _, err := events.Details(ctx, event.ID, owner.ID); !errors.Is(err, models.ErrEventNotFound) {
			t.Errorf("expected ErrEventNotFound, got %v", err)
		}
	})
}

func TestItemToggles(t *testing.T) {
	ctx := context.Background()
	_, people, events, items, reportSvc := newTestServices(t)

	owner := registerPeople(t, people, "Ana", "51-991110001", models.GenderFemale)
	guest := registerPeople(t, people, "Bruno", "51-991110002", models.GenderMale)

	event, err := events.Create(ctx, owner.ID, models.CreateEventInput{
		Name:    "Pizza",
		Date:    "2026-10-01",
		Address: "Rua da Praia 50",
		Items:   []models.NewItem{{Name: "Calabresa", IsRequired: true, TotalCost: 60}},
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if err := events.AddParticipant(ctx, event.ID, guest.ID, guest.ID, nil); err != nil {
		t.Fatalf("failed to join: %v", err)
	}

	refri, err := items.Create(ctx, owner.ID, models.CreateItemInput{
		EventID:   event.ID,
		Name:      "Refri",
		TotalCost: 20,
	})
	if err != nil {
		t.Fatalf("failed to create item: %v", err)
	}

	t.Run("member opts in and out of an optional item", func(t *testing.T) {
		if err := items.AddParticipant(ctx, guest.ID, refri.ID, guest.ID); err != nil {
			t.Fatalf("failed to opt in: %v", err)
		}

		stats, err := reportSvc.ShoppingStatistics(ctx, event.ID)
		if err != nil {
			t.Fatalf("failed to build statistics: %v", err)
		}
		for _, row := range stats.Items {
			if row.ItemID == refri.ID && row.TotalChosenBy != 1 {
				t.Errorf("expected 1 chooser, got %d", row.TotalChosenBy)
			}
		}

		if err := items.RemoveParticipant(ctx, guest.ID, refri.ID, guest.ID); err != nil {
			t.Fatalf("failed to opt out: %v", err)
		}
	})

	t.Run("owner may toggle on behalf of a member", func(t *testing.T) {
		if err := items.AddParticipant(ctx, owner.ID, refri.ID, guest.ID); err != nil {
			t.Fatalf("failed to opt in as owner: %v", err)
		}
		if err := items.RemoveParticipant(ctx, owner.ID, refri.ID, guest.ID); err != nil {
			t.Fatalf("failed to opt out as owner: %v", err)
		}
	})

	t.Run("member cannot toggle someone else", func(t *testing.T) {
		err := items.AddParticipant(ctx, guest.ID, refri.ID, owner.ID)
		if !errors.Is(err, models.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("required items reject toggles", func(t *testing.T) {
		var carneID int64
		details, err := events.Details(ctx, event.ID, owner.ID)
		if err != nil {
			t.Fatalf("failed to load details: %v", err)
		}
		for _, it := range details.Items {
			if it.IsRequired {
				carneID = it.ID
			}
		}

		err = items.AddParticipant(ctx, guest.ID, carneID, guest.ID)
		if !errors.Is(err, models.ErrItemRequired) {
			t.Errorf("expected ErrItemRequired, got %v", err)
		}
	})

	t.Run("item validation", func(t *testing.T) {
		_, err := items.Create(ctx, owner.ID, models.CreateItemInput{EventID: event.ID, Name: "  "})
		if !errors.Is(err, models.ErrValidation) {
			t.Errorf("expected ErrValidation for blank name, got %v", err)
		}
		_, err = items.Create(ctx, owner.ID, models.CreateItemInput{EventID: event.ID, Name: "Gelo", TotalCost: -5})
		if !errors.Is(err, models.ErrValidation) {
			t.Errorf("expected ErrValidation for negative cost, got %v", err)
		}
	})
}

type recordingNotifier struct {
	joined chan string
}

func (n *recordingNotifier) ParticipantJoined(event *models.Event, people *models.People) {
	n.joined <- people.Name
}

func TestJoinNotification(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	jwt := auth.NewJWTManager("test-secret", time.Hour)
	people := NewPeopleService(store, jwt)
	notifier := &recordingNotifier{joined: make(chan string, 1)}
	events := NewEventService(store, notifier)

	owner := registerPeople(t, people, "Ana", "51-991110001", models.GenderFemale)
	guest := registerPeople(t, people, "Bruno", "51-991110002", models.GenderMale)

	event, err := events.Create(ctx, owner.ID, models.CreateEventInput{
		Name:    "Festa",
		Date:    "2026-11-20",
		Address: "Rua dos Andradas 10",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	if err := events.AddParticipant(ctx, event.ID, guest.ID, guest.ID, nil); err != nil {
		t.Fatalf("failed to join: %v", err)
	}

	select {
	case name := <-notifier.joined:
		if name != "Bruno" {
			t.Errorf("expected notification for Bruno, got %q", name)
		}
	case <-time.After(2 * time.Second):
		t.Error("expected a join notification")
	}
}
