package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/Joaolrm/quantodeu/internal/auth"
	"github.com/Joaolrm/quantodeu/internal/models"
	"github.com/Joaolrm/quantodeu/internal/storage"
)

// PeopleService handles registration and phone-based login.
type PeopleService struct {
	store storage.Store
	jwt   *auth.JWTManager
}

// NewPeopleService creates a PeopleService.
func NewPeopleService(store storage.Store, jwt *auth.JWTManager) *PeopleService {
	return &PeopleService{store: store, jwt: jwt}
}

// Register creates a person and returns them with a fresh session token.
func (s *PeopleService) Register(ctx context.Context, input models.CreatePeopleInput) (*models.People, string, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, "", fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if input.DateOfBirth == "" {
		return nil, "", fmt.Errorf("%w: dateOfBirth is required", models.ErrValidation)
	}
	if input.Gender == "" {
		input.Gender = models.GenderUnspecified
	}
	if !input.Gender.Valid() {
		return nil, "", fmt.Errorf("%w: gender must be Male, Female or Unspecified", models.ErrValidation)
	}

	phone, err := NormalizePhone(input.PhoneNumber)
	if err != nil {
		return nil, "", err
	}

	people := &models.People{
		Name:        strings.TrimSpace(input.Name),
		PhoneNumber: phone,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
	}
	if err := s.store.CreatePeople(ctx, people); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.Generate(people)
	if err != nil {
		return nil, "", err
	}
	return people, token, nil
}

// Login issues a session token for an already registered phone number.
func (s *PeopleService) Login(ctx context.Context, phoneNumber string) (*models.People, string, error) {
	phone, err := NormalizePhone(phoneNumber)
	if err != nil {
		return nil, "", err
	}

	people, err := s.store.GetPeopleByPhone(ctx, phone)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwt.Generate(people)
	if err != nil {
		return nil, "", err
	}
	return people, token, nil
}

// EventsByPhone returns the person behind a phone number together with every
// event they own or joined, each annotated with the admin flag.
func (s *PeopleService) EventsByPhone(ctx context.Context, phoneNumber string) (*models.PeopleWithEvents, error) {
	phone, err := NormalizePhone(phoneNumber)
	if err != nil {
		return nil, err
	}

	people, err := s.store.GetPeopleByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	events, err := s.store.ListEventsByPeople(ctx, people.ID)
	if err != nil {
		return nil, err
	}

	return &models.PeopleWithEvents{People: *people, Events: events}, nil
}

// List returns every registered person, for owner-side participant pickers.
func (s *PeopleService) List(ctx context.Context) ([]models.People, error) {
	return s.store.ListPeople(ctx)
}

// NormalizePhone reduces a phone number to the stored "DD-NNNNNNNNN" form:
// digits only, the Brazilian country prefix 55 stripped, and the two-digit
// area code separated by a dash.
func NormalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	cleaned := strings.TrimPrefix(digits.String(), "55")

	if len(cleaned) < 10 {
		return "", fmt.Errorf("%w: phone number must have area code and number", models.ErrValidation)
	}
	return cleaned[:2] + "-" + cleaned[2:], nil
}
