package models

// Gender is the self-reported gender of a person, used only for the
// shopping-statistics breakdown.
type Gender string

const (
	GenderMale        Gender = "Male"
	GenderFemale      Gender = "Female"
	GenderUnspecified Gender = "Unspecified"
)

// Valid reports whether g is one of the known gender values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnspecified:
		return true
	}
	return false
}

// People represents a registered person.
// The phone number is the login key and is unique across the system;
// ID is the stable internal key. A person is immutable after registration.
type People struct {
	// ID is the store-assigned identifier.
	ID int64

	// Name is the display name.
	Name string

	// PhoneNumber is stored normalized as "DD-NNNNNNNNN" (area code, dash,
	// local number) and is unique.
	PhoneNumber string

	// DateOfBirth is an ISO date string (YYYY-MM-DD).
	DateOfBirth string

	// Gender is one of Male, Female or Unspecified.
	Gender Gender
}

// CreatePeopleInput carries the fields accepted at registration.
type CreatePeopleInput struct {
	Name        string
	PhoneNumber string
	DateOfBirth string
	Gender      Gender
}

// PeopleWithEvents is a person annotated with every event they belong to.
type PeopleWithEvents struct {
	People
	Events []EventWithAdmin
}
