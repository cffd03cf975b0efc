package models

import "errors"

var (
	ErrPeopleNotFound = errors.New("people not found")
	ErrEventNotFound  = errors.New("event not found")
	ErrItemNotFound   = errors.New("item not found")
	ErrInviteNotFound = errors.New("invite not found")
)

var (
	ErrPhoneTaken = errors.New("phone number already registered")
)

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrItemRequired = errors.New("responsibility for a required item cannot be toggled")
	ErrNotMember    = errors.New("person is not a member of this event")
	ErrNotOwner     = errors.New("only the event owner can do this")
)
