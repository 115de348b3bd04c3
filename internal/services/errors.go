package services

import "errors"

var (
	// ErrEventNotFound is returned when a referenced event does not exist
	ErrEventNotFound = errors.New("event not found")

	// ErrParticipantNotFound is returned when a referenced participant does not exist
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrMatchNotFound is returned when an event has no draw result yet
	ErrMatchNotFound = errors.New("no draw has been run for this event")

	// ErrInsufficientParticipants is returned when a draw is attempted
	// with fewer than two participants
	ErrInsufficientParticipants = errors.New("need at least two participants to draw")

	// ErrDrawComputationFailed is returned when no non-self assignment was
	// found within the retry bound
	ErrDrawComputationFailed = errors.New("could not compute non-self assignments")
)
