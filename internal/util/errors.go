package util

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidTimeRange   = errors.New("end time must be after start time")
	ErrPastDate           = errors.New("date cannot be in the past")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrSchedulingConflict = errors.New("trainer already booked in an overlapping window")
	ErrAlreadyEnrolled    = errors.New("student already enrolled in this training")
	ErrNotATrainer        = errors.New("user does not hold the trainer role")
	ErrNotAssigned        = errors.New("trainer is not assigned to this seance")
	ErrStructureLocked    = errors.New("training structure cannot change once attendance exists")
	ErrNotYetStarted      = errors.New("seance cannot start before its scheduled time")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrNotEligible        = errors.New("enrollment is not eligible for a certificate")
	ErrInvalidRole        = errors.New("unknown role")
	ErrInvalidStatus      = errors.New("unknown status value")
)

// ConflictError carries the window of the seance that blocks scheduling,
// so the caller can show what is occupying the trainer.
type ConflictError struct {
	Date      string
	StartTime string
	EndTime   string
	Title     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("trainer already busy on %s from %s to %s (seance: %s)",
		e.Date, e.StartTime, e.EndTime, e.Title)
}

func (e *ConflictError) Unwrap() error {
	return ErrSchedulingConflict
}
