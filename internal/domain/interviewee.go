package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IntervieweeStatus pipeline state of a candidate
type IntervieweeStatus string

const (
	IntervieweeNew        IntervieweeStatus = "NEW"
	IntervieweeContacted  IntervieweeStatus = "CONTACTED"
	IntervieweeScheduled  IntervieweeStatus = "SCHEDULED"
	IntervieweeInProgress IntervieweeStatus = "IN_PROGRESS"
	IntervieweeRejected   IntervieweeStatus = "REJECTED"
	IntervieweeCompleted  IntervieweeStatus = "COMPLETED"
)

// IsValid returns true if the status is a known pipeline state
func (s IntervieweeStatus) IsValid() bool {
	switch s {
	case IntervieweeNew, IntervieweeContacted, IntervieweeScheduled,
		IntervieweeInProgress, IntervieweeRejected, IntervieweeCompleted:
		return true
	}
	return false
}

// IsTerminal returns true for REJECTED and COMPLETED
func (s IntervieweeStatus) IsTerminal() bool {
	return s == IntervieweeRejected || s == IntervieweeCompleted
}

// RoundResult outcome of an interview round
type RoundResult string

const (
	RoundPass RoundResult = "PASS"
	RoundFail RoundResult = "FAIL"
)

// IsValid returns true for PASS and FAIL
func (r RoundResult) IsValid() bool {
	return r == RoundPass || r == RoundFail
}

var (
	ErrNotSchedulable    = errors.New("interviewee status does not allow scheduling")
	ErrNotInProgress     = errors.New("interviewee is not in progress")
	ErrInvalidTransition = errors.New("invalid interviewee status transition")
)

const systemNotePrefix = "[SYSTEM] "

// Формат даты и времени в системных заметках
const (
	noteDateFormat = "January 2, 2006"
	noteTimeFormat = "3:04 PM"
)

// Interviewee candidate moving through the interview pipeline of a tenant
type Interviewee struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Name         string
	Email        string
	Status       IntervieweeStatus
	CurrentRound int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IntervieweeNote immutable timestamped note attached to a candidate
type IntervieweeNote struct {
	ID            uuid.UUID
	IntervieweeID uuid.UUID
	TenantID      uuid.UUID
	AuthorID      *uuid.UUID // nil для системных заметок
	Content       string
	IsSystem      bool
	CreatedAt     time.Time
}

// Transition result of a pipeline state change
type Transition struct {
	From      IntervieweeStatus
	To        IntervieweeStatus
	FromRound int
	ToRound   int
	Note      string
}

// CanBeScheduled returns true if a booking may be attached to the candidate
func (i *Interviewee) CanBeScheduled() bool {
	switch i.Status {
	case IntervieweeContacted, IntervieweeScheduled, IntervieweeInProgress:
		return true
	}
	return false
}

// ApplyBooking advances the candidate after a booking was admitted
// CONTACTED/SCHEDULED -> IN_PROGRESS round 1, IN_PROGRESS -> next round
func (i *Interviewee) ApplyBooking(interviewerName string, start time.Time) (Transition, error) {
	if !i.CanBeScheduled() {
		return Transition{}, ErrNotSchedulable
	}

	tr := Transition{From: i.Status, FromRound: i.CurrentRound}
	when := fmt.Sprintf("%s on %s at %s", interviewerName, start.Format(noteDateFormat), start.Format(noteTimeFormat))

	if i.Status == IntervieweeInProgress {
		i.CurrentRound++
		tr.Note = systemNotePrefix + fmt.Sprintf("Interview for round %d scheduled with %s.", i.CurrentRound, when)
	} else {
		i.Status = IntervieweeInProgress
		i.CurrentRound = 1
		tr.Note = systemNotePrefix + fmt.Sprintf("Interview scheduled with %s. Status updated to %s, starting round 1.", when, IntervieweeInProgress)
	}

	tr.To = i.Status
	tr.ToRound = i.CurrentRound
	return tr, nil
}

// ApplyRoundResult records the outcome of the current round
// PASS before the final round -> next round, PASS at the final round -> COMPLETED, FAIL -> REJECTED
func (i *Interviewee) ApplyRoundResult(result RoundResult) (Transition, error) {
	if i.Status != IntervieweeInProgress {
		return Transition{}, ErrNotInProgress
	}

	tr := Transition{From: i.Status, FromRound: i.CurrentRound}

	switch result {
	case RoundPass:
		if i.CurrentRound >= FinalRound {
			i.Status = IntervieweeCompleted
			tr.Note = systemNotePrefix + fmt.Sprintf("Round %d PASS. Status updated to %s.", tr.FromRound, IntervieweeCompleted)
		} else {
			i.CurrentRound++
			tr.Note = systemNotePrefix + fmt.Sprintf("Round %d PASS. Advancing to round %d.", tr.FromRound, i.CurrentRound)
		}
	case RoundFail:
		i.Status = IntervieweeRejected
		tr.Note = systemNotePrefix + fmt.Sprintf("Round %d FAIL. Status updated to %s.", tr.FromRound, IntervieweeRejected)
	default:
		return Transition{}, ErrInvalidTransition
	}

	tr.To = i.Status
	tr.ToRound = i.CurrentRound
	return tr, nil
}

// ChangeStatus manual status change by a recruiter
// Moving to IN_PROGRESS from CONTACTED or SCHEDULED starts round 1
func (i *Interviewee) ChangeStatus(to IntervieweeStatus) (Transition, error) {
	if !to.IsValid() || to == i.Status {
		return Transition{}, ErrInvalidTransition
	}

	tr := Transition{From: i.Status, FromRound: i.CurrentRound}

	if to == IntervieweeInProgress && (i.Status == IntervieweeContacted || i.Status == IntervieweeScheduled) {
		i.CurrentRound = 1
	}
	i.Status = to

	tr.To = i.Status
	tr.ToRound = i.CurrentRound
	tr.Note = systemNotePrefix + fmt.Sprintf("Status changed from %s to %s", tr.From, tr.To)
	return tr, nil
}

// NewSystemNote builds a system authored note for the candidate
func NewSystemNote(interviewee *Interviewee, content string, now time.Time) *IntervieweeNote {
	return &IntervieweeNote{
		ID:            uuid.New(),
		IntervieweeID: interviewee.ID,
		TenantID:      interviewee.TenantID,
		Content:       content,
		IsSystem:      true,
		CreatedAt:     now,
	}
}

// NewUserNote builds a note authored by a user
func NewUserNote(interviewee *Interviewee, authorID uuid.UUID, content string, now time.Time) *IntervieweeNote {
	return &IntervieweeNote{
		ID:            uuid.New(),
		IntervieweeID: interviewee.ID,
		TenantID:      interviewee.TenantID,
		AuthorID:      &authorID,
		Content:       content,
		CreatedAt:     now,
	}
}
