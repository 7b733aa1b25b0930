// Package deliverylog contains the audit trail of the dispatch engine.
// Every claim and lifecycle transition appends an Entry in the same atomic unit
// of work as the transition itself. Entries are append-only; the one mutation
// permitted is an author-only revision of the entry's notes inside a hard
// 12-hour window from creation.
package deliverylog

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// EditWindow is the period after an entry's creation during which its author may
// revise the notes. The boundary is a hard cutoff computed from the creation
// time; edits never refresh it.
const EditWindow = 12 * time.Hour

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not created
	// through NewEntry or RestoreEntry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

	// ErrNotAuthor is returned when anyone but the entry's author attempts an edit.
	ErrNotAuthor = errors.New("log entry can only be edited by its author")

	// ErrEditWindowExpired is returned when an edit arrives at or past the
	// EditWindow boundary. The original entry stands unchanged.
	ErrEditWindowExpired = errors.New("log entry edit window has expired")
)

// NewValue captures what a log entry recorded: the status the delivery moved to
// (nil for non-transition events), free-form notes, and an optional photo proof
// URL for completions. An edit is a new revision of this value on the same
// entry, not a new entry.
type NewValue struct {
	Status        *delivery.Status
	Notes         string
	PhotoProofURL string
}

// Entry is one audit record for a delivery.
//
// Entries are immutable by default. EditNotes is the single exception, bounded
// by authorship and the EditWindow.
type Entry struct {
	id          kernel.UUID
	deliveryID  kernel.UUID
	eventType   EventType
	value       NewValue
	createdBy   kernel.UUID
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates an audit entry for a delivery event.
// Appending always succeeds if the referenced delivery exists; validation here
// only covers well-formedness of the entry itself.
func NewEntry(
	id, deliveryID kernel.UUID,
	eventType EventType,
	value NewValue,
	createdBy kernel.UUID,
	now time.Time,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		deliveryID.Validate(),
		eventType.Validate(),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}

	return &Entry{
		id:         id,
		deliveryID: deliveryID,
		eventType:  eventType,
		value:      value,
		createdBy:  createdBy,
		createdAt:  now,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreEntry reconstructs an Entry aggregate from persistent storage.
func RestoreEntry(
	id, deliveryID kernel.UUID,
	eventType EventType,
	value NewValue,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		deliveryID.Validate(),
		eventType.Validate(),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}

	return &Entry{
		id:         id,
		deliveryID: deliveryID,
		eventType:  eventType,
		value:      value,
		createdBy:  createdBy,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Delivery returns the delivery this entry belongs to.
func (e *Entry) Delivery() kernel.UUID {
	return e.deliveryID
}

// Type returns the event type of the entry.
func (e *Entry) Type() EventType {
	return e.eventType
}

// Value returns the recorded value of the entry.
func (e *Entry) Value() NewValue {
	return e.value
}

// CreatedBy returns the user who created the entry and the only one allowed to
// edit it.
func (e *Entry) CreatedBy() kernel.UUID {
	return e.createdBy
}

// CreatedAt returns the creation time. The edit window is computed from it.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// EditNotes revises the notes of the entry in place.
//
// Succeeds only if actorID is the entry's author and now is strictly inside the
// EditWindow from CreatedAt. The window is a hard cutoff: an edit at
// createdAt+11h59m succeeds, one at createdAt+12h fails, and successful edits
// do not extend it.
func (e *Entry) EditNotes(actorID kernel.UUID, notes string, now time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if !e.createdBy.IsEqual(actorID) {
		return ErrNotAuthor
	}
	if !now.Before(e.createdAt.Add(EditWindow)) {
		return ErrEditWindowExpired
	}

	e.value.Notes = notes
	return nil
}
