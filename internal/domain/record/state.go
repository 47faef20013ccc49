package record

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("record not found")

// ===============================
// Soft-delete lifecycle
// ===============================

type State string

const (
	StateActive  State = "active"
	StateDeleted State = "deleted"
)

func StateOf(deletedAt gorm.DeletedAt) State {
	if deletedAt.Valid {
		return StateDeleted
	}
	return StateActive
}

// DeleteOutcome is the result of a delete call. Deleting an entity that is
// already deleted is not an error: AlreadyDeleted is set and Message carries
// the notice to hand back.
type DeleteOutcome struct {
	State          State
	AlreadyDeleted bool
	Message        string
}

func Deleted(message string) DeleteOutcome {
	return DeleteOutcome{State: StateDeleted, Message: message}
}

func AlreadyDeleted(message string) DeleteOutcome {
	return DeleteOutcome{State: StateDeleted, AlreadyDeleted: true, Message: message}
}
