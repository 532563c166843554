package models

import (
	"time"

	"github.com/DevHugoP/sightToScript/pkg/tree"
)

// SavedStructure is a named tree kept in the local store.
type SavedStructure struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Structure   *tree.Node `json:"-"`
	Fingerprint string     `json:"fingerprint"` // shape hash of Structure
	Folders     int        `json:"folders"`
	Files       int        `json:"files"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// StructureUpdate carries the fields to change on a saved structure.
// Nil fields are left as they are.
type StructureUpdate struct {
	Name      *string
	Structure *tree.Node
}
