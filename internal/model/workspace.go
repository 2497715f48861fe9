package model

import "time"

// Workspace is the root container for tasks. One well-known workspace exists
// by convention (id 1, seeded at startup), but the model supports any number.
type Workspace struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorkspaceUpdate is a partial update; nil fields are left untouched.
type WorkspaceUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
