package models

import "time"

// Location is an optional latitude/longitude pair attached to a todo.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Todo is a task record owned by a single user. All reads and writes are
// scoped by UserID.
type Todo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Location  *Location `json:"location,omitempty"`
	PhotoURI  string    `json:"photoUri,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TodoPatch carries a partial update. Nil fields are left untouched.
type TodoPatch struct {
	Title     *string   `json:"title"`
	Completed *bool     `json:"completed"`
	Location  *Location `json:"location"`
	PhotoURI  *string   `json:"photoUri"`
}
