package domain

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: email %q is not an address", ErrInvalidInput, u.Email)
	}
	return nil
}

// DefaultTaskStatus is the status of a newly added to-do.
const DefaultTaskStatus = "pending"

// Task is a free-standing to-do entry. Unlike ProjectTask its status is an
// open label, not a closed set.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(t.Status) == "" {
		return fmt.Errorf("%w: status is required", ErrInvalidInput)
	}
	return nil
}
