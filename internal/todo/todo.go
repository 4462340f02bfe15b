package todo

import (
	"context"
	"errors"
	"time"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

var ErrNotFound = errors.New("todo not found")

type Todo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"notblank,max=100"`
	Description string    `json:"description" validate:"max=500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Params holds user supplied attributes. Nil fields are left untouched by
// Apply, which lets the same type serve create and partial update.
type Params struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (p Params) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
}

type Store interface {
	List(ctx context.Context) ([]Todo, error)
	Get(ctx context.Context, id int64) (*Todo, error)
	Create(ctx context.Context, t *Todo) error
	Update(ctx context.Context, t *Todo) error
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
	Close() error
}
