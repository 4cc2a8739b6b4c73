package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateEntityName = errors.New("entity with same name exists")
	ErrValidation          = errors.New("validation failed")
	ErrConnectionFailed    = errors.New("failed to open storage")
)

type Collection string

const (
	CollectionEvents   Collection = "events"
	CollectionEntities Collection = "entities"
	CollectionSettings Collection = "settings"
)

// Store is the durable home of the three record collections. Every
// mutation notifies subscribers of the touched collection after it
// succeeds; reads always hit the underlying data, never a cached copy.
type Store interface {
	Connect(ctx context.Context) error
	Close(ctx context.Context) error

	AddEvent(ctx context.Context, e *Event) error
	UpdateEvent(ctx context.Context, id int64, patch EventPatch) error
	RemoveEvent(ctx context.Context, id int64) error
	ListEvents(ctx context.Context) ([]Event, error)

	AddEntity(ctx context.Context, e *Entity) error
	UpdateEntity(ctx context.Context, id int64, patch EntityPatch) error
	RemoveEntity(ctx context.Context, id int64) error
	ListEntities(ctx context.Context) ([]Entity, error)
	GetEntity(ctx context.Context, id int64) (Entity, error)

	GetSetting(ctx context.Context, key string) (Setting, error)
	PutSetting(ctx context.Context, key string, value string) error
	ListSettings(ctx context.Context) ([]Setting, error)

	Subscribe(c Collection, fn func()) (cancel func())
}
