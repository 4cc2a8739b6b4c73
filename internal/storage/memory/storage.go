package memorystorage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mfalcone/calendario/internal/storage"
)

type Storage struct {
	storage.Subscriptions

	mu        sync.RWMutex
	events    map[int64]storage.Event
	entities  map[int64]storage.Entity
	settings  map[string]storage.Setting
	eventSeq  int64
	entitySeq int64
}

func New() *Storage {
	return &Storage{
		events:   make(map[int64]storage.Event),
		entities: make(map[int64]storage.Entity),
		settings: make(map[string]storage.Setting),
	}
}

// Connect seeds the defaults when the entity collection is empty. A
// populated store is never reseeded.
func (s *Storage) Connect(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entities) > 0 {
		return nil
	}
	for _, e := range storage.DefaultEntities() {
		s.entitySeq++
		e.ID = s.entitySeq
		s.entities[e.ID] = e
	}
	for _, set := range storage.DefaultSettings() {
		if _, ok := s.settings[set.Key]; !ok {
			s.settings[set.Key] = set
		}
	}
	return nil
}

func (s *Storage) Close(_ context.Context) error {
	return nil
}

func (s *Storage) AddEvent(_ context.Context, e *storage.Event) error {
	s.mu.Lock()
	if e.ID == 0 {
		s.eventSeq++
		e.ID = s.eventSeq
	} else if e.ID > s.eventSeq {
		s.eventSeq = e.ID
	}
	s.events[e.ID] = *e
	s.mu.Unlock()

	s.Notify(storage.CollectionEvents)
	return nil
}

func (s *Storage) UpdateEvent(_ context.Context, id int64, patch storage.EventPatch) error {
	s.mu.Lock()
	e, ok := s.events[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("failed to update event with id %d: %w", id, storage.ErrNotFound)
	}
	patch.Apply(&e)
	s.events[id] = e
	s.mu.Unlock()

	s.Notify(storage.CollectionEvents)
	return nil
}

func (s *Storage) RemoveEvent(_ context.Context, id int64) error {
	s.mu.Lock()
	if _, ok := s.events[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("failed to remove event with id %d: %w", id, storage.ErrNotFound)
	}
	delete(s.events, id)
	s.mu.Unlock()

	s.Notify(storage.CollectionEvents)
	return nil
}

func (s *Storage) ListEvents(_ context.Context) ([]storage.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]storage.Event, 0, len(s.events))
	for _, e := range s.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (s *Storage) AddEntity(_ context.Context, e *storage.Entity) error {
	s.mu.Lock()
	for _, existing := range s.entities {
		if existing.Name == e.Name {
			s.mu.Unlock()
			return fmt.Errorf("duplicate name %q: %w", e.Name, storage.ErrDuplicateEntityName)
		}
	}
	if e.ID == 0 {
		s.entitySeq++
		e.ID = s.entitySeq
	} else if e.ID > s.entitySeq {
		s.entitySeq = e.ID
	}
	s.entities[e.ID] = *e
	s.mu.Unlock()

	s.Notify(storage.CollectionEntities)
	return nil
}

// UpdateEntity writes a rename without re-checking name uniqueness;
// uniqueness holds at creation time only.
func (s *Storage) UpdateEntity(_ context.Context, id int64, patch storage.EntityPatch) error {
	s.mu.Lock()
	e, ok := s.entities[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("failed to update entity with id %d: %w", id, storage.ErrNotFound)
	}
	patch.Apply(&e)
	s.entities[id] = e
	s.mu.Unlock()

	s.Notify(storage.CollectionEntities)
	return nil
}

// RemoveEntity never cascades; events keep their entityId and consumers
// fall back to a default color for the dangling reference.
func (s *Storage) RemoveEntity(_ context.Context, id int64) error {
	s.mu.Lock()
	if _, ok := s.entities[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("failed to remove entity with id %d: %w", id, storage.ErrNotFound)
	}
	delete(s.entities, id)
	s.mu.Unlock()

	s.Notify(storage.CollectionEntities)
	return nil
}

func (s *Storage) ListEntities(_ context.Context) ([]storage.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entities := make([]storage.Entity, 0, len(s.entities))
	for _, e := range s.entities {
		entities = append(entities, e)
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
	return entities, nil
}

func (s *Storage) GetEntity(_ context.Context, id int64) (storage.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entities[id]
	if !ok {
		return storage.Entity{}, fmt.Errorf("failed to get entity with id %d: %w", id, storage.ErrNotFound)
	}
	return e, nil
}

func (s *Storage) GetSetting(_ context.Context, key string) (storage.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.settings[key]
	if !ok {
		return storage.Setting{}, fmt.Errorf("failed to get setting %q: %w", key, storage.ErrNotFound)
	}
	return set, nil
}

func (s *Storage) PutSetting(_ context.Context, key string, value string) error {
	s.mu.Lock()
	s.settings[key] = storage.Setting{Key: key, Value: value}
	s.mu.Unlock()

	s.Notify(storage.CollectionSettings)
	return nil
}

func (s *Storage) ListSettings(_ context.Context) ([]storage.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settings := make([]storage.Setting, 0, len(s.settings))
	for _, set := range s.settings {
		settings = append(settings, set)
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })
	return settings, nil
}
