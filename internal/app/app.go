package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mfalcone/calendario/internal/storage"
	"github.com/mfalcone/calendario/internal/util"
)

// App owns the domain operations on top of the store: validation,
// derived fields and the settings mirrors. It keeps no copy of the
// collections; every read goes back to the store.
type App struct {
	Storage storage.Store
}

func New(storage storage.Store) *App {
	return &App{Storage: storage}
}

// EventInput is the form payload of the event editor. A zero ID means
// create, any other value updates the existing record.
type EventInput struct {
	ID         int64
	Title      string
	Date       string
	StartTime  string
	EndTime    string
	Mode       string
	Location   string
	MeetingURL string
	EntityID   int64
	Materials  string
	Notes      string
	Recurrence string
}

// CreateOrUpdateEvent validates the input, derives the duration and
// writes through the store. Duration is endTime minus startTime with
// both interpreted on a common reference day: when endTime precedes
// startTime the result is negative and is stored as such. Ranges
// crossing midnight are a known unhandled edge case, not corrected
// here. Returns the id of the stored event.
func (a *App) CreateOrUpdateEvent(ctx context.Context, input EventInput) (int64, error) {
	if input.Title == "" {
		return 0, fmt.Errorf("title is required: %w", storage.ErrValidation)
	}
	if input.EntityID == 0 {
		return 0, fmt.Errorf("entity is required: %w", storage.ErrValidation)
	}

	start, err := util.MinutesOfDay(input.StartTime)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, storage.ErrValidation)
	}
	end, err := util.MinutesOfDay(input.EndTime)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, storage.ErrValidation)
	}
	if _, err := util.ParseDate(input.Date); err != nil {
		return 0, fmt.Errorf("%v: %w", err, storage.ErrValidation)
	}

	duration := end - start
	recurrence := input.Recurrence
	if recurrence == "" {
		recurrence = storage.RecurrenceNone
	}
	now := time.Now().UnixMilli()

	if input.ID == 0 {
		e := storage.Event{
			Title:      input.Title,
			Date:       input.Date,
			StartTime:  input.StartTime,
			EndTime:    input.EndTime,
			Duration:   duration,
			Mode:       input.Mode,
			Location:   input.Location,
			MeetingURL: input.MeetingURL,
			EntityID:   input.EntityID,
			Materials:  input.Materials,
			Notes:      input.Notes,
			Recurrence: recurrence,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := a.Storage.AddEvent(ctx, &e); err != nil {
			return 0, err
		}
		return e.ID, nil
	}

	patch := storage.EventPatch{
		Title:      &input.Title,
		Date:       &input.Date,
		StartTime:  &input.StartTime,
		EndTime:    &input.EndTime,
		Duration:   &duration,
		Mode:       &input.Mode,
		Location:   &input.Location,
		MeetingURL: &input.MeetingURL,
		EntityID:   &input.EntityID,
		Materials:  &input.Materials,
		Notes:      &input.Notes,
		Recurrence: &recurrence,
		UpdatedAt:  &now,
	}
	if err := a.Storage.UpdateEvent(ctx, input.ID, patch); err != nil {
		return 0, err
	}
	return input.ID, nil
}

func (a *App) RemoveEvent(ctx context.Context, id int64) error {
	return a.Storage.RemoveEvent(ctx, id)
}

func (a *App) ListEvents(ctx context.Context) ([]storage.Event, error) {
	return a.Storage.ListEvents(ctx)
}

func (a *App) CreateEntity(ctx context.Context, name, color string) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("name is required: %w", storage.ErrValidation)
	}
	e := storage.Entity{Name: name, Color: color}
	if err := a.Storage.AddEntity(ctx, &e); err != nil {
		return 0, err
	}
	return e.ID, nil
}

// RenameEntity writes the new name directly; uniqueness was checked at
// creation only and is deliberately not re-checked here.
func (a *App) RenameEntity(ctx context.Context, id int64, name string) error {
	return a.Storage.UpdateEntity(ctx, id, storage.EntityPatch{Name: &name})
}

func (a *App) RecolorEntity(ctx context.Context, id int64, color string) error {
	return a.Storage.UpdateEntity(ctx, id, storage.EntityPatch{Color: &color})
}

// RemoveEntity deletes the entity only. Events referencing it are left
// unchanged; consumers resolve the dangling reference to a default.
func (a *App) RemoveEntity(ctx context.Context, id int64) error {
	return a.Storage.RemoveEntity(ctx, id)
}

func (a *App) ListEntities(ctx context.Context) ([]storage.Entity, error) {
	return a.Storage.ListEntities(ctx)
}

// Filter selects events by entity membership and free-text search.
// An empty EntityIDs set means all entities; an empty Search matches
// everything.
type Filter struct {
	EntityIDs []int64
	Search    string
}

// FilterEvents applies the filter predicate. It is pure and idempotent:
// filtering an already-filtered result with the same filter returns the
// same set.
func FilterEvents(events []storage.Event, f Filter) []storage.Event {
	matched := make([]storage.Event, 0, len(events))
	search := strings.ToLower(f.Search)
	for _, e := range events {
		if len(f.EntityIDs) > 0 && !containsID(f.EntityIDs, e.EntityID) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.Notes), search) {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (a *App) Theme(ctx context.Context) string {
	return a.settingOr(ctx, storage.SettingTheme, storage.ThemeLight)
}

func (a *App) SetTheme(ctx context.Context, theme string) error {
	return a.Storage.PutSetting(ctx, storage.SettingTheme, theme)
}

func (a *App) Language(ctx context.Context) string {
	return a.settingOr(ctx, storage.SettingLanguage, "it")
}

func (a *App) SetLanguage(ctx context.Context, lang string) error {
	return a.Storage.PutSetting(ctx, storage.SettingLanguage, lang)
}

func (a *App) NotificationsEnabled(ctx context.Context) bool {
	return a.settingOr(ctx, storage.SettingNotifications, "true") == "true"
}

func (a *App) SetNotificationsEnabled(ctx context.Context, enabled bool) error {
	value := "false"
	if enabled {
		value = "true"
	}
	return a.Storage.PutSetting(ctx, storage.SettingNotifications, value)
}

func (a *App) settingOr(ctx context.Context, key, fallback string) string {
	set, err := a.Storage.GetSetting(ctx, key)
	if err != nil {
		return fallback
	}
	return set.Value
}
