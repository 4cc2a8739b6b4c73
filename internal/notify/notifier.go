// Package notify runs the reminder check: a fixed one-minute cadence
// that fires a notification when an event starts in exactly 30 minutes.
// The match is an integer-minute equality, so a coarser cadence or a
// missed tick silently misses the notification; that is the accepted
// contract, not a bug.
package notify

import (
	"context"
	"math"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/mfalcone/calendario/internal/storage"
	"github.com/mfalcone/calendario/internal/util"
)

// LeadMinutes is how far ahead of the event start the reminder fires.
const LeadMinutes = 30

const defaultSpec = "@every 1m"

type Config struct {
	Enabled bool
	Spec    string
}

// Notification is what gets delivered: the event title with its start
// time and entity name. Entity resolves to an empty name when the
// reference dangles.
type Notification struct {
	EventID   int64
	Title     string
	StartTime string
	Entity    string
}

type Notifier struct {
	store   storage.Store
	deliver func(Notification)
	spec    string
	cron    *cron.Cron
}

// New builds a notifier delivering through the given callback. An empty
// spec falls back to the one-minute default.
func New(store storage.Store, spec string, deliver func(Notification)) *Notifier {
	if spec == "" {
		spec = defaultSpec
	}
	return &Notifier{store: store, deliver: deliver, spec: spec}
}

// Start schedules the periodic check. Calling Start on a running
// notifier is a no-op.
func (n *Notifier) Start() error {
	if n.cron != nil {
		return nil
	}
	c := cron.New()
	if _, err := c.AddFunc(n.spec, func() {
		n.Check(context.Background(), time.Now())
	}); err != nil {
		return err
	}
	c.Start()
	n.cron = c
	return nil
}

// Stop halts the timer; used when notifications are disabled.
func (n *Notifier) Stop() {
	if n.cron == nil {
		return
	}
	n.cron.Stop()
	n.cron = nil
}

// Check runs one tick against a fresh snapshot of the collections. The
// timer never mutates shared state, so no locking is needed beyond
// what the store does internally.
func (n *Notifier) Check(ctx context.Context, now time.Time) {
	events, err := n.store.ListEvents(ctx)
	if err != nil {
		log.Errorf("failed to list events for notification check: %v", err)
		return
	}
	entities, err := n.store.ListEntities(ctx)
	if err != nil {
		log.Errorf("failed to list entities for notification check: %v", err)
		return
	}
	names := make(map[int64]string, len(entities))
	for _, ent := range entities {
		names[ent.ID] = ent.Name
	}

	for _, e := range events {
		start, err := util.StartInstant(e.Date, e.StartTime, now.Location())
		if err != nil {
			log.Debugf("skipping event %d with unparsable time: %v", e.ID, err)
			continue
		}
		remaining := int(math.Floor(start.Sub(now).Minutes()))
		if remaining != LeadMinutes {
			continue
		}
		n.deliver(Notification{
			EventID:   e.ID,
			Title:     e.Title,
			StartTime: e.StartTime,
			Entity:    names[e.EntityID],
		})
	}
}
