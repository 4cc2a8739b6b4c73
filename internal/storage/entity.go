package storage

// DefaultEntityColor is used wherever an event references an entity that
// no longer exists. Entity deletion does not cascade to events, so
// dangling references are expected and resolved to this color.
const DefaultEntityColor = "#94a3b8"

// Entity is a named category events are tagged with. Name uniqueness is
// enforced on creation only; renames are written without a re-check.
type Entity struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Color string `db:"color" json:"color"`
}

type EntityPatch struct {
	Name  *string
	Color *string
}

func (p EntityPatch) Apply(e *Entity) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
}

// DefaultEntities is the seed list written when the entity collection is
// found empty on first open.
func DefaultEntities() []Entity {
	return []Entity{
		{Name: "Lavoro", Color: "#1976D2"},
		{Name: "Personale", Color: "#388E3C"},
		{Name: "Salute", Color: "#D32F2F"},
		{Name: "Studio", Color: "#F57C00"},
		{Name: "Progetti", Color: "#7B1FA2"},
		{Name: "Urgenti", Color: "#C2185B"},
	}
}
