// Package i18n holds the two user-facing locales. Italian is the
// default, English the fallback for missing keys.
package i18n

import "golang.org/x/text/language"

const (
	LangEnglish = "en"
	LangItalian = "it"
)

var matcher = language.NewMatcher([]language.Tag{
	language.Italian,
	language.English,
})

// Match narrows an arbitrary BCP 47 preference ("en-US", "it-IT, en")
// to one of the supported locales, defaulting to Italian.
func Match(pref string) string {
	tag, _ := language.MatchStrings(matcher, pref)
	base, _ := tag.Base()
	if base.String() == LangEnglish {
		return LangEnglish
	}
	return LangItalian
}

// T resolves a string id for a language, falling back to English and
// finally to the id itself.
func T(lang, key string) string {
	if table, ok := resources[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := resources[LangEnglish][key]; ok {
		return s
	}
	return key
}

var resources = map[string]map[string]string{
	LangEnglish: {
		"app_name":       "Advanced Calendar",
		"today":          "Today",
		"month":          "Month",
		"week":           "Week",
		"day":            "Day",
		"create_event":   "Create Event",
		"edit_event":     "Edit Event",
		"entities":       "Entities",
		"settings":       "Settings",
		"statistics":     "Statistics",
		"search":         "Search...",
		"no_events":      "No events found",
		"save":           "Save",
		"cancel":         "Cancel",
		"delete":         "Delete",
		"confirm_delete": "Are you sure you want to delete this event?",
		"confirm_save":   "Do you want to save changes?",
		"title":          "Title",
		"date":           "Date",
		"start_time":     "Start Time",
		"end_time":       "End Time",
		"duration":       "Duration",
		"mode":           "Mode",
		"online":         "Online",
		"presence":       "In Presence",
		"location":       "Location",
		"meeting_url":    "Meeting URL",
		"entity":         "Entity",
		"materials":      "Materials",
		"notes":          "Notes",
		"recurrence":     "Recurrence",
		"none":           "None",
		"daily":          "Daily",
		"weekly":         "Weekly",
		"monthly":        "Monthly",
		"yearly":         "Yearly",
	},
	LangItalian: {
		"app_name":       "Calendario Avanzato",
		"today":          "Oggi",
		"month":          "Mese",
		"week":           "Settimana",
		"day":            "Giorno",
		"create_event":   "Crea Evento",
		"edit_event":     "Modifica Evento",
		"entities":       "Enti",
		"settings":       "Impostazioni",
		"statistics":     "Statistiche",
		"search":         "Cerca...",
		"no_events":      "Nessun evento trovato",
		"save":           "Salva",
		"cancel":         "Annulla",
		"delete":         "Elimina",
		"confirm_delete": "Sei sicuro di voler eliminare questo evento?",
		"confirm_save":   "Vuoi salvare le modifiche?",
		"title":          "Titolo",
		"date":           "Data",
		"start_time":     "Orario inizio",
		"end_time":       "Orario fine",
		"duration":       "Durata",
		"mode":           "Modalità",
		"online":         "Online",
		"presence":       "In presenza",
		"location":       "Posizione",
		"meeting_url":    "URL Meeting",
		"entity":         "Ente",
		"materials":      "Materiali necessari",
		"notes":          "Note",
		"recurrence":     "Ricorrenza",
		"none":           "Nessuna",
		"daily":          "Giornaliera",
		"weekly":         "Settimanale",
		"monthly":        "Mensile",
		"yearly":         "Annuale",
	},
}
