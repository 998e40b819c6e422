package i18n

// catalog maps locale tags to message templates. Keys absent from a
// locale fall back to English at lookup time, so partial tables are
// fine.
var catalog = map[string]map[string]string{
	"en": {
		"ok":                "ok",
		"untitled":          "(untitled)",
		"list.empty":        "no tasks",
		"list.counts":       "%d done, %d open",
		"task.done":         "done",
		"task.open":         "open",
		"show.created":      "created %s",
		"show.updated":      "updated %s",
		"about.description": "A small task list for the terminal and the browser.",
		"relative.now":      "just now",
		"relative.minutes":  "%dm ago",
		"relative.hours":    "%dh ago",
		"relative.days":     "%dd ago",
	},
	"de": {
		"ok":                "ok",
		"untitled":          "(ohne Titel)",
		"list.empty":        "keine Aufgaben",
		"list.counts":       "%d erledigt, %d offen",
		"task.done":         "erledigt",
		"task.open":         "offen",
		"show.created":      "erstellt %s",
		"show.updated":      "aktualisiert %s",
		"about.description": "Eine kleine Aufgabenliste für Terminal und Browser.",
		"relative.now":      "gerade eben",
		"relative.minutes":  "vor %d min",
		"relative.hours":    "vor %d Std",
		"relative.days":     "vor %d Tagen",
	},
	"es": {
		"ok":                "ok",
		"untitled":          "(sin título)",
		"list.empty":        "no hay tareas",
		"list.counts":       "%d hechas, %d pendientes",
		"task.done":         "hecha",
		"task.open":         "pendiente",
		"show.created":      "creada %s",
		"show.updated":      "actualizada %s",
		"about.description": "Una pequeña lista de tareas para la terminal y el navegador.",
		"relative.now":      "ahora mismo",
		"relative.minutes":  "hace %d min",
		"relative.hours":    "hace %d h",
		"relative.days":     "hace %d días",
	},
}

// dateLayouts holds each locale's short date form.
var dateLayouts = map[string]string{
	"en": "Jan 2, 2006",
	"de": "02.01.2006",
	"es": "2/1/2006",
}
