package broker

type EventType string

const (
	// Standardized event types in format: <resource>.<action>
	NoteCreated EventType = "note.created"
	NoteUpdated EventType = "note.updated"
	NoteDeleted EventType = "note.deleted"

	NotebookCreated EventType = "notebook.created"
	NotebookUpdated EventType = "notebook.updated"
	NotebookDeleted EventType = "notebook.deleted"

	TagCreated EventType = "tag.created"
	TagUpdated EventType = "tag.updated"
	TagDeleted EventType = "tag.deleted"

	UserCreated EventType = "user.created"
)
