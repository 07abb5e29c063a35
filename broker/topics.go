package broker

const (
	UserSubject     = "notelist.users"
	NotebookSubject = "notelist.notebooks"
	NoteSubject     = "notelist.notes"
	TagSubject      = "notelist.tags"
	DefaultSubject  = "notelist.events"
)

// SubjectForEntity maps an event entity ("note", "tag", ...) to the subject
// its events are published on.
func SubjectForEntity(entity string) string {
	switch entity {
	case "note":
		return NoteSubject
	case "notebook":
		return NotebookSubject
	case "tag":
		return TagSubject
	case "user":
		return UserSubject
	default:
		return DefaultSubject
	}
}
