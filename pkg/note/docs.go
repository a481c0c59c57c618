package note

// swagger:parameters createNote updateNote
type _ struct {
	// Note request body parameter
	// in: body
	// required: true
	Body SaveNoteRequest
}

// swagger:parameters createNote listNotes
type _ struct {
	// in: path
	// required: true
	GroupID uint `json:"groupId"`
}

// swagger:parameters updateNote deleteNote
type _ struct {
	// in: path
	// required: true
	GroupID uint `json:"groupId"`
	// in: path
	// required: true
	NoteID uint `json:"noteId"`
}
