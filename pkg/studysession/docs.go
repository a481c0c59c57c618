package studysession

// swagger:parameters scheduleSession
type _ struct {
	// Schedule session request body parameter
	// in: body
	// required: true
	Body ScheduleSessionRequest
}

// swagger:parameters scheduleSession listSessions
type _ struct {
	// in: path
	// required: true
	GroupID uint `json:"groupId"`
}

// swagger:parameters cancelSession
type _ struct {
	// in: path
	// required: true
	GroupID uint `json:"groupId"`
	// in: path
	// required: true
	SessionID uint `json:"sessionId"`
}
