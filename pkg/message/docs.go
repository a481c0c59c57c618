package message

// swagger:parameters postMessage
type _ struct {
	// Post message request body parameter
	// in: body
	// required: true
	Body PostMessageRequest
}

// swagger:parameters postMessage listMessages
type _ struct {
	// in: path
	// required: true
	GroupID uint `json:"groupId"`
}
