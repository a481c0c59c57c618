package group

// swagger:parameters createGroup
type _ struct {
	// Create group request body parameter
	// in: body
	// required: true
	Body CreateGroupRequest
}

// swagger:parameters findGroupById joinGroup leaveGroup deleteGroup
type _ struct {
	// in: path
	// required: true
	GroupID uint `json:"groupId"`
}
