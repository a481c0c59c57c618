package notification

// swagger:parameters markNotificationsRead
type _ struct {
	// Mark read request body parameter
	// in: body
	// required: true
	Body MarkReadRequest
}

// swagger:parameters listNotifications countUnreadNotifications markNotificationsRead
type _ struct {
	// in: path
	// required: true
	GroupID uint `json:"groupId"`
}

// swagger:parameters deleteNotification
type _ struct {
	// in: path
	// required: true
	GroupID uint `json:"groupId"`
	// in: path
	// required: true
	NotificationID uint `json:"notificationId"`
}
