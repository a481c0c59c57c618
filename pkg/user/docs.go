package user

// swagger:parameters signUp
type _ struct {
	// Sign up request body parameter
	// in: body
	// required: true
	Body SignUpRequest
}

// swagger:parameters refreshToken
type _ struct {
	// Refresh token request body parameter
	// in: body
	Body RefreshTokenRequest
}

// swagger:parameters validateEmail
type _ struct {
	// in: path
	// required: true
	Token string `json:"token"`
}
