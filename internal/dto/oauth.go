package dto

// GoogleUserInfo holds the identity claims extracted from a verified Google
// ID token.
type GoogleUserInfo struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}
