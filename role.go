package vibe

// Role represents the author of a transcript message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)
