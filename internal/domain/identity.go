package domain

import "time"

// Identity is the authenticated caller. A nil *Identity means the request
// carries no valid session.
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}

// User is an account record written by the social-login flow.
type User struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Name      string    `bson:"name,omitempty"`
	Image     *string   `bson:"image,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Session is a server-side login session addressed by its opaque token.
type Session struct {
	Token     string    `bson:"token"`
	UserID    string    `bson:"userId"`
	ExpiresAt time.Time `bson:"expiresAt"`
	CreatedAt time.Time `bson:"createdAt"`
	UserAgent string    `bson:"userAgent,omitempty"`
	IPAddress string    `bson:"ipAddress,omitempty"`
}
