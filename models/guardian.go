package models

import "time"

// Guardian is a registered parent/guardian account. Credits is the wallet
// balance consumed by bookings (one unit per child per activity credit cost).
type Guardian struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Credits      int       `bson:"credits" json:"credits"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// GuardianRegistration is the signup payload.
type GuardianRegistration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FCMToken string `json:"fcmToken,omitempty"`
}

// GuardianUpdate carries the mutable profile fields.
type GuardianUpdate struct {
	Name     string `json:"name,omitempty"`
	FCMToken string `json:"fcmToken,omitempty"`
}
