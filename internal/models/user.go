package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// User represents a registered account. The vault has a single distinguished
// owner account (matched by email) empowered to publish works and moderate
// comments; everyone else is a reader.
type User struct {
	UID               string `json:"uid"`
	Email             string `json:"email"`
	DisplayName       string `json:"displayName,omitempty"`
	Bio               string `json:"bio,omitempty"`
	ProfileID         string `json:"profileId,omitempty"` // immutable once set
	ProfilePictureURL string `json:"profilePictureURL,omitempty"`
}

// SignUpRequest defines the request body for registration
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignInRequest defines the request body for authentication
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries a partial profile update. ProfileID is bound
// here so that clients sending it get it stripped rather than rejected.
type UpdateProfileRequest struct {
	DisplayName       string `json:"displayName,omitempty" validate:"omitempty,min=1,max=80"`
	Bio               string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	ProfileID         string `json:"profileId,omitempty"`
	ProfilePictureURL string `json:"profilePictureURL,omitempty" validate:"omitempty,url"`
}

// UpdatePasswordRequest defines the request body for a password change
type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// ForgotPasswordRequest defines the request body for a password reset
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// FirebaseLoginRequest defines the request body for Firebase token bridging
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// SessionClaims are custom claims extending standard jwt.RegisteredClaims.
// The ID (jti) links the token to its server-side session record, so signing
// out actually revokes the token.
type SessionClaims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}
