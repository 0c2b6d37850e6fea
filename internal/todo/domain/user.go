package domain

import "time"

// LoginType records how an account authenticates.
type LoginType string

const (
	LoginTypeEmailPassword LoginType = "email_password"
	LoginTypeGoogle        LoginType = "google"
	LoginTypeGitHub        LoginType = "github"
)

func (t LoginType) Valid() bool {
	switch t {
	case LoginTypeEmailPassword, LoginTypeGoogle, LoginTypeGitHub:
		return true
	}
	return false
}

// User is the stored account. Token fields hold SHA-256 hashes, never the
// plaintext handed to the client.
type User struct {
	ID              string
	Email           string
	Username        string
	LoginType       LoginType
	ProfilePicture  *string
	PasswordHash    string // bcrypt
	IsEmailVerified bool

	RefreshTokenHash *string

	EmailVerificationTokenHash *string
	EmailVerificationExpiresAt *time.Time

	ForgotPasswordTokenHash *string
	ForgotPasswordExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicUser is the only shape of a user that leaves the service.
type PublicUser struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	LoginType       LoginType `json:"loginType"`
	ProfilePicture  *string   `json:"profilePicture"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:              u.ID,
		Email:           u.Email,
		Username:        u.Username,
		LoginType:       u.LoginType,
		ProfilePicture:  u.ProfilePicture,
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
