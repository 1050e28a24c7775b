package models

// User is the persisted account entity as it is read back from storage.
// The Password field holds the bcrypt digest, never the plaintext; it is
// echoed back in API responses so callers can tell the credential was
// transformed, but it cannot be reversed.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the given name of the user.
	Name string `json:"name"`

	// Surname is the family name of the user.
	Surname string `json:"surname"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// Password is the bcrypt digest of the user's password.
	Password string `json:"password"`
}

// UserIn is the inbound shape for creating or fully replacing a user.
// Password arrives in plaintext and is hashed by the service layer before
// it ever reaches the repository.
type UserIn struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
