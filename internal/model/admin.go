package model

// Admin is an administrator account that can manage service requests and
// notices. Passwords are stored only as bcrypt hashes and the hash is never
// serialized into API responses.
type Admin struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
