package domain

// User is the persisted credential record. The hash is never serialized
// into any response body.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`
	Hash     string `db:"password_hash" json:"-"`
}
