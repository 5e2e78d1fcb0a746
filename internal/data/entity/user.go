package entity

// User is an ownership reference only. Signup, login and sessions are
// handled upstream; the booking engine just needs the surrogate id for
// booking ownership and cascade delete.
type User struct {
	Base
	Username string `db:"username"`
	Email    string `db:"email"`
}
