package types

// User represents a registered account in the planetary API.
//
// The json tags define the exact wire projection: every field listed here,
// and nothing else, crosses the HTTP boundary. The password is stored and
// served in clear text, and the password-retrieval endpoint mails it back
// to the account's address.
type User struct {
	// ID is the unique identifier of the user, generated by the store.
	ID int `json:"id" db:"id"`

	// Firstname is the user's given name, free text.
	Firstname string `json:"firstname" db:"firstname"`

	// Lastname is the user's family name, free text.
	Lastname string `json:"lastname" db:"lastname"`

	// Email is the user's address. It is unique across all users and is
	// the only data invariant the store enforces.
	Email string `json:"email" db:"email"`

	// Password is the credential exactly as supplied at registration.
	Password string `json:"password" db:"password"`
}
