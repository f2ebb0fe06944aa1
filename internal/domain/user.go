package domain

// User is the rider profile as returned by the remote API.
type User struct {
	ID    UserID
	Email string
	Name  string
}

// Session pairs the opaque auth token with the profile it belongs to.
// The session is owned by the auth coordinator and mirrored by the
// session store.
type Session struct {
	Token string
	User  User
}

// Credentials are the login inputs. They are transient and never
// persisted.
type Credentials struct {
	Email    string
	Password string
}

// Registration is the input for creating a rider account. CPF is
// write-once: it is sent at registration and never stored locally.
type Registration struct {
	Name     string
	Email    string
	CPF      string
	Password string
}
