package domain

// User is a storefront account. Passwords are plaintext: this is a mock
// account model, not a security boundary.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// ProfilePatch names the fields a user may change on their own profile.
type ProfilePatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Apply merges the patch into u.
func (pp ProfilePatch) Apply(u *User) {
	if pp.Name != nil {
		u.Name = *pp.Name
	}
	if pp.Email != nil {
		u.Email = *pp.Email
	}
	if pp.Phone != nil {
		u.Phone = *pp.Phone
	}
	if pp.Address != nil {
		u.Address = *pp.Address
	}
}

// Session is the current login state: no user, a user, or an admin user in
// elevated mode.
type Session struct {
	User     *User
	Elevated bool
}

// Authenticated reports whether a user is logged in.
func (s Session) Authenticated() bool {
	return s.User != nil
}
