package carteira

import (
	"encoding/json"
	"strings"
)

// ClientType distinguishes investor clients from office (escritório) ones.
type ClientType string

const (
	ClientInvestor ClientType = "INVESTIDOR"
	ClientOffice   ClientType = "ESCRITORIO"
)

// Client is a brokerage client. A client may be linked to zero or many user
// accounts through link entries carrying clientId/userId pairs.
type Client struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"nome"`
	LastName  string     `json:"sobrenome"`
	Type      ClientType `json:"tipo"`
	Document  string     `json:"documento"`
	UserIDs   []int64    `json:"userIds"`
}

// FullName joins the client's first and last names.
func (c Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Role is a user account role.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is an application user account.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// UnmarshalJSON decodes a user record, accepting nome as an alias for name
// and defaulting the role to USER, as older API versions shipped both.
func (u *User) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Nome  string `json:"nome"`
		Email string `json:"email"`
		Role  Role   `json:"role"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	name := raw.Name
	if name == "" {
		name = raw.Nome
	}
	role := raw.Role
	if role == "" {
		role = RoleUser
	}
	*u = User{ID: raw.ID, Name: name, Email: raw.Email, Role: role}
	return nil
}

// IsAdmin reports whether the user has the back-office role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
