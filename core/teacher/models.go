package teacher

import "github.com/go-playground/validator/v10"

// Credential is a teacher login. Usernames are not required to be unique.
type Credential struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

// DefaultCredentials is what a store holds before any teacher signed up.
func DefaultCredentials() []Credential {
	return []Credential{{User: "admin", Pass: "admin"}}
}

// Signup contains what a teacher enters to create a login.
type Signup struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (su *Signup) Validate(validate *validator.Validate) error {
	return validate.Struct(su)
}

// Login contains the credentials a teacher presents.
type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (l *Login) Validate(validate *validator.Validate) error {
	return validate.Struct(l)
}
