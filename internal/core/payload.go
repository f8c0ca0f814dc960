package core

import (
	"github.com/jellydator/validation"
)

type RegisterInput struct {
	Username string
	Password string
	Role     string
}

// Validate checks the required fields. The role is validated separately by
// ParseRole so its closed-enum error keeps its own identity.
func (r RegisterInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type ProjectInput struct {
	OwnerID          uint
	Name             string
	Type             string
	StartDate        string
	EndDate          string
	AttachedFilePath string
}

// Dates are stored as typed in, dd.mm.yyyy or otherwise. Parse-ability is
// only checked when deadlines are evaluated, never at insert time.
func (p ProjectInput) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
	)
}
