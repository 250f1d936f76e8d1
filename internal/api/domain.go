package api

import (
	"github.com/padronapp/padron/internal/users"
)

// Domain holds the domain systems that comprise the API.
type Domain struct {
	Users users.System
}

// NewDomain creates the domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	usersSystem := users.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Users: usersSystem,
	}
}
