package core

import (
	"github.com/drone/go-scm/scm"
)

// SCMProvider represents new git scm provider
type SCMProvider interface {
	GetClient() *SCM
}

// SCM is wrapper around scm.Client
type SCM struct {
	Client *scm.Client
	Name   string
}
