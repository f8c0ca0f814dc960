package core

import (
	"context"
	"taskboard/internal/repository"
	sessionIssuer "taskboard/pkg/token"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CredentialStore . CredentialStore
type CredentialStore interface {
	Insert(ctx context.Context, username, passwordHash, role string) (repository.User, error)
	FindByCredentials(ctx context.Context, username, passwordHash string) (repository.User, error)
	List(ctx context.Context) ([]repository.User, error)
	Delete(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name ProjectStore . ProjectStore
type ProjectStore interface {
	Insert(ctx context.Context, project repository.Project) (repository.Project, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]repository.Project, error)
	SetCompleted(ctx context.Context, id uint, completed bool) error
	Delete(ctx context.Context, id uint) error
	DeleteByOwner(ctx context.Context, ownerID uint) error
}

//counterfeiter:generate -o fake -fake-name SessionIssuer . SessionIssuer
type SessionIssuer interface {
	Generate(data sessionIssuer.SessionInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
