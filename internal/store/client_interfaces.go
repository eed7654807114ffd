package store

import (
	"context"

	"github.com/mzhurov/postboard/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository stores the client's authenticated session locally so a
// login survives between command invocations.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}
