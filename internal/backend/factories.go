package backend

import (
	"context"

	"github.com/jonathan/interview-prep/internal/auth"
	"github.com/jonathan/interview-prep/internal/store"
)

// PostgresStore returns a StoreFactory that connects to databaseURL.
func PostgresStore(databaseURL string) StoreFactory {
	return func(ctx context.Context, _ Credentials) (DocumentStore, error) {
		return store.Connect(ctx, databaseURL)
	}
}

// SessionAuth returns an AuthFactory producing a session service that reads
// users from the document store.
func SessionAuth(cookieName string) AuthFactory {
	return func(creds Credentials, docs DocumentStore) (Authenticator, error) {
		return auth.NewSessionService(creds.ProjectID, creds.ClientEmail, creds.PrivateKey, cookieName, docs)
	}
}
