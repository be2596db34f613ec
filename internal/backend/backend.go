// Package backend lazily builds the process-wide backend clients: the session
// lookup service and the document store. Both are constructed together from
// the service-account credentials and cached for the life of the process.
//
// Get must not be called where the credentials are intentionally hidden (for
// example a build or migration step); such callers get a ConfigurationError.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/interview-prep/internal/types"
	"go.uber.org/zap"
)

// Environment keys holding the service-account credentials.
const (
	EnvProjectID   = "FIREBASE_PROJECT_ID"
	EnvClientEmail = "FIREBASE_CLIENT_EMAIL"
	EnvPrivateKey  = "FIREBASE_PRIVATE_KEY"
)

// Credentials identify the service account the backend clients act as.
type Credentials struct {
	ProjectID   string
	ClientEmail string
	PrivateKey  string // PEM with real newlines
}

// ConfigurationError reports which required credential values were absent.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required backend environment variables: %s", strings.Join(e.Missing, ", "))
}

// LookupFunc reads a configuration value; os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// LoadCredentials reads the three credential values through lookup. Empty
// values count as missing. The private key arrives with escaped newlines and
// is returned with the two-character sequence \n replaced by a newline.
func LoadCredentials(lookup LookupFunc) (Credentials, error) {
	values := make(map[string]string, 3)
	var missing []string
	for _, key := range []string{EnvProjectID, EnvClientEmail, EnvPrivateKey} {
		v, ok := lookup(key)
		if !ok || v == "" {
			missing = append(missing, key)
			continue
		}
		values[key] = v
	}
	if len(missing) > 0 {
		return Credentials{}, &ConfigurationError{Missing: missing}
	}

	return Credentials{
		ProjectID:   values[EnvProjectID],
		ClientEmail: values[EnvClientEmail],
		PrivateKey:  NormalizePrivateKey(values[EnvPrivateKey]),
	}, nil
}

// NormalizePrivateKey converts literal \n escapes into newlines.
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// Authenticator resolves the user behind a request's session.
type Authenticator interface {
	CurrentUser(ctx context.Context, r *http.Request) (*types.User, error)
	Issue(uid string, ttl time.Duration) (string, error)
}

// DocumentStore appends and reads JSON documents in named collections.
type DocumentStore interface {
	Add(ctx context.Context, collection string, doc any) (string, error)
	Get(ctx context.Context, collection, id string, dest any) (bool, error)
	Close()
}

// Clients is the pair of backend handles shared by all requests.
// It is read-only once built.
type Clients struct {
	Auth  Authenticator
	Store DocumentStore
}

// StoreFactory builds the document store.
type StoreFactory func(ctx context.Context, creds Credentials) (DocumentStore, error)

// AuthFactory builds the session lookup service over the document store.
type AuthFactory func(creds Credentials, store DocumentStore) (Authenticator, error)

// Initializer builds Clients at most once per process. A failed attempt caches
// nothing, so the next call validates the configuration again.
type Initializer struct {
	lookup   LookupFunc
	newStore StoreFactory
	newAuth  AuthFactory
	logger   *zap.Logger

	mu      sync.Mutex
	clients *Clients
}

// NewInitializer creates an initializer. A nil lookup reads the process environment.
func NewInitializer(lookup LookupFunc, newStore StoreFactory, newAuth AuthFactory, logger *zap.Logger) *Initializer {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Initializer{
		lookup:   lookup,
		newStore: newStore,
		newAuth:  newAuth,
		logger:   logger,
	}
}

// Get returns the shared clients, building them on first use.
func (i *Initializer) Get(ctx context.Context) (*Clients, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.clients != nil {
		return i.clients, nil
	}

	creds, err := LoadCredentials(i.lookup)
	if err != nil {
		if cfgErr, ok := err.(*ConfigurationError); ok {
			for _, key := range cfgErr.Missing {
				i.logger.Error("missing required backend environment variable", zap.String("key", key))
			}
		}
		return nil, err
	}

	store, err := i.newStore(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to create document store: %w", err)
	}

	authn, err := i.newAuth(creds, store)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	i.clients = &Clients{Auth: authn, Store: store}
	i.logger.Info("backend clients initialized", zap.String("project_id", creds.ProjectID))
	return i.clients, nil
}

// Close releases the cached clients, if any.
func (i *Initializer) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.clients != nil {
		i.clients.Store.Close()
		i.clients = nil
	}
}
