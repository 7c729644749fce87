package store

import (
	"context"
	"errors"

	"github.com/idprov/clientadmin/internal/admin/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep concerns tidy; multi-step mutations
// that must be atomic go through Tx or WithTx so a partial write is never
// observable.
type Store interface {
	Clients() Clients
	ClientSecrets() ClientSecrets
	ClientOwners() ClientOwners
	Resources() Resources

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run an atomic unit.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	// InsertClient writes the client's scalar fields and returns the new
	// internal id. Relation sets are written separately via ReplaceRelations.
	InsertClient(ctx context.Context, c domain.Client) (int64, error)

	// UpdateClient rewrites the client's scalar fields. ErrNotFound when the
	// id does not exist.
	UpdateClient(ctx context.Context, c domain.Client) error

	// ReplaceRelations deletes every entry of the seven relation sets scoped
	// to clientID and inserts the values carried by c.
	ReplaceRelations(ctx context.Context, clientID int64, c domain.Client) error

	// GetClientByID returns the full aggregate including all relation sets.
	GetClientByID(ctx context.Context, id int64) (domain.Client, error)

	// ClientExists reports whether a client row with the id exists.
	ClientExists(ctx context.Context, id int64) (bool, error)

	// QueryPageByOwner returns the page of clients owned by ownerID, ordered
	// by creation time ascending. Items carry scalar fields only.
	QueryPageByOwner(ctx context.Context, ownerID int64, q PageQuery) (Page[domain.Client], error)

	// DeleteClient removes the client row; relation sets, secrets and the
	// ownership record cascade per schema.
	DeleteClient(ctx context.Context, id int64) error
}

type ClientSecrets interface {
	// InsertSecret stores a secret record. The value must already be in its
	// processed (hashed or verbatim) form.
	InsertSecret(ctx context.Context, s domain.ClientSecret) (int64, error)

	// ListSecretsByClient returns the secrets of a client, newest first.
	ListSecretsByClient(ctx context.Context, clientID int64) ([]domain.ClientSecret, error)

	// DeleteSecret removes a secret by id. Deleting an absent secret is not
	// an error.
	DeleteSecret(ctx context.Context, id int64) error
}

type ClientOwners interface {
	// InsertOwner records the single owner of a client.
	InsertOwner(ctx context.Context, clientID, userID int64) error

	// GetOwner returns the ownership record for a client.
	GetOwner(ctx context.Context, clientID int64) (domain.ClientOwner, error)

	// DeleteOwner removes the ownership record for a client.
	DeleteOwner(ctx context.Context, clientID int64) error
}

type Resources interface {
	QueryIdentityResourcePage(ctx context.Context, q PageQuery) (Page[domain.IdentityResource], error)
	GetIdentityResource(ctx context.Context, id int64) (domain.IdentityResource, error)
	SaveIdentityResource(ctx context.Context, r domain.IdentityResource) (int64, error)

	QueryApiResourcePage(ctx context.Context, q PageQuery) (Page[domain.ApiResource], error)
	GetApiResource(ctx context.Context, id int64) (domain.ApiResource, error)
	SaveApiResource(ctx context.Context, r domain.ApiResource) (int64, error)

	QueryApiScopePage(ctx context.Context, q PageQuery) (Page[domain.ApiScope], error)
	GetApiScope(ctx context.Context, id int64) (domain.ApiScope, error)
	SaveApiScope(ctx context.Context, s domain.ApiScope) (int64, error)

	// ListIdentityResourceNames and ListApiScopeNames feed the scope union
	// lookup used when configuring clients.
	ListIdentityResourceNames(ctx context.Context) ([]string, error)
	ListApiScopeNames(ctx context.Context) ([]string, error)
}
