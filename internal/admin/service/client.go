package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/idprov/clientadmin/internal/admin/domain"
	"github.com/idprov/clientadmin/internal/admin/store"
	"github.com/idprov/clientadmin/pkg/clientid"
	"github.com/idprov/clientadmin/pkg/cryptox"
	"github.com/idprov/clientadmin/pkg/slogx"
)

const (
	maxPageSize = 100
)

// ClientService owns the client aggregate lifecycle: create, full replace,
// delete, secret management and owner-scoped queries. Every mutating
// operation takes the acting administrator's id explicitly; the service never
// reads identity out of a request context itself.
type ClientService struct {
	Store store.Store
}

func validatePageQuery(q store.PageQuery) error {
	if q.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidArgument)
	}
	if q.Size < 1 || q.Size > maxPageSize {
		return fmt.Errorf("%w: page size must be between 1 and %d", ErrInvalidArgument, maxPageSize)
	}
	return nil
}

// QueryClientPage returns the page of clients owned by ownerID, ordered by
// creation time ascending. Clients owned by other administrators are never
// included.
func (s *ClientService) QueryClientPage(ctx context.Context, ownerID int64, q store.PageQuery) (store.Page[domain.Client], error) {
	if err := validatePageQuery(q); err != nil {
		return store.Page[domain.Client]{}, err
	}
	return s.Store.Clients().QueryPageByOwner(ctx, ownerID, q)
}

// GetClientByID returns the full aggregate including all relation sets.
// Reads are not ownership-scoped; only mutation and listing are.
func (s *ClientService) GetClientByID(ctx context.Context, id int64) (domain.Client, error) {
	c, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, fmt.Errorf("%w: client %d", ErrNotFound, id)
		}
		return domain.Client{}, err
	}
	return c, nil
}

// SaveClient creates or fully replaces a client aggregate.
//
// Create (c.ID == 0): classification defaults are applied, the external
// client identifier is generated, and the client plus its ownership record
// are written in one atomic unit. Returns the new internal id.
//
// Replace (c.ID != 0): all seven relation sets are torn down and rewritten
// from c, and the scalar fields are updated, atomically. Classification
// defaults are NOT reapplied; the caller's payload is taken as-is. The
// external client identifier is immutable.
func (s *ClientService) SaveClient(ctx context.Context, c domain.Client, ownerID int64) (int64, error) {
	l := slogx.FromContext(ctx)

	if c.ID == 0 {
		if err := applyClientTypeDefaults(&c); err != nil {
			return 0, err
		}
		c.ClientID = clientid.New()
		c.Created = time.Now().UTC()

		var id int64
		err := s.Store.WithTx(ctx, func(tx store.Tx) error {
			var err error
			id, err = tx.Clients().InsertClient(ctx, c)
			if err != nil {
				return err
			}
			if err := tx.Clients().ReplaceRelations(ctx, id, c); err != nil {
				return err
			}
			return tx.ClientOwners().InsertOwner(ctx, id, ownerID)
		})
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return 0, fmt.Errorf("%w: client identifier collision", ErrConflict)
			}
			l.Error("failed to create client", "error", err, "name", c.Name)
			return 0, err
		}

		l.Info("client created", "id", id, "client_id", c.ClientID, "client_type", c.ClientType.String())
		return id, nil
	}

	now := time.Now().UTC()
	c.Updated = &now

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Clients().UpdateClient(ctx, c); err != nil {
			return err
		}
		return tx.Clients().ReplaceRelations(ctx, c.ID, c)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, fmt.Errorf("%w: client %d", ErrNotFound, c.ID)
		}
		l.Error("failed to replace client", "error", err, "id", c.ID)
		return 0, err
	}

	l.Info("client replaced", "id", c.ID)
	return c.ID, nil
}

// DeleteClient removes the client and its ownership record atomically. The
// relation sets and secrets cascade with the client row. Only the recorded
// owner may delete.
func (s *ClientService) DeleteClient(ctx context.Context, id, ownerID int64) error {
	l := slogx.FromContext(ctx)

	exists, err := s.Store.Clients().ClientExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: client %d", ErrNotFound, id)
	}

	owner, err := s.Store.ClientOwners().GetOwner(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: client %d", ErrNotFound, id)
		}
		return err
	}
	if owner.UserID != ownerID {
		l.Warn("delete refused, caller is not the owner", "id", id, "caller", ownerID)
		return fmt.Errorf("%w: client %d", ErrPermissionDenied, id)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.ClientOwners().DeleteOwner(ctx, id); err != nil {
			return err
		}
		return tx.Clients().DeleteClient(ctx, id)
	})
	if err != nil {
		l.Error("failed to delete client", "error", err, "id", id)
		return err
	}

	l.Info("client deleted", "id", id, "owner", ownerID)
	return nil
}

// AddSecret processes and stores a secret for an existing client. Shared
// secrets are digested per the requested hash algorithm before persistence;
// every other type, and the "none" algorithm, stores the value verbatim. The
// stored value is never re-hashed on read.
func (s *ClientService) AddSecret(ctx context.Context, sec domain.ClientSecret) (int64, error) {
	l := slogx.FromContext(ctx)

	exists, err := s.Store.Clients().ClientExists(ctx, sec.ClientID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("%w: client %d", ErrNotFound, sec.ClientID)
	}

	if sec.Type == domain.SecretTypeSharedSecret {
		switch sec.HashType {
		case domain.HashTypeSha256:
			sec.Value = cryptox.Sha256String(sec.Value)
		case domain.HashTypeSha512:
			sec.Value = cryptox.Sha512String(sec.Value)
		case domain.HashTypeNone:
			// Stored as supplied.
		default:
			return 0, fmt.Errorf("%w: unknown hash type %d", ErrInvalidArgument, int(sec.HashType))
		}
	}
	sec.Created = time.Now().UTC()

	id, err := s.Store.ClientSecrets().InsertSecret(ctx, sec)
	if err != nil {
		l.Error("failed to add client secret", "error", err, "client_id", sec.ClientID)
		return 0, err
	}

	l.Info("client secret added", "id", id, "client_id", sec.ClientID, "type", sec.Type)
	return id, nil
}

// ListSecrets returns the secrets of an existing client, newest first.
func (s *ClientService) ListSecrets(ctx context.Context, clientID int64) ([]domain.ClientSecret, error) {
	exists, err := s.Store.Clients().ClientExists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: client %d", ErrNotFound, clientID)
	}
	return s.Store.ClientSecrets().ListSecretsByClient(ctx, clientID)
}

// DeleteSecret removes a secret by id. Deleting a secret that does not exist
// succeeds without effect.
func (s *ClientService) DeleteSecret(ctx context.Context, id int64) error {
	return s.Store.ClientSecrets().DeleteSecret(ctx, id)
}

// ListScopes returns the deduplicated union of every identity resource name
// and every api scope name. Used to populate scope pickers; unfiltered and
// unpaginated.
func (s *ClientService) ListScopes(ctx context.Context) ([]string, error) {
	identity, err := s.Store.Resources().ListIdentityResourceNames(ctx)
	if err != nil {
		return nil, err
	}
	api, err := s.Store.Resources().ListApiScopeNames(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(identity)+len(api))
	scopes := make([]string, 0, len(identity)+len(api))
	for _, name := range identity {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		scopes = append(scopes, name)
	}
	for _, name := range api {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		scopes = append(scopes, name)
	}
	return scopes, nil
}
