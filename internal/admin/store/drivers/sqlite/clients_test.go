package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/idprov/clientadmin/internal/admin/domain"
	"github.com/idprov/clientadmin/internal/admin/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedClient(t *testing.T, st *Store, name string) int64 {
	t.Helper()

	c := domain.Client{
		ClientID:          "test-" + name,
		ClientType:        domain.ClientTypeWeb,
		Name:              name,
		AllowedGrantTypes: []string{domain.GrantTypeAuthorizationCode},
		RedirectURIs:      []string{"https://" + name + "/cb"},
		AllowedScopes:     []string{"openid"},
		Claims:            []domain.ClientClaim{{Type: "team", Value: name}},
		Created:           time.Now().UTC(),
	}

	var id int64
	err := st.WithTx(context.Background(), func(tx store.Tx) error {
		var err error
		id, err = tx.Clients().InsertClient(context.Background(), c)
		if err != nil {
			return err
		}
		return tx.Clients().ReplaceRelations(context.Background(), id, c)
	})
	require.NoError(t, err)
	return id
}

func TestClientAggregateRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	id := seedClient(t, st, "shop")

	got, err := st.Clients().GetClientByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "shop", got.Name)
	require.Equal(t, "test-shop", got.ClientID)
	require.Equal(t, []string{domain.GrantTypeAuthorizationCode}, got.AllowedGrantTypes)
	require.Equal(t, []string{"https://shop/cb"}, got.RedirectURIs)
	require.Equal(t, []domain.ClientClaim{{Type: "team", Value: "shop"}}, got.Claims)
	require.Nil(t, got.Updated)
}

func TestInsertClientDuplicateExternalID(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	seedClient(t, st, "first")

	_, err := st.Clients().InsertClient(ctx, domain.Client{
		ClientID: "test-first",
		Name:     "second",
		Created:  time.Now().UTC(),
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestDeleteClientCascades(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	id := seedClient(t, st, "doomed")
	require.NoError(t, st.ClientOwners().InsertOwner(ctx, id, 9))
	_, err := st.ClientSecrets().InsertSecret(ctx, domain.ClientSecret{
		ClientID: id,
		Type:     domain.SecretTypeSharedSecret,
		Value:    "digest",
		Created:  time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, st.Clients().DeleteClient(ctx, id))

	_, err = st.Clients().GetClientByID(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	secrets, err := st.ClientSecrets().ListSecretsByClient(ctx, id)
	require.NoError(t, err)
	require.Empty(t, secrets)

	_, err = st.ClientOwners().GetOwner(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	boom := errors.New("boom")
	var id int64
	err := st.WithTx(ctx, func(tx store.Tx) error {
		var err error
		id, err = tx.Clients().InsertClient(ctx, domain.Client{
			ClientID: "rollback-me",
			Name:     "partial",
			Created:  time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		if err := tx.ClientOwners().InsertOwner(ctx, id, 1); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	exists, err := st.Clients().ClientExists(ctx, id)
	require.NoError(t, err)
	require.False(t, exists)

	_, err = st.ClientOwners().GetOwner(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateClientMissingRow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	err := st.Clients().UpdateClient(ctx, domain.Client{ID: 321, Name: "ghost"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestReplaceRelationsLeavesNoResidue(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	id := seedClient(t, st, "app")

	next, err := st.Clients().GetClientByID(ctx, id)
	require.NoError(t, err)
	next.RedirectURIs = []string{"https://new/cb"}
	next.AllowedScopes = nil
	next.Claims = nil

	require.NoError(t, st.Clients().ReplaceRelations(ctx, id, next))

	got, err := st.Clients().GetClientByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, []string{"https://new/cb"}, got.RedirectURIs)
	require.Empty(t, got.AllowedScopes)
	require.Empty(t, got.Claims)
}

func TestInsertOwnerIsUniquePerClient(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	id := seedClient(t, st, "owned")
	require.NoError(t, st.ClientOwners().InsertOwner(ctx, id, 1))

	err := st.ClientOwners().InsertOwner(ctx, id, 2)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}
