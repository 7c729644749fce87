package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idprov/clientadmin/internal/admin/domain"
	"github.com/idprov/clientadmin/internal/admin/store"
)

func TestIdentityResources(t *testing.T) {
	ctx := context.Background()
	svc := &ResourceService{Store: newTestStore(t)}

	t.Run("save and read back", func(t *testing.T) {
		id, err := svc.SaveIdentityResource(ctx, domain.IdentityResource{
			Name:        "email",
			DisplayName: "Your email address",
			Enabled:     true,
			UserClaims:  []string{"email", "email_verified"},
		})
		require.NoError(t, err)

		got, err := svc.GetIdentityResource(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "email", got.Name)
		require.Equal(t, []string{"email", "email_verified"}, got.UserClaims)
	})

	t.Run("update by id", func(t *testing.T) {
		id, err := svc.SaveIdentityResource(ctx, domain.IdentityResource{Name: "address", Enabled: true})
		require.NoError(t, err)

		updated, err := svc.SaveIdentityResource(ctx, domain.IdentityResource{
			ID: id, Name: "address", DisplayName: "Postal address", Enabled: false,
		})
		require.NoError(t, err)
		require.Equal(t, id, updated)

		got, err := svc.GetIdentityResource(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Postal address", got.DisplayName)
		require.False(t, got.Enabled)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		_, err := svc.SaveIdentityResource(ctx, domain.IdentityResource{Name: "email"})
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("missing name is invalid", func(t *testing.T) {
		_, err := svc.SaveIdentityResource(ctx, domain.IdentityResource{DisplayName: "nameless"})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("absent id is not found", func(t *testing.T) {
		_, err := svc.GetIdentityResource(ctx, 4242)
		require.ErrorIs(t, err, ErrNotFound)

		_, err = svc.SaveIdentityResource(ctx, domain.IdentityResource{ID: 4242, Name: "ghost"})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResourcePagesFilter(t *testing.T) {
	ctx := context.Background()
	svc := &ResourceService{Store: newTestStore(t)}

	for _, name := range []string{"billing.read", "billing.write", "reporting.read"} {
		_, err := svc.SaveApiScope(ctx, domain.ApiScope{Name: name, Enabled: true})
		require.NoError(t, err)
	}

	t.Run("filter restricts by name substring", func(t *testing.T) {
		page, err := svc.QueryApiScopePage(ctx, store.PageQuery{Page: 1, Size: 10, Filter: "billing"})
		require.NoError(t, err)
		require.Equal(t, int64(2), page.TotalCount)
		for _, s := range page.Items {
			require.Contains(t, s.Name, "billing")
		}
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		page, err := svc.QueryApiScopePage(ctx, store.PageQuery{Page: 1, Size: 10})
		require.NoError(t, err)
		require.Equal(t, int64(3), page.TotalCount)
	})

	t.Run("pagination bounds apply to resources too", func(t *testing.T) {
		_, err := svc.QueryApiScopePage(ctx, store.PageQuery{Page: 1, Size: 500})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestApiResources(t *testing.T) {
	ctx := context.Background()
	svc := &ResourceService{Store: newTestStore(t)}

	id, err := svc.SaveApiResource(ctx, domain.ApiResource{
		Name:       "billing-api",
		Enabled:    true,
		Scopes:     []string{"billing.read", "billing.write"},
		UserClaims: []string{"sub", "name"},
	})
	require.NoError(t, err)

	got, err := svc.GetApiResource(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "billing-api", got.Name)
	require.Equal(t, []string{"billing.read", "billing.write"}, got.Scopes)
	require.Equal(t, []string{"sub", "name"}, got.UserClaims)

	page, err := svc.QueryApiResourcePage(ctx, store.PageQuery{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalCount)
}
