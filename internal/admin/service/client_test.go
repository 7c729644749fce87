package service

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idprov/clientadmin/internal/admin/domain"
	"github.com/idprov/clientadmin/internal/admin/store"
	"github.com/idprov/clientadmin/internal/admin/store/drivers/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestApplyClientTypeDefaults(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		clientType  domain.ClientType
		wantGrants  []string
		wantPkce    bool
		wantSecret  bool
		wantOffline bool
	}{
		{"web", domain.ClientTypeWeb, []string{domain.GrantTypeAuthorizationCode}, true, true, false},
		{"spa", domain.ClientTypeSpa, []string{domain.GrantTypeAuthorizationCode}, true, false, false},
		{"native", domain.ClientTypeNative, []string{domain.GrantTypeAuthorizationCode}, true, false, false},
		{"machine", domain.ClientTypeMachine, []string{domain.GrantTypeClientCredentials}, false, false, false},
		{"device", domain.ClientTypeDevice, []string{domain.GrantTypeDeviceFlow}, false, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := domain.Client{ClientType: tc.clientType}
			require.NoError(t, applyClientTypeDefaults(&c))
			require.Equal(t, tc.wantGrants, c.AllowedGrantTypes)
			require.Equal(t, tc.wantPkce, c.RequirePkce)
			require.Equal(t, tc.wantSecret, c.RequireClientSecret)
			require.Equal(t, tc.wantOffline, c.AllowOfflineAccess)
		})
	}

	t.Run("empty leaves caller values untouched", func(t *testing.T) {
		c := domain.Client{
			ClientType:          domain.ClientTypeEmpty,
			RequirePkce:         true,
			RequireClientSecret: true,
		}
		require.NoError(t, applyClientTypeDefaults(&c))
		require.Empty(t, c.AllowedGrantTypes)
		require.True(t, c.RequirePkce)
		require.True(t, c.RequireClientSecret)
	})

	t.Run("machine keeps caller-supplied flags", func(t *testing.T) {
		c := domain.Client{ClientType: domain.ClientTypeMachine, RequirePkce: true}
		require.NoError(t, applyClientTypeDefaults(&c))
		require.True(t, c.RequirePkce)
	})

	t.Run("unknown classification is rejected", func(t *testing.T) {
		c := domain.Client{ClientType: domain.ClientType(99)}
		require.ErrorIs(t, applyClientTypeDefaults(&c), ErrInvalidArgument)
	})
}

func TestSaveClientCreate(t *testing.T) {
	ctx := context.Background()
	svc := &ClientService{Store: newTestStore(t)}

	t.Run("machine client for owner 7", func(t *testing.T) {
		id, err := svc.SaveClient(ctx, domain.Client{
			ClientType: domain.ClientTypeMachine,
			Name:       "billing worker",
		}, 7)
		require.NoError(t, err)
		require.NotZero(t, id)

		got, err := svc.GetClientByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, []string{domain.GrantTypeClientCredentials}, got.AllowedGrantTypes)
		require.False(t, got.RequirePkce)
		require.False(t, got.RequireClientSecret)
		require.NotEmpty(t, got.ClientID)
		require.False(t, got.Created.IsZero())

		owner, err := svc.Store.ClientOwners().GetOwner(ctx, id)
		require.NoError(t, err)
		require.Equal(t, int64(7), owner.UserID)
	})

	t.Run("web client gets pkce and secret requirements", func(t *testing.T) {
		id, err := svc.SaveClient(ctx, domain.Client{
			ClientType:   domain.ClientTypeWeb,
			Name:         "portal",
			RedirectURIs: []string{"https://portal.example/cb"},
		}, 7)
		require.NoError(t, err)

		got, err := svc.GetClientByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, []string{domain.GrantTypeAuthorizationCode}, got.AllowedGrantTypes)
		require.True(t, got.RequirePkce)
		require.True(t, got.RequireClientSecret)
		require.Equal(t, []string{"https://portal.example/cb"}, got.RedirectURIs)
	})

	t.Run("external ids differ across creates", func(t *testing.T) {
		a, err := svc.SaveClient(ctx, domain.Client{ClientType: domain.ClientTypeEmpty, Name: "a"}, 1)
		require.NoError(t, err)
		b, err := svc.SaveClient(ctx, domain.Client{ClientType: domain.ClientTypeEmpty, Name: "b"}, 1)
		require.NoError(t, err)

		ca, err := svc.GetClientByID(ctx, a)
		require.NoError(t, err)
		cb, err := svc.GetClientByID(ctx, b)
		require.NoError(t, err)
		require.NotEqual(t, ca.ClientID, cb.ClientID)
	})

	t.Run("unknown classification fails before any write", func(t *testing.T) {
		_, err := svc.SaveClient(ctx, domain.Client{ClientType: domain.ClientType(42), Name: "bad"}, 1)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestSaveClientReplace(t *testing.T) {
	ctx := context.Background()
	svc := &ClientService{Store: newTestStore(t)}

	id, err := svc.SaveClient(ctx, domain.Client{
		ClientType:   domain.ClientTypeWeb,
		Name:         "app",
		RedirectURIs: []string{"https://a/cb"},
		AllowedScopes: []string{
			"openid", "profile",
		},
	}, 3)
	require.NoError(t, err)

	before, err := svc.GetClientByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, []string{"https://a/cb"}, before.RedirectURIs)

	t.Run("relation sets are replaced wholesale", func(t *testing.T) {
		next := before
		next.RedirectURIs = []string{"https://b/cb", "https://c/cb"}
		next.AllowedScopes = []string{"openid"}
		next.AllowedCorsOrigins = []string{"https://b"}

		_, err := svc.SaveClient(ctx, next, 3)
		require.NoError(t, err)

		got, err := svc.GetClientByID(ctx, id)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"https://b/cb", "https://c/cb"}, got.RedirectURIs)
		require.Equal(t, []string{"openid"}, got.AllowedScopes)
		require.Equal(t, []string{"https://b"}, got.AllowedCorsOrigins)
		require.NotNil(t, got.Updated)
	})

	t.Run("defaults are not reapplied on replace", func(t *testing.T) {
		next, err := svc.GetClientByID(ctx, id)
		require.NoError(t, err)
		next.AllowedGrantTypes = nil
		next.RequirePkce = false

		_, err = svc.SaveClient(ctx, next, 3)
		require.NoError(t, err)

		got, err := svc.GetClientByID(ctx, id)
		require.NoError(t, err)
		require.Empty(t, got.AllowedGrantTypes)
		require.False(t, got.RequirePkce)
	})

	t.Run("external identifier stays fixed", func(t *testing.T) {
		got, err := svc.GetClientByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, before.ClientID, got.ClientID)
	})

	t.Run("replacing an absent client is not found", func(t *testing.T) {
		phantom := before
		phantom.ID = 9999
		_, err := svc.SaveClient(ctx, phantom, 3)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("claims survive the replace cycle", func(t *testing.T) {
		next, err := svc.GetClientByID(ctx, id)
		require.NoError(t, err)
		next.Claims = []domain.ClientClaim{{Type: "department", Value: "ops"}}

		_, err = svc.SaveClient(ctx, next, 3)
		require.NoError(t, err)

		got, err := svc.GetClientByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, []domain.ClientClaim{{Type: "department", Value: "ops"}}, got.Claims)
	})
}

func TestDeleteClient(t *testing.T) {
	ctx := context.Background()
	svc := &ClientService{Store: newTestStore(t)}

	id, err := svc.SaveClient(ctx, domain.Client{
		ClientType:   domain.ClientTypeSpa,
		Name:         "dashboard",
		RedirectURIs: []string{"https://dash/cb"},
	}, 5)
	require.NoError(t, err)

	t.Run("non-owner is denied and state is unchanged", func(t *testing.T) {
		err := svc.DeleteClient(ctx, id, 6)
		require.ErrorIs(t, err, ErrPermissionDenied)

		got, err := svc.GetClientByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, []string{"https://dash/cb"}, got.RedirectURIs)
	})

	t.Run("owner deletes client and ownership together", func(t *testing.T) {
		require.NoError(t, svc.DeleteClient(ctx, id, 5))

		_, err := svc.GetClientByID(ctx, id)
		require.ErrorIs(t, err, ErrNotFound)

		_, err = svc.Store.ClientOwners().GetOwner(ctx, id)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("deleting an absent client is not found", func(t *testing.T) {
		err := svc.DeleteClient(ctx, 12345, 5)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestQueryClientPage(t *testing.T) {
	ctx := context.Background()
	svc := &ClientService{Store: newTestStore(t)}

	for _, name := range []string{"one", "two", "three"} {
		_, err := svc.SaveClient(ctx, domain.Client{ClientType: domain.ClientTypeEmpty, Name: name}, 10)
		require.NoError(t, err)
	}
	_, err := svc.SaveClient(ctx, domain.Client{ClientType: domain.ClientTypeEmpty, Name: "other"}, 11)
	require.NoError(t, err)

	t.Run("only the owner's clients are returned", func(t *testing.T) {
		page, err := svc.QueryClientPage(ctx, 10, store.PageQuery{Page: 1, Size: 10})
		require.NoError(t, err)
		require.Equal(t, int64(3), page.TotalCount)
		require.Len(t, page.Items, 3)
		for _, c := range page.Items {
			require.NotEqual(t, "other", c.Name)
		}
	})

	t.Run("ordered by creation ascending across pages", func(t *testing.T) {
		first, err := svc.QueryClientPage(ctx, 10, store.PageQuery{Page: 1, Size: 2})
		require.NoError(t, err)
		require.Equal(t, int64(3), first.TotalCount)
		require.Len(t, first.Items, 2)
		require.Equal(t, "one", first.Items[0].Name)
		require.Equal(t, "two", first.Items[1].Name)

		second, err := svc.QueryClientPage(ctx, 10, store.PageQuery{Page: 2, Size: 2})
		require.NoError(t, err)
		require.Len(t, second.Items, 1)
		require.Equal(t, "three", second.Items[0].Name)
	})

	t.Run("pagination bounds are enforced", func(t *testing.T) {
		_, err := svc.QueryClientPage(ctx, 10, store.PageQuery{Page: 0, Size: 10})
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = svc.QueryClientPage(ctx, 10, store.PageQuery{Page: 1, Size: 0})
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = svc.QueryClientPage(ctx, 10, store.PageQuery{Page: 1, Size: 101})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("empty page beyond the data", func(t *testing.T) {
		page, err := svc.QueryClientPage(ctx, 10, store.PageQuery{Page: 5, Size: 10})
		require.NoError(t, err)
		require.Empty(t, page.Items)
		require.Equal(t, int64(3), page.TotalCount)
	})
}

func TestClientSecrets(t *testing.T) {
	ctx := context.Background()
	svc := &ClientService{Store: newTestStore(t)}

	id, err := svc.SaveClient(ctx, domain.Client{ClientType: domain.ClientTypeMachine, Name: "worker"}, 1)
	require.NoError(t, err)

	t.Run("shared secret with sha256 stores the digest", func(t *testing.T) {
		secID, err := svc.AddSecret(ctx, domain.ClientSecret{
			ClientID: id,
			Type:     domain.SecretTypeSharedSecret,
			HashType: domain.HashTypeSha256,
			Value:    "topsecret",
		})
		require.NoError(t, err)

		secrets, err := svc.ListSecrets(ctx, id)
		require.NoError(t, err)

		sum := sha256.Sum256([]byte("topsecret"))
		want := base64.StdEncoding.EncodeToString(sum[:])
		found := false
		for _, s := range secrets {
			if s.ID == secID {
				found = true
				require.Equal(t, want, s.Value)
				require.NotEqual(t, "topsecret", s.Value)
			}
		}
		require.True(t, found)
	})

	t.Run("shared secret with sha512 stores the digest", func(t *testing.T) {
		secID, err := svc.AddSecret(ctx, domain.ClientSecret{
			ClientID: id,
			Type:     domain.SecretTypeSharedSecret,
			HashType: domain.HashTypeSha512,
			Value:    "topsecret",
		})
		require.NoError(t, err)

		secrets, err := svc.ListSecrets(ctx, id)
		require.NoError(t, err)

		sum := sha512.Sum512([]byte("topsecret"))
		want := base64.StdEncoding.EncodeToString(sum[:])
		for _, s := range secrets {
			if s.ID == secID {
				require.Equal(t, want, s.Value)
			}
		}
	})

	t.Run("none algorithm stores the value verbatim", func(t *testing.T) {
		secID, err := svc.AddSecret(ctx, domain.ClientSecret{
			ClientID: id,
			Type:     domain.SecretTypeSharedSecret,
			HashType: domain.HashTypeNone,
			Value:    "plain-value",
		})
		require.NoError(t, err)

		secrets, err := svc.ListSecrets(ctx, id)
		require.NoError(t, err)
		for _, s := range secrets {
			if s.ID == secID {
				require.Equal(t, "plain-value", s.Value)
			}
		}
	})

	t.Run("non shared-secret types are never hashed", func(t *testing.T) {
		secID, err := svc.AddSecret(ctx, domain.ClientSecret{
			ClientID: id,
			Type:     "X509Thumbprint",
			HashType: domain.HashTypeSha256,
			Value:    "ab:cd:ef",
		})
		require.NoError(t, err)

		secrets, err := svc.ListSecrets(ctx, id)
		require.NoError(t, err)
		for _, s := range secrets {
			if s.ID == secID {
				require.Equal(t, "ab:cd:ef", s.Value)
			}
		}
	})

	t.Run("adding a secret to an absent client is not found", func(t *testing.T) {
		_, err := svc.AddSecret(ctx, domain.ClientSecret{
			ClientID: 777,
			Type:     domain.SecretTypeSharedSecret,
			HashType: domain.HashTypeSha256,
			Value:    "whatever",
		})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("deleting an absent secret succeeds", func(t *testing.T) {
		require.NoError(t, svc.DeleteSecret(ctx, 99))
	})

	t.Run("deleting a secret removes it", func(t *testing.T) {
		secID, err := svc.AddSecret(ctx, domain.ClientSecret{
			ClientID: id,
			Type:     domain.SecretTypeSharedSecret,
			HashType: domain.HashTypeNone,
			Value:    "gone soon",
		})
		require.NoError(t, err)
		require.NoError(t, svc.DeleteSecret(ctx, secID))

		secrets, err := svc.ListSecrets(ctx, id)
		require.NoError(t, err)
		for _, s := range secrets {
			require.NotEqual(t, secID, s.ID)
		}
	})
}

func TestListScopes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	clients := &ClientService{Store: st}
	resources := &ResourceService{Store: st}

	_, err := resources.SaveIdentityResource(ctx, domain.IdentityResource{
		Name: "openid", DisplayName: "Your user identifier", Enabled: true,
		UserClaims: []string{"sub"},
	})
	require.NoError(t, err)
	_, err = resources.SaveIdentityResource(ctx, domain.IdentityResource{
		Name: "profile", DisplayName: "User profile", Enabled: true,
		UserClaims: []string{"name", "email"},
	})
	require.NoError(t, err)
	_, err = resources.SaveApiScope(ctx, domain.ApiScope{Name: "billing.read", Enabled: true})
	require.NoError(t, err)
	_, err = resources.SaveApiScope(ctx, domain.ApiScope{Name: "profile", Enabled: true})
	require.NoError(t, err)

	scopes, err := clients.ListScopes(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"openid", "profile", "billing.read"}, scopes)
}
