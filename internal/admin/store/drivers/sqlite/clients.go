package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/idprov/clientadmin/internal/admin/domain"
	"github.com/idprov/clientadmin/internal/admin/store"
)

type clientsRepo struct {
	db dbtx
}

const clientColumns = `id, client_id, client_type, name, description, client_uri, logo_uri,
	require_pkce, require_client_secret, allow_offline_access,
	access_token_lifetime, identity_token_lifetime, created, updated`

func (r *clientsRepo) InsertClient(ctx context.Context, c domain.Client) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (
			client_id, client_type, name, description, client_uri, logo_uri,
			require_pkce, require_client_secret, allow_offline_access,
			access_token_lifetime, identity_token_lifetime, created
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ClientID, int(c.ClientType), c.Name, c.Description, c.ClientURI, c.LogoURI,
		c.RequirePkce, c.RequireClientSecret, c.AllowOfflineAccess,
		c.AccessTokenLifetime, c.IdentityTokenLifetime, c.Created,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *clientsRepo) UpdateClient(ctx context.Context, c domain.Client) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients SET
			client_type = ?, name = ?, description = ?, client_uri = ?, logo_uri = ?,
			require_pkce = ?, require_client_secret = ?, allow_offline_access = ?,
			access_token_lifetime = ?, identity_token_lifetime = ?, updated = ?
		WHERE id = ?`,
		int(c.ClientType), c.Name, c.Description, c.ClientURI, c.LogoURI,
		c.RequirePkce, c.RequireClientSecret, c.AllowOfflineAccess,
		c.AccessTokenLifetime, c.IdentityTokenLifetime, mapOptionalTime(c.Updated),
		c.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// relation set tables and their value columns, in teardown/rebuild order.
var relationTables = []struct {
	table   string
	columns []string
}{
	{"client_grant_types", []string{"grant_type"}},
	{"client_redirect_uris", []string{"redirect_uri"}},
	{"client_post_logout_redirect_uris", []string{"post_logout_redirect_uri"}},
	{"client_scopes", []string{"scope"}},
	{"client_idp_restrictions", []string{"provider"}},
	{"client_claims", []string{"type", "value"}},
	{"client_cors_origins", []string{"origin"}},
}

func (r *clientsRepo) ReplaceRelations(ctx context.Context, clientID int64, c domain.Client) error {
	for _, rel := range relationTables {
		if _, err := r.db.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE client_id = ?`, rel.table), clientID); err != nil {
			return err
		}
	}

	insertSingle := func(table, column string, values []string) error {
		query := fmt.Sprintf(`INSERT INTO %s (client_id, %s) VALUES (?, ?)`, table, column)
		for _, v := range values {
			if _, err := r.db.ExecContext(ctx, query, clientID, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := insertSingle("client_grant_types", "grant_type", c.AllowedGrantTypes); err != nil {
		return err
	}
	if err := insertSingle("client_redirect_uris", "redirect_uri", c.RedirectURIs); err != nil {
		return err
	}
	if err := insertSingle("client_post_logout_redirect_uris", "post_logout_redirect_uri", c.PostLogoutRedirectURIs); err != nil {
		return err
	}
	if err := insertSingle("client_scopes", "scope", c.AllowedScopes); err != nil {
		return err
	}
	if err := insertSingle("client_idp_restrictions", "provider", c.IdentityProviderRestrictions); err != nil {
		return err
	}
	for _, claim := range c.Claims {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO client_claims (client_id, type, value) VALUES (?, ?, ?)`,
			clientID, claim.Type, claim.Value); err != nil {
			return err
		}
	}
	if err := insertSingle("client_cors_origins", "origin", c.AllowedCorsOrigins); err != nil {
		return err
	}
	return nil
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id int64) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)

	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}

	listValues := func(query string, dest *[]string) error {
		rows, err := r.db.QueryContext(ctx, query, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				return err
			}
			*dest = append(*dest, v)
		}
		return rows.Err()
	}

	if err := listValues(`SELECT grant_type FROM client_grant_types WHERE client_id = ? ORDER BY id`, &c.AllowedGrantTypes); err != nil {
		return domain.Client{}, err
	}
	if err := listValues(`SELECT redirect_uri FROM client_redirect_uris WHERE client_id = ? ORDER BY id`, &c.RedirectURIs); err != nil {
		return domain.Client{}, err
	}
	if err := listValues(`SELECT post_logout_redirect_uri FROM client_post_logout_redirect_uris WHERE client_id = ? ORDER BY id`, &c.PostLogoutRedirectURIs); err != nil {
		return domain.Client{}, err
	}
	if err := listValues(`SELECT scope FROM client_scopes WHERE client_id = ? ORDER BY id`, &c.AllowedScopes); err != nil {
		return domain.Client{}, err
	}
	if err := listValues(`SELECT provider FROM client_idp_restrictions WHERE client_id = ? ORDER BY id`, &c.IdentityProviderRestrictions); err != nil {
		return domain.Client{}, err
	}
	if err := listValues(`SELECT origin FROM client_cors_origins WHERE client_id = ? ORDER BY id`, &c.AllowedCorsOrigins); err != nil {
		return domain.Client{}, err
	}

	claimRows, err := r.db.QueryContext(ctx,
		`SELECT type, value FROM client_claims WHERE client_id = ? ORDER BY id`, id)
	if err != nil {
		return domain.Client{}, err
	}
	defer claimRows.Close()
	for claimRows.Next() {
		var claim domain.ClientClaim
		if err := claimRows.Scan(&claim.Type, &claim.Value); err != nil {
			return domain.Client{}, err
		}
		c.Claims = append(c.Claims, claim)
	}
	if err := claimRows.Err(); err != nil {
		return domain.Client{}, err
	}

	return c, nil
}

func (r *clientsRepo) ClientExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM clients WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *clientsRepo) QueryPageByOwner(ctx context.Context, ownerID int64, q store.PageQuery) (store.Page[domain.Client], error) {
	var page store.Page[domain.Client]

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM clients c
		JOIN client_owners o ON o.client_id = c.id
		WHERE o.user_id = ?`, ownerID).Scan(&page.TotalCount)
	if err != nil {
		return store.Page[domain.Client]{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.client_id, c.client_type, c.name, c.description, c.client_uri, c.logo_uri,
			c.require_pkce, c.require_client_secret, c.allow_offline_access,
			c.access_token_lifetime, c.identity_token_lifetime, c.created, c.updated
		FROM clients c
		JOIN client_owners o ON o.client_id = c.id
		WHERE o.user_id = ?
		ORDER BY c.created ASC, c.id ASC
		LIMIT ? OFFSET ?`, ownerID, q.Size, q.Offset())
	if err != nil {
		return store.Page[domain.Client]{}, err
	}
	defer rows.Close()

	page.Items = make([]domain.Client, 0, q.Size)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return store.Page[domain.Client]{}, err
		}
		page.Items = append(page.Items, c)
	}
	if err := rows.Err(); err != nil {
		return store.Page[domain.Client]{}, err
	}
	return page, nil
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	return err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanClient(s scanner) (domain.Client, error) {
	var (
		c          domain.Client
		clientType int
		updated    sql.NullTime
	)
	err := s.Scan(
		&c.ID, &c.ClientID, &clientType, &c.Name, &c.Description, &c.ClientURI, &c.LogoURI,
		&c.RequirePkce, &c.RequireClientSecret, &c.AllowOfflineAccess,
		&c.AccessTokenLifetime, &c.IdentityTokenLifetime, &c.Created, &updated,
	)
	if err != nil {
		return domain.Client{}, err
	}
	c.ClientType = domain.ClientType(clientType)
	c.Updated = mapNullTimePtr(updated)
	return c, nil
}
