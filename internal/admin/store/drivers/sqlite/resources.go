package sqlite

import (
	"context"

	"github.com/idprov/clientadmin/internal/admin/domain"
	"github.com/idprov/clientadmin/internal/admin/store"
)

type resourcesRepo struct {
	db dbtx
}

func likeFilter(q store.PageQuery) string {
	return "%" + q.Filter + "%"
}

func (r *resourcesRepo) QueryIdentityResourcePage(ctx context.Context, q store.PageQuery) (store.Page[domain.IdentityResource], error) {
	var page store.Page[domain.IdentityResource]

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM identity_resources WHERE name LIKE ?`, likeFilter(q)).
		Scan(&page.TotalCount)
	if err != nil {
		return store.Page[domain.IdentityResource]{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, display_name, description, enabled, user_claims, created
		FROM identity_resources
		WHERE name LIKE ?
		ORDER BY name ASC
		LIMIT ? OFFSET ?`, likeFilter(q), q.Size, q.Offset())
	if err != nil {
		return store.Page[domain.IdentityResource]{}, err
	}
	defer rows.Close()

	page.Items = make([]domain.IdentityResource, 0, q.Size)
	for rows.Next() {
		res, err := scanIdentityResource(rows)
		if err != nil {
			return store.Page[domain.IdentityResource]{}, err
		}
		page.Items = append(page.Items, res)
	}
	return page, rows.Err()
}

func (r *resourcesRepo) GetIdentityResource(ctx context.Context, id int64) (domain.IdentityResource, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, display_name, description, enabled, user_claims, created
		FROM identity_resources WHERE id = ?`, id)
	res, err := scanIdentityResource(row)
	if err != nil {
		return domain.IdentityResource{}, mapNotFound(err)
	}
	return res, nil
}

func (r *resourcesRepo) SaveIdentityResource(ctx context.Context, res domain.IdentityResource) (int64, error) {
	if res.ID == 0 {
		result, err := r.db.ExecContext(ctx, `
			INSERT INTO identity_resources (name, display_name, description, enabled, user_claims, created)
			VALUES (?, ?, ?, ?, ?, ?)`,
			res.Name, res.DisplayName, res.Description, res.Enabled, joinNames(res.UserClaims), res.Created)
		if err != nil {
			return 0, mapConstraint(err)
		}
		return result.LastInsertId()
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE identity_resources
		SET name = ?, display_name = ?, description = ?, enabled = ?, user_claims = ?
		WHERE id = ?`,
		res.Name, res.DisplayName, res.Description, res.Enabled, joinNames(res.UserClaims), res.ID)
	if err != nil {
		return 0, mapConstraint(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, store.ErrNotFound
	}
	return res.ID, nil
}

func (r *resourcesRepo) QueryApiResourcePage(ctx context.Context, q store.PageQuery) (store.Page[domain.ApiResource], error) {
	var page store.Page[domain.ApiResource]

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM api_resources WHERE name LIKE ?`, likeFilter(q)).
		Scan(&page.TotalCount)
	if err != nil {
		return store.Page[domain.ApiResource]{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, display_name, description, enabled, scopes, user_claims, created
		FROM api_resources
		WHERE name LIKE ?
		ORDER BY name ASC
		LIMIT ? OFFSET ?`, likeFilter(q), q.Size, q.Offset())
	if err != nil {
		return store.Page[domain.ApiResource]{}, err
	}
	defer rows.Close()

	page.Items = make([]domain.ApiResource, 0, q.Size)
	for rows.Next() {
		res, err := scanApiResource(rows)
		if err != nil {
			return store.Page[domain.ApiResource]{}, err
		}
		page.Items = append(page.Items, res)
	}
	return page, rows.Err()
}

func (r *resourcesRepo) GetApiResource(ctx context.Context, id int64) (domain.ApiResource, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, display_name, description, enabled, scopes, user_claims, created
		FROM api_resources WHERE id = ?`, id)
	res, err := scanApiResource(row)
	if err != nil {
		return domain.ApiResource{}, mapNotFound(err)
	}
	return res, nil
}

func (r *resourcesRepo) SaveApiResource(ctx context.Context, res domain.ApiResource) (int64, error) {
	if res.ID == 0 {
		result, err := r.db.ExecContext(ctx, `
			INSERT INTO api_resources (name, display_name, description, enabled, scopes, user_claims, created)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			res.Name, res.DisplayName, res.Description, res.Enabled,
			joinNames(res.Scopes), joinNames(res.UserClaims), res.Created)
		if err != nil {
			return 0, mapConstraint(err)
		}
		return result.LastInsertId()
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE api_resources
		SET name = ?, display_name = ?, description = ?, enabled = ?, scopes = ?, user_claims = ?
		WHERE id = ?`,
		res.Name, res.DisplayName, res.Description, res.Enabled,
		joinNames(res.Scopes), joinNames(res.UserClaims), res.ID)
	if err != nil {
		return 0, mapConstraint(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, store.ErrNotFound
	}
	return res.ID, nil
}

func (r *resourcesRepo) QueryApiScopePage(ctx context.Context, q store.PageQuery) (store.Page[domain.ApiScope], error) {
	var page store.Page[domain.ApiScope]

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM api_scopes WHERE name LIKE ?`, likeFilter(q)).
		Scan(&page.TotalCount)
	if err != nil {
		return store.Page[domain.ApiScope]{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, display_name, description, enabled, required, emphasize, created
		FROM api_scopes
		WHERE name LIKE ?
		ORDER BY name ASC
		LIMIT ? OFFSET ?`, likeFilter(q), q.Size, q.Offset())
	if err != nil {
		return store.Page[domain.ApiScope]{}, err
	}
	defer rows.Close()

	page.Items = make([]domain.ApiScope, 0, q.Size)
	for rows.Next() {
		var s domain.ApiScope
		if err := rows.Scan(&s.ID, &s.Name, &s.DisplayName, &s.Description,
			&s.Enabled, &s.Required, &s.Emphasize, &s.Created); err != nil {
			return store.Page[domain.ApiScope]{}, err
		}
		page.Items = append(page.Items, s)
	}
	return page, rows.Err()
}

func (r *resourcesRepo) GetApiScope(ctx context.Context, id int64) (domain.ApiScope, error) {
	var s domain.ApiScope
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, display_name, description, enabled, required, emphasize, created
		FROM api_scopes WHERE id = ?`, id).
		Scan(&s.ID, &s.Name, &s.DisplayName, &s.Description,
			&s.Enabled, &s.Required, &s.Emphasize, &s.Created)
	if err != nil {
		return domain.ApiScope{}, mapNotFound(err)
	}
	return s, nil
}

func (r *resourcesRepo) SaveApiScope(ctx context.Context, s domain.ApiScope) (int64, error) {
	if s.ID == 0 {
		result, err := r.db.ExecContext(ctx, `
			INSERT INTO api_scopes (name, display_name, description, enabled, required, emphasize, created)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.Name, s.DisplayName, s.Description, s.Enabled, s.Required, s.Emphasize, s.Created)
		if err != nil {
			return 0, mapConstraint(err)
		}
		return result.LastInsertId()
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE api_scopes
		SET name = ?, display_name = ?, description = ?, enabled = ?, required = ?, emphasize = ?
		WHERE id = ?`,
		s.Name, s.DisplayName, s.Description, s.Enabled, s.Required, s.Emphasize, s.ID)
	if err != nil {
		return 0, mapConstraint(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, store.ErrNotFound
	}
	return s.ID, nil
}

func (r *resourcesRepo) ListIdentityResourceNames(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `SELECT name FROM identity_resources ORDER BY name ASC`)
}

func (r *resourcesRepo) ListApiScopeNames(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `SELECT name FROM api_scopes ORDER BY name ASC`)
}

func (r *resourcesRepo) listNames(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func scanIdentityResource(s scanner) (domain.IdentityResource, error) {
	var (
		res    domain.IdentityResource
		claims string
	)
	err := s.Scan(&res.ID, &res.Name, &res.DisplayName, &res.Description,
		&res.Enabled, &claims, &res.Created)
	if err != nil {
		return domain.IdentityResource{}, err
	}
	res.UserClaims = splitNames(claims)
	return res, nil
}

func scanApiResource(s scanner) (domain.ApiResource, error) {
	var (
		res    domain.ApiResource
		scopes string
		claims string
	)
	err := s.Scan(&res.ID, &res.Name, &res.DisplayName, &res.Description,
		&res.Enabled, &scopes, &claims, &res.Created)
	if err != nil {
		return domain.ApiResource{}, err
	}
	res.Scopes = splitNames(scopes)
	res.UserClaims = splitNames(claims)
	return res, nil
}
