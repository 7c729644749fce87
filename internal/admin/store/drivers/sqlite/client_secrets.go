package sqlite

import (
	"context"
	"database/sql"

	"github.com/idprov/clientadmin/internal/admin/domain"
)

type clientSecretsRepo struct {
	db dbtx
}

func (r *clientSecretsRepo) InsertSecret(ctx context.Context, s domain.ClientSecret) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO client_secrets (client_id, type, value, description, expiration, created)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ClientID, s.Type, s.Value, s.Description, mapOptionalTime(s.Expiration), s.Created,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *clientSecretsRepo) ListSecretsByClient(ctx context.Context, clientID int64) ([]domain.ClientSecret, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, client_id, type, value, description, expiration, created
		FROM client_secrets
		WHERE client_id = ?
		ORDER BY created DESC, id DESC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ClientSecret
	for rows.Next() {
		var (
			s          domain.ClientSecret
			expiration sql.NullTime
		)
		if err := rows.Scan(&s.ID, &s.ClientID, &s.Type, &s.Value, &s.Description, &expiration, &s.Created); err != nil {
			return nil, err
		}
		s.Expiration = mapNullTimePtr(expiration)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *clientSecretsRepo) DeleteSecret(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM client_secrets WHERE id = ?`, id)
	return err
}
