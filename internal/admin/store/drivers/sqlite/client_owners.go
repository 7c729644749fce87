package sqlite

import (
	"context"

	"github.com/idprov/clientadmin/internal/admin/domain"
)

type clientOwnersRepo struct {
	db dbtx
}

func (r *clientOwnersRepo) InsertOwner(ctx context.Context, clientID, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO client_owners (client_id, user_id) VALUES (?, ?)`, clientID, userID)
	return mapConstraint(err)
}

func (r *clientOwnersRepo) GetOwner(ctx context.Context, clientID int64) (domain.ClientOwner, error) {
	var o domain.ClientOwner
	err := r.db.QueryRowContext(ctx,
		`SELECT client_id, user_id FROM client_owners WHERE client_id = ?`, clientID).
		Scan(&o.ClientID, &o.UserID)
	if err != nil {
		return domain.ClientOwner{}, mapNotFound(err)
	}
	return o, nil
}

func (r *clientOwnersRepo) DeleteOwner(ctx context.Context, clientID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM client_owners WHERE client_id = ?`, clientID)
	return err
}
