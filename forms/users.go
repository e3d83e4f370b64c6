package forms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/sarthakcode01/hacksetu-be/model"
)

const fullNameMinLen = 2

// GetProfile returns the actor's own profile.
func (s *Store) GetProfile(ctx context.Context, actorID uuid.UUID) (*model.User, error) {
	u := model.User{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, full_name, email, role, org_name, college, city, created_at
		FROM user
		WHERE id = ?`,
		actorID.String(),
	).Scan(&u.ID, &u.FullName, &u.Email, &u.Role, &u.OrgName, &u.College, &u.City, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile changes the display name, the only mutable profile field.
func (s *Store) UpdateProfile(ctx context.Context, actorID uuid.UUID, fullName string) (*model.User, error) {
	if len(fullName) < fullNameMinLen {
		var errs *multierror.Error
		errs = multierror.Append(errs,
			fmt.Errorf("name must be at least %d characters long", fullNameMinLen))
		return nil, errs.ErrorOrNil()
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE user
		SET full_name = ?
		WHERE id = ?`,
		fullName, actorID.String(),
	)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, model.ErrNotFound
	}

	return s.GetProfile(ctx, actorID)
}
