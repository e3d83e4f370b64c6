// Package forms implements the form definition and response consistency
// engine on top of a relational store. All operations take the authenticated
// actor explicitly and return the error kinds declared in the model package;
// translating those to HTTP is the routes layer's job.
package forms

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/sarthakcode01/hacksetu-be/model"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx, so form reads can run
// inside or outside a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// getForm loads a form and its questions ordered by position.
func getForm(ctx context.Context, q querier, id uuid.UUID) (*model.Form, error) {
	f := model.Form{}
	err := q.QueryRowContext(ctx, `
		SELECT id, owner_id, title, description, status, share_code, created_at
		FROM form
		WHERE id = ?`,
		id.String(),
	).Scan(&f.ID, &f.OwnerID, &f.Title, &f.Description, &f.Status, &f.ShareCode, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, `
		SELECT id, form_id, text, type, required, options, position
		FROM question
		WHERE form_id = ?
		ORDER BY position`,
		id.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		qn := model.Question{}
		var opts string
		err = rows.Scan(&qn.ID, &qn.FormID, &qn.Text, &qn.Type, &qn.Required, &opts, &qn.Position)
		if err != nil {
			return nil, err
		}
		qn.Options, err = decodeOptions(opts)
		if err != nil {
			return nil, err
		}
		f.Questions = append(f.Questions, qn)
	}
	return &f, rows.Err()
}

func encodeOptions(options []string) (string, error) {
	if len(options) == 0 {
		return "", nil
	}
	b, err := json.Marshal(options)
	return string(b), err
}

func decodeOptions(s string) (options []string, err error) {
	if s == "" {
		return nil, nil
	}
	err = json.Unmarshal([]byte(s), &options)
	return
}
