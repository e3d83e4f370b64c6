package forms

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sarthakcode01/hacksetu-be/model"
)

// FormSummary is one row of an owner's form listing.
type FormSummary struct {
	ID             uuid.UUID        `json:"form_id"`
	Title          string           `json:"title"`
	Status         model.FormStatus `json:"status"`
	TotalResponses int              `json:"total_responses"`
	CreatedAt      time.Time        `json:"created_at"`
}

// OpenForm is the respondent-facing listing of a live form.
type OpenForm struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ShareCode   string    `json:"share_code"`
	Company     string    `json:"company,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateForm validates the definition and persists the form with its full
// question set in one transaction. New forms start in DRAFT; question order
// is fixed by the definition's array order and never changes afterwards.
func (s *Store) CreateForm(ctx context.Context, actor model.Actor, def model.FormDef) (*model.Form, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	f := &model.Form{
		ID:          uuid.New(),
		OwnerID:     actor.ID,
		Title:       def.Title,
		Description: def.Description,
		Status:      model.StatusDraft,
		CreatedAt:   time.Now(),
	}
	// the share code is derived from the form's own identity, so it is
	// stable for the life of the form
	f.ShareCode = f.ID.String()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO form (id, owner_id, title, description, status, share_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.ID.String(), f.OwnerID.String(), f.Title, f.Description, f.Status, f.ShareCode, f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO question (id, form_id, text, type, required, options, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	for i, qd := range def.Questions {
		q := model.Question{
			ID:       uuid.New(),
			FormID:   f.ID,
			Text:     qd.Text,
			Type:     qd.Type,
			Required: qd.Required,
			Position: i,
		}
		if qd.Type.HasOptions() {
			q.Options = qd.Options
		}

		opts, err := encodeOptions(q.Options)
		if err != nil {
			return nil, err
		}
		_, err = stmt.ExecContext(ctx, q.ID.String(), f.ID.String(), q.Text, q.Type, q.Required, opts, q.Position)
		if err != nil {
			return nil, err
		}
		f.Questions = append(f.Questions, q)
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return f, nil
}

// ListOwned returns the actor's forms, newest first, with response counts.
func (s *Store) ListOwned(ctx context.Context, actor model.Actor) ([]FormSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT f.id, f.title, f.status, f.created_at, COUNT(r.id)
		FROM form f
		LEFT OUTER JOIN response r ON (f.id = r.form_id)
		WHERE f.owner_id = ?
		GROUP BY f.id
		ORDER BY f.created_at DESC`,
		actor.ID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []FormSummary{}
	for rows.Next() {
		fs := FormSummary{}
		err = rows.Scan(&fs.ID, &fs.Title, &fs.Status, &fs.CreatedAt, &fs.TotalResponses)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, fs)
	}
	return summaries, rows.Err()
}

// GetForm returns a form with its questions. Forms the actor may not read
// report not-found rather than leaking their existence.
func (s *Store) GetForm(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Form, error) {
	f, err := getForm(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if !model.CanRead(actor, f) {
		return nil, model.ErrNotFound
	}
	return f, nil
}

// ListOpen returns live forms the actor does not own and has not yet
// answered, newest first.
func (s *Store) ListOpen(ctx context.Context, actor model.Actor) ([]OpenForm, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT f.id, f.title, f.description, f.share_code, u.org_name, f.created_at
		FROM form f
		INNER JOIN user u ON (f.owner_id = u.id)
		WHERE f.status = ?
			AND f.owner_id <> ?
			AND NOT EXISTS (
				SELECT 1 FROM response r
				WHERE r.form_id = f.id AND r.user_id = ?
			)
		ORDER BY f.created_at DESC`,
		model.StatusLive,
		actor.ID.String(),
		actor.ID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	open := []OpenForm{}
	for rows.Next() {
		of := OpenForm{}
		err = rows.Scan(&of.ID, &of.Title, &of.Description, &of.ShareCode, &of.Company, &of.CreatedAt)
		if err != nil {
			return nil, err
		}
		open = append(open, of)
	}
	return open, rows.Err()
}

// UpdateMetadata edits title and description only. The question set is fixed
// at creation and cannot be changed here, whatever the form's status.
func (s *Store) UpdateMetadata(ctx context.Context, actor model.Actor, id uuid.UUID, title, description string) (*model.Form, error) {
	f, err := getForm(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if !model.CanModify(actor, f) {
		return nil, model.ErrUnauthorized
	}
	if f.Status == model.StatusClosed {
		return nil, fmt.Errorf("%w: closed form is read-only", model.ErrInvalidTransition)
	}
	if err := model.ValidateTitle(title); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE form
		SET title = ?, description = ?
		WHERE id = ?`,
		title, description, id.String(),
	)
	if err != nil {
		return nil, err
	}

	f.Title = title
	f.Description = description
	return f, nil
}

// Delete removes a form together with its questions and any collected
// responses. The store's foreign keys cascade the children.
func (s *Store) Delete(ctx context.Context, actor model.Actor, id uuid.UUID) error {
	f, err := getForm(ctx, s.db, id)
	if err != nil {
		return err
	}
	if !model.CanModify(actor, f) {
		return model.ErrUnauthorized
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM form WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n < 1 {
		return model.ErrNotFound
	}
	return nil
}

// SetStatus runs the lifecycle state machine and persists the new status.
// This is the only code path that writes the status column.
func (s *Store) SetStatus(ctx context.Context, actor model.Actor, id uuid.UUID, target model.FormStatus) (*model.Form, error) {
	f, err := getForm(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if err := f.Transition(actor, target); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE form
		SET status = ?
		WHERE id = ?`,
		f.Status, id.String(),
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}
