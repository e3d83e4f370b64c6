package forms

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sarthakcode01/hacksetu-be/database"
	"github.com/sarthakcode01/hacksetu-be/model"
)

// SubmitResponse records one respondent's complete answer set against a live
// form. The response and all its answers are written in one transaction, so
// a failed submission never leaves partial answers behind. Draft and closed
// forms answer exactly like absent ones, so respondents learn nothing about
// forms they cannot see.
//
// The duplicate check here is only the friendly path: the store's unique
// index on (form_id, user_id) is what actually arbitrates a concurrent
// double submit, and its violation surfaces as ErrAlreadyResponded.
func (s *Store) SubmitResponse(ctx context.Context, actor model.Actor, formID uuid.UUID, answers []model.AnswerInput) (uuid.UUID, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	f, err := getForm(ctx, tx, formID)
	if errors.Is(err, model.ErrNotFound) {
		return uuid.Nil, model.ErrFormNotLive
	}
	if err != nil {
		return uuid.Nil, err
	}
	if f.Status != model.StatusLive {
		return uuid.Nil, model.ErrFormNotLive
	}
	if !model.CanRespond(actor, f) {
		return uuid.Nil, model.ErrUnauthorized
	}

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT 1 FROM response
		WHERE form_id = ? AND user_id = ?`,
		formID.String(), actor.ID.String(),
	).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, err
	}
	if exists {
		return uuid.Nil, model.ErrAlreadyResponded
	}

	if err := validateAnswers(f, answers); err != nil {
		return uuid.Nil, err
	}

	responseID := uuid.New()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO response (id, form_id, user_id, created_at)
		VALUES (?, ?, ?, ?)`,
		responseID.String(), formID.String(), actor.ID.String(), time.Now(),
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return uuid.Nil, model.ErrAlreadyResponded
		}
		return uuid.Nil, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO answer (response_id, question_id, value)
		VALUES (?, ?, ?)`)
	if err != nil {
		return uuid.Nil, err
	}
	defer stmt.Close()

	for _, a := range answers {
		valueJson, err := json.Marshal(a.Value)
		if err != nil {
			return uuid.Nil, err
		}
		_, err = stmt.ExecContext(ctx, responseID.String(), a.QuestionID.String(), string(valueJson))
		if err != nil {
			return uuid.Nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		if database.IsUniqueViolation(err) {
			return uuid.Nil, model.ErrAlreadyResponded
		}
		return uuid.Nil, err
	}
	return responseID, nil
}

// validateAnswers checks every submitted answer against the form's question
// set: each must resolve to a question of this form, carry a value of the
// question type's shape, and every required question must be answered.
func validateAnswers(f *model.Form, answers []model.AnswerInput) error {
	answered := make(map[uuid.UUID]bool, len(answers))
	for _, a := range answers {
		q, ok := f.Question(a.QuestionID)
		if !ok {
			return fmt.Errorf("%w: %s", model.ErrQuestionMismatch, a.QuestionID)
		}
		if answered[q.ID] {
			return fmt.Errorf("%w: question %d answered twice", model.ErrInvalidAnswer, q.Position)
		}
		answered[q.ID] = true

		if err := model.ValidateAnswer(q.Type, q.Options, a.Value); err != nil {
			return fmt.Errorf("%w: question %d: %v", model.ErrInvalidAnswer, q.Position, err)
		}
	}

	for _, q := range f.Questions {
		if q.Required && !answered[q.ID] {
			return fmt.Errorf("%w: question %d is required", model.ErrInvalidAnswer, q.Position)
		}
	}
	return nil
}

// ListResponses returns every collected response with its answers, newest
// first. Only the form's owner may see them.
func (s *Store) ListResponses(ctx context.Context, actor model.Actor, formID uuid.UUID) ([]model.Response, error) {
	f, err := getForm(ctx, s.db, formID)
	if err != nil {
		return nil, err
	}
	if !model.CanViewResponses(actor, f) {
		return nil, model.ErrUnauthorized
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.user_id, r.created_at, a.question_id, a.value
		FROM response r
		LEFT OUTER JOIN answer a ON (r.id = a.response_id)
		WHERE r.form_id = ?
		ORDER BY r.created_at DESC, r.id, a.id`,
		formID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := []model.Response{}
	for rows.Next() {
		r := model.Response{FormID: formID}
		var questionID, value sql.NullString

		err = rows.Scan(&r.ID, &r.UserID, &r.CreatedAt, &questionID, &value)
		if err != nil {
			return nil, err
		}

		lastIdx := len(responses) - 1
		if lastIdx < 0 || responses[lastIdx].ID != r.ID {
			responses = append(responses, r)
			lastIdx++
		}
		if !questionID.Valid {
			// response with no answers, nothing to attach
			continue
		}

		a := model.Answer{}
		a.QuestionID, err = uuid.Parse(questionID.String)
		if err != nil {
			return nil, err
		}
		err = json.Unmarshal([]byte(value.String), &a.Value)
		if err != nil {
			return nil, err
		}
		responses[lastIdx].Answers = append(responses[lastIdx].Answers, a)
	}
	return responses, rows.Err()
}
