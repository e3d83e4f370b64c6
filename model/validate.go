package model

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

const (
	TitleMinLen        = 3
	TitleMaxLen        = 100
	QuestionTextMinLen = 3
)

// QuestionDef is a proposed question inside a form definition. Its position
// is its index in the definition's question list.
type QuestionDef struct {
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Required bool         `json:"required"`
	Options  []string     `json:"options"`
}

// FormDef is a proposed form definition as submitted by an owner.
type FormDef struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Questions   []QuestionDef `json:"questions"`
}

// ValidateTitle applies the title rules on their own, for metadata edits.
func ValidateTitle(title string) error {
	var errs *multierror.Error
	errs = appendTitleViolations(errs, title)
	return errs.ErrorOrNil()
}

func appendTitleViolations(errs *multierror.Error, title string) *multierror.Error {
	if len(title) < TitleMinLen {
		return multierror.Append(errs,
			fmt.Errorf("form title must be at least %d characters long", TitleMinLen))
	}
	if len(title) > TitleMaxLen {
		return multierror.Append(errs, fmt.Errorf("form title is too long"))
	}
	return errs
}

// Validate checks the whole definition and aggregates every violation, so
// the caller gets one complete correction list instead of the first failure.
func (d FormDef) Validate() error {
	var errs *multierror.Error
	errs = appendTitleViolations(errs, d.Title)

	if len(d.Questions) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("form must have at least one question"))
	}

	for i, q := range d.Questions {
		if len(q.Text) < QuestionTextMinLen {
			errs = multierror.Append(errs,
				fmt.Errorf("question %d: text must be at least %d characters long", i, QuestionTextMinLen))
		}
		if err := ValidateOptions(q.Type, q.Options); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("question %d: %v", i, err))
		}
	}

	return errs.ErrorOrNil()
}
