package model

import (
	"fmt"
	"time"
)

type QuestionType string

const (
	TypeShortText      QuestionType = "SHORT_TEXT"
	TypeParagraph      QuestionType = "PARAGRAPH"
	TypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	TypeCheckbox       QuestionType = "CHECKBOX"
	TypeDropdown       QuestionType = "DROPDOWN"
	TypeDate           QuestionType = "DATE"
	TypeFileUpload     QuestionType = "FILE_UPLOAD"
)

const dateLayout = "2006-01-02"

func (t QuestionType) Known() bool {
	switch t {
	case TypeShortText, TypeParagraph, TypeMultipleChoice,
		TypeCheckbox, TypeDropdown, TypeDate, TypeFileUpload:
		return true
	}
	return false
}

// HasOptions reports whether the type selects from a fixed option list.
func (t QuestionType) HasOptions() bool {
	switch t {
	case TypeMultipleChoice, TypeCheckbox, TypeDropdown:
		return true
	}
	return false
}

// ValidateOptions checks the option list against the structural rule of the
// type. Types that don't select from options ignore any list they are given;
// unknown types fail closed.
func ValidateOptions(t QuestionType, options []string) error {
	if !t.Known() {
		return fmt.Errorf("unknown question type %q", t)
	}
	if t.HasOptions() && len(options) == 0 {
		return fmt.Errorf("options must not be empty for %s type", t)
	}
	return nil
}

// ValidateAnswer checks a submitted value against the answer shape of the
// type. Values come straight out of JSON decoding, so selections arrive as
// string or []any.
func ValidateAnswer(t QuestionType, options []string, value any) error {
	switch t {
	case TypeShortText, TypeParagraph:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%s answer must be text", t)
		}

	case TypeMultipleChoice, TypeDropdown:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s answer must be a single option", t)
		}
		if !isOption(options, s) {
			return fmt.Errorf("%q is not one of the options", s)
		}

	case TypeCheckbox:
		picks, ok := value.([]any)
		if !ok {
			return fmt.Errorf("%s answer must be a list of options", t)
		}
		for _, p := range picks {
			s, ok := p.(string)
			if !ok {
				return fmt.Errorf("%s answer must be a list of options", t)
			}
			if !isOption(options, s) {
				return fmt.Errorf("%q is not one of the options", s)
			}
		}

	case TypeDate:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s answer must be a date string", t)
		}
		if _, err := time.Parse(dateLayout, s); err != nil {
			return fmt.Errorf("%q is not a valid date (want YYYY-MM-DD)", s)
		}

	case TypeFileUpload:
		s, ok := value.(string)
		if !ok || s == "" {
			return fmt.Errorf("%s answer must be a file reference", t)
		}

	default:
		return fmt.Errorf("unknown question type %q", t)
	}
	return nil
}

func isOption(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}
