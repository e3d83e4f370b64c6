package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOptions(t *testing.T) {
	opts := []string{"A", "B"}

	tests := []struct {
		name    string
		qtype   QuestionType
		options []string
		wantErr bool
	}{
		{"multiple choice with options", TypeMultipleChoice, opts, false},
		{"checkbox with options", TypeCheckbox, opts, false},
		{"dropdown with options", TypeDropdown, opts, false},
		{"multiple choice without options", TypeMultipleChoice, nil, true},
		{"checkbox without options", TypeCheckbox, nil, true},
		{"dropdown without options", TypeDropdown, nil, true},
		{"short text without options", TypeShortText, nil, false},
		{"short text ignores options", TypeShortText, opts, false},
		{"date without options", TypeDate, nil, false},
		{"file upload without options", TypeFileUpload, nil, false},
		{"unknown type fails closed", QuestionType("RATING"), nil, true},
		{"unknown type with options fails closed", QuestionType("RATING"), opts, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptions(tt.qtype, tt.options)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAnswer(t *testing.T) {
	opts := []string{"A", "B"}

	tests := []struct {
		name    string
		qtype   QuestionType
		options []string
		value   any
		wantErr bool
	}{
		{"short text accepts string", TypeShortText, nil, "hello", false},
		{"short text rejects number", TypeShortText, nil, 42.0, true},
		{"paragraph accepts string", TypeParagraph, nil, "a longer text", false},

		{"multiple choice accepts an option", TypeMultipleChoice, opts, "A", false},
		{"multiple choice rejects a non-option", TypeMultipleChoice, opts, "C", true},
		{"multiple choice rejects a list", TypeMultipleChoice, opts, []any{"A"}, true},
		{"dropdown accepts an option", TypeDropdown, opts, "B", false},
		{"dropdown rejects a non-option", TypeDropdown, opts, "Z", true},

		{"checkbox accepts subset", TypeCheckbox, opts, []any{"A", "B"}, false},
		{"checkbox accepts empty list", TypeCheckbox, opts, []any{}, false},
		{"checkbox rejects non-option element", TypeCheckbox, opts, []any{"A", "C"}, true},
		{"checkbox rejects plain string", TypeCheckbox, opts, "A", true},
		{"checkbox rejects mixed types", TypeCheckbox, opts, []any{"A", 1.0}, true},

		{"date accepts ISO date", TypeDate, nil, "2025-02-28", false},
		{"date rejects bad format", TypeDate, nil, "28/02/2025", true},
		{"date rejects impossible day", TypeDate, nil, "2025-02-31", true},
		{"date rejects non-string", TypeDate, nil, 20250228.0, true},

		{"file upload accepts reference", TypeFileUpload, nil, "uploads/cv.pdf", false},
		{"file upload rejects empty reference", TypeFileUpload, nil, "", true},
		{"file upload rejects non-string", TypeFileUpload, nil, true, true},

		{"unknown type fails closed", QuestionType("RATING"), nil, "5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswer(tt.qtype, tt.options, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
