package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDef() FormDef {
	return FormDef{
		Title: "Customer Survey",
		Questions: []QuestionDef{
			{Text: "How did you hear about us?", Type: TypeShortText},
			{Text: "Pick one", Type: TypeMultipleChoice, Options: []string{"A", "B"}, Required: true},
		},
	}
}

func TestFormDefValidate_OK(t *testing.T) {
	assert.NoError(t, validDef().Validate())
}

func TestFormDefValidate_TitleBounds(t *testing.T) {
	def := validDef()
	def.Title = "ab"
	assert.Error(t, def.Validate())

	def.Title = strings.Repeat("x", 101)
	assert.Error(t, def.Validate())

	def.Title = strings.Repeat("x", 100)
	assert.NoError(t, def.Validate())
}

func TestFormDefValidate_NoQuestions(t *testing.T) {
	def := validDef()
	def.Questions = nil
	assert.Error(t, def.Validate())
}

func TestFormDefValidate_OptionlessChoiceReportsPosition(t *testing.T) {
	def := validDef()
	def.Questions = append(def.Questions, QuestionDef{Text: "Pick many", Type: TypeCheckbox})

	err := def.Validate()
	require.Error(t, err)

	msgs, ok := ValidationErrors(err)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "question 2")
	assert.Contains(t, msgs[0], "options must not be empty")
}

func TestFormDefValidate_AggregatesAllViolations(t *testing.T) {
	def := FormDef{
		Title: "ab",
		Questions: []QuestionDef{
			{Text: "ok question", Type: TypeDropdown}, // missing options
			{Text: "no", Type: TypeShortText},         // text too short
		},
	}

	err := def.Validate()
	require.Error(t, err)

	msgs, ok := ValidationErrors(err)
	require.True(t, ok)
	assert.Len(t, msgs, 3)
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("Survey"))
	assert.Error(t, ValidateTitle("ab"))
	assert.Error(t, ValidateTitle(strings.Repeat("x", 101)))
}
