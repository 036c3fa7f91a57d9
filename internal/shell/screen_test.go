package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionsScreenRetriesInvalidInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n9\n2\n"), &out)

	choice, ok := OptionsScreen{
		Title:   "Pick one",
		Options: []string{"first", "second"},
	}.Display(p)

	require.True(t, ok)
	require.Equal(t, "second", choice)
	require.Contains(t, out.String(), "Invalid input. Please enter a number.")
	require.Contains(t, out.String(), "Invalid choice. Please enter a number between 1 and 2")
}

func TestOptionsScreenCancelledOnEndOfInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)

	_, ok := OptionsScreen{Title: "Pick one", Options: []string{"only"}}.Display(p)
	require.False(t, ok)
}

func TestQuestionnaireRetriesUntilValidatorAccepts(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("not-an-email\nuser@example.com\nhunter2\n"), &out)

	answers, ok := QuestionnaireScreen{
		Title: "Login",
		Questions: []Question{
			{Label: "email", Validate: ValidEmail, Hint: "Please enter a valid email address."},
			{Label: "password"},
		},
	}.Display(p)

	require.True(t, ok)
	require.Equal(t, "user@example.com", answers["email"])
	require.Equal(t, "hunter2", answers["password"])
	require.Contains(t, out.String(), "Please enter a valid email address.")
}

func TestQuestionnaireCancelledMidway(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("user@example.com\n"), &out)

	answers, ok := QuestionnaireScreen{
		Title: "Login",
		Questions: []Question{
			{Label: "email", Validate: ValidEmail},
			{Label: "password"},
		},
	}.Display(p)

	require.False(t, ok)
	require.Nil(t, answers)
}
