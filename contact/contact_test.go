package contact

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledForm() FormData {
	return FormData{Name: "Ada", Email: "ada@example.com", Message: "Let's build something."}
}

func TestSubmitSuccessClearsForm(t *testing.T) {
	var got FormData
	sec := Section{Form: filledForm()}
	err := sec.Submit(context.Background(), SenderFunc(func(_ context.Context, f FormData) error {
		got = f
		return nil
	}))
	require.NoError(t, err)

	want := Section{Status: Status{Type: StatusSuccess, Message: SuccessMessage}}
	if diff := cmp.Diff(want, sec); diff != "" {
		t.Errorf("section mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, filledForm(), got, "sender receives the submitted form")
}

func TestSubmitFailureKeepsForm(t *testing.T) {
	sendErr := errors.New("dial tcp: connection refused")
	sec := Section{Form: filledForm()}
	err := sec.Submit(context.Background(), SenderFunc(func(context.Context, FormData) error {
		return sendErr
	}))
	require.ErrorIs(t, err, sendErr)

	assert.True(t, sec.Status.IsError())
	assert.NotEmpty(t, sec.Status.Message)
	assert.Equal(t, filledForm(), sec.Form)
	assert.False(t, sec.Loading)
}

func TestSubmitIsLoadingWhileSending(t *testing.T) {
	sec := Section{Form: filledForm()}
	var during bool
	_ = sec.Submit(context.Background(), SenderFunc(func(context.Context, FormData) error {
		during = sec.Loading
		return nil
	}))
	assert.True(t, during)
	assert.False(t, sec.Loading)
}

func TestSubmitWithoutSender(t *testing.T) {
	sec := Section{Form: filledForm()}
	err := sec.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoSender)
	assert.True(t, sec.Status.IsError())
	assert.Equal(t, filledForm(), sec.Form)
}

func TestResetFromSuccess(t *testing.T) {
	sec := Section{}
	sec.Succeed()
	require.True(t, sec.Status.IsSuccess())

	sec.Reset()
	assert.Equal(t, Status{}, sec.Status)
	assert.Equal(t, StatusNone, sec.Status.Type)
}

func TestFailDefaultsMessage(t *testing.T) {
	var sec Section
	sec.Fail("")
	assert.Equal(t, ErrorMessage, sec.Status.Message)
}

func TestNormalize(t *testing.T) {
	f := FormData{Name: "  Ada ", Email: "\tada@example.com\n", Message: " hi "}
	f.Normalize()
	assert.Equal(t, FormData{Name: "Ada", Email: "ada@example.com", Message: "hi"}, f)
	assert.True(t, FormData{}.IsZero())
	assert.False(t, f.IsZero())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*FormData)
		wantField string
	}{
		{"valid", func(*FormData) {}, ""},
		{"missing name", func(f *FormData) { f.Name = "" }, "Name"},
		{"missing email", func(f *FormData) { f.Email = "" }, "Email"},
		{"bad email", func(f *FormData) { f.Email = "not-an-email" }, "Email"},
		{"single label domain", func(f *FormData) { f.Email = "a@b" }, ""},
		{"localhost", func(f *FormData) { f.Email = "user@localhost" }, ""},
		{"empty local part", func(f *FormData) { f.Email = "@example.com" }, "Email"},
		{"empty domain", func(f *FormData) { f.Email = "ada@" }, "Email"},
		{"space in address", func(f *FormData) { f.Email = "ada lovelace@example.com" }, "Email"},
		{"missing message", func(f *FormData) { f.Message = "" }, "Message"},
		{"long message", func(f *FormData) { f.Message = strings.Repeat("x", 5001) }, "Message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filledForm()
			tt.mutate(&f)
			err := f.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidForm)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantField, fe.Field)
			assert.NotEmpty(t, fe.Message)
		})
	}
}

func TestIsMailbox(t *testing.T) {
	for addr, want := range map[string]bool{
		"ada@example.com":    true,
		"a@b":                true,
		"user@localhost":     true,
		"first.last+tag@x.y": true,
		"":                   false,
		"plain":              false,
		"@b":                 false,
		"a@":                 false,
		"a@.b":               false,
		"a@b.":               false,
		"a@b..c":             false,
		"a b@c":              false,
	} {
		assert.Equal(t, want, IsMailbox(addr), addr)
	}
}

func TestFieldErrorFromPassesOtherErrors(t *testing.T) {
	other := errors.New("boom")
	assert.Same(t, other, FieldErrorFrom(other))
	assert.NoError(t, FieldErrorFrom(nil))
}
