package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFormValidation(t *testing.T) {
	tests := []struct {
		name      string
		values    url.Values
		ok        bool
		errFields []string
	}{
		{
			name: "valid submission",
			values: url.Values{
				"name":     {"Jane Doe"},
				"email":    {"jane@example.com"},
				"password": {"long enough password"},
			},
			ok: true,
		},
		{
			name:      "everything missing",
			values:    url.Values{},
			ok:        false,
			errFields: []string{"name", "email", "password"},
		},
		{
			name: "bad email and short password",
			values: url.Values{
				"name":     {"Jane Doe"},
				"email":    {"not-an-email"},
				"password": {"short"},
			},
			ok:        false,
			errFields: []string{"email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := ParseRegisterForm(tt.values)
			ok, errs := form.Validate()
			assert.Equal(t, tt.ok, ok)
			for _, field := range tt.errFields {
				assert.Contains(t, errs, field)
			}
			assert.Len(t, errs, len(tt.errFields))
		})
	}
}

func TestRegisterFormPreservesSubmittedValues(t *testing.T) {
	form := ParseRegisterForm(url.Values{
		"name":  {"  Jane Doe  "},
		"email": {"bad-email"},
	})

	ok, _ := form.Validate()
	assert.False(t, ok)
	// Re-rendering the form must show what was typed
	assert.Equal(t, "Jane Doe", form.Name)
	assert.Equal(t, "bad-email", form.Email)
}

func TestLoginFormValidation(t *testing.T) {
	form := ParseLoginForm(url.Values{
		"email":    {"jane@example.com"},
		"password": {"x"},
	})
	ok, errs := form.Validate()
	assert.True(t, ok)
	assert.Empty(t, errs)

	form = ParseLoginForm(url.Values{"email": {"jane@example.com"}})
	ok, errs = form.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "password")
}

func TestPostFormValidation(t *testing.T) {
	valid := url.Values{
		"title":    {"A Fine Title"},
		"subtitle": {"And its subtitle"},
		"img_url":  {"https://example.com/cover.jpg"},
		"body":     {"Body content that is long enough"},
	}

	form := ParsePostForm(valid)
	ok, errs := form.Validate()
	assert.True(t, ok)
	assert.Empty(t, errs)

	t.Run("rejects non-URL image reference", func(t *testing.T) {
		bad := url.Values{}
		for k, v := range valid {
			bad[k] = v
		}
		bad.Set("img_url", "just-a-name")

		form := ParsePostForm(bad)
		ok, errs := form.Validate()
		assert.False(t, ok)
		assert.Contains(t, errs, "img_url")
	})

	t.Run("rejects short body", func(t *testing.T) {
		bad := url.Values{}
		for k, v := range valid {
			bad[k] = v
		}
		bad.Set("body", "too short")

		form := ParsePostForm(bad)
		ok, errs := form.Validate()
		assert.False(t, ok)
		assert.Contains(t, errs, "body")
	})
}

func TestCommentFormValidation(t *testing.T) {
	form := ParseCommentForm(url.Values{"comment": {"nice post"}})
	ok, errs := form.Validate()
	assert.True(t, ok)
	assert.Empty(t, errs)

	form = ParseCommentForm(url.Values{"comment": {"   "}})
	ok, errs = form.Validate()
	assert.False(t, ok)
	assert.Contains(t, errs, "comment")
}
