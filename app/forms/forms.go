// Package forms holds the declarative field schemas for every form the site
// accepts. A form keeps the submitted values, so a failed validation can be
// re-rendered pre-filled.
package forms

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Errors maps a form field name to a human-readable validation message.
type Errors map[string]string

// RegisterForm is the account registration schema.
type RegisterForm struct {
	Name     string `form:"name" validate:"required,min=2,max=100"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

// LoginForm is the sign-in schema.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// PostForm is the schema shared by the new-post and edit-post pages.
type PostForm struct {
	Title    string `form:"title" validate:"required,min=3,max=200"`
	Subtitle string `form:"subtitle" validate:"required,max=200"`
	ImageURL string `form:"img_url" validate:"required,url"`
	Body     string `form:"body" validate:"required,min=10"`
}

// CommentForm is the comment submission schema.
type CommentForm struct {
	Body string `form:"comment" validate:"required,min=1,max=1000"`
}

func ParseRegisterForm(values url.Values) *RegisterForm {
	return &RegisterForm{
		Name:     strings.TrimSpace(values.Get("name")),
		Email:    strings.TrimSpace(values.Get("email")),
		Password: values.Get("password"),
	}
}

func ParseLoginForm(values url.Values) *LoginForm {
	return &LoginForm{
		Email:    strings.TrimSpace(values.Get("email")),
		Password: values.Get("password"),
	}
}

func ParsePostForm(values url.Values) *PostForm {
	return &PostForm{
		Title:    strings.TrimSpace(values.Get("title")),
		Subtitle: strings.TrimSpace(values.Get("subtitle")),
		ImageURL: strings.TrimSpace(values.Get("img_url")),
		Body:     values.Get("body"),
	}
}

func ParseCommentForm(values url.Values) *CommentForm {
	return &CommentForm{
		Body: strings.TrimSpace(values.Get("comment")),
	}
}

func (f *RegisterForm) Validate() (bool, Errors) { return check(f) }
func (f *LoginForm) Validate() (bool, Errors)    { return check(f) }
func (f *PostForm) Validate() (bool, Errors)     { return check(f) }
func (f *CommentForm) Validate() (bool, Errors)  { return check(f) }

func check(form interface{}) (bool, Errors) {
	err := validate.Struct(form)
	if err == nil {
		return true, nil
	}

	fieldErrors := Errors{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fieldErrors[fe.Field()] = message(fe)
		}
	} else {
		fieldErrors["form"] = "invalid submission"
	}
	return false, fieldErrors
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "url":
		return "Must be a valid URL"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	default:
		return "Invalid value"
	}
}
