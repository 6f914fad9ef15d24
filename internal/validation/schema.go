// Package validation holds the declarative input schemas of the web
// application. Schemas are pure and UI-independent: each input type carries
// validator tags plus a field-scoped message table, and Validate returns the
// aggregated failures for every bad field.
package validation

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON field names so messages line up with the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Amount must be strictly positive
	_ = v.RegisterValidation("gtzero", func(fl validator.FieldLevel) bool {
		return fl.Field().Float() > 0
	})

	// Amount must survive the cents conversion without a remainder.
	// The *100 check intentionally runs in float64 to match the backend's
	// contract for which values count as "2 decimal places".
	_ = v.RegisterValidation("twodecimal", func(fl validator.FieldLevel) bool {
		cents := fl.Field().Float() * 100
		return cents == math.Trunc(cents)
	})

	_ = v.RegisterValidation("hasletter", func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), unicode.IsLetter)
	})

	_ = v.RegisterValidation("hasdigit", func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), unicode.IsDigit)
	})

	return v
}

// run validates the input and translates failures through the schema's
// message table. Keys are "<field>.<tag>" with a bare "<field>" fallback.
func run(input interface{}, messages map[string]string) FieldErrors {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{{Field: "", Message: err.Error()}}
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = messages[fe.Field()]
		}
		if msg == "" {
			msg = fe.Field() + " is invalid"
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

// BeneficiaryLookupInput is the recipient step of the send-money wizard
type BeneficiaryLookupInput struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,number"`
}

func (in BeneficiaryLookupInput) Validate() FieldErrors {
	return run(in, map[string]string{
		"phoneNumber": "Phone number must be exactly 10 digits",
	})
}

// AmountInput is the amount step of the send-money wizard.
// Amount is a pointer so a missing value fails "required" rather than
// sneaking through as zero.
type AmountInput struct {
	Amount *float64 `json:"amount" validate:"required,gtzero,twodecimal"`
	Remark string   `json:"remark" validate:"omitempty,max=140"`
}

func (in AmountInput) Validate() FieldErrors {
	return run(in, map[string]string{
		"amount.required":   "Amount is required",
		"amount.gtzero":     "Amount must be greater than 0",
		"amount.twodecimal": "Amount must have at most 2 decimal places",
		"remark.max":        "Remark must be at most 140 characters",
	})
}

// PinInput is the confirmation step of the send-money wizard
type PinInput struct {
	Pin string `json:"pin" validate:"required,len=4,number"`
}

func (in PinInput) Validate() FieldErrors {
	return run(in, map[string]string{
		"pin": "PIN must be exactly 4 digits",
	})
}

var passwordMessages = map[string]string{
	"password.required":  "Password is required",
	"password.min":       "Minimum 6 characters",
	"password.hasletter": "Must include a letter",
	"password.hasdigit":  "Must include a number",
}

func withPasswordMessages(messages map[string]string) map[string]string {
	for k, v := range passwordMessages {
		messages[k] = v
	}
	return messages
}

// RegisterInput is the account registration form
type RegisterInput struct {
	FullName        string `json:"fullName" validate:"required,min=2"`
	PhoneNumber     string `json:"phoneNumber" validate:"required,len=10,number"`
	Password        string `json:"password" validate:"required,min=6,hasletter,hasdigit"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (in RegisterInput) Validate() FieldErrors {
	return run(in, withPasswordMessages(map[string]string{
		"fullName":        "minimum 2 characters are needed",
		"phoneNumber":     "Phone number must be exactly 10 digits",
		"confirmPassword": "Passwords do not match",
	}))
}

// LoginInput is the login form
type LoginInput struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,number"`
	Password    string `json:"password" validate:"required,min=6,hasletter,hasdigit"`
}

func (in LoginInput) Validate() FieldErrors {
	return run(in, withPasswordMessages(map[string]string{
		"phoneNumber": "Phone number must be exactly 10 digits",
	}))
}

// ForgotPasswordInput starts a password reset for an account
type ForgotPasswordInput struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,number"`
}

func (in ForgotPasswordInput) Validate() FieldErrors {
	return run(in, map[string]string{
		"phoneNumber": "Phone number must be exactly 10 digits",
	})
}

// ResetPasswordInput completes a password reset with the emailed token
type ResetPasswordInput struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=6,hasletter,hasdigit"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (in ResetPasswordInput) Validate() FieldErrors {
	return run(in, withPasswordMessages(map[string]string{
		"token":           "Reset token is required",
		"confirmPassword": "Passwords do not match",
	}))
}

// UpdateProfileInput is the self-service profile form. Blank fields mean
// "leave unchanged" and are skipped.
type UpdateProfileInput struct {
	FullName string `json:"fullName" validate:"omitempty,min=2"`
	Password string `json:"password" validate:"omitempty,min=6,hasletter,hasdigit"`
}

func (in UpdateProfileInput) Validate() FieldErrors {
	return run(in, withPasswordMessages(map[string]string{
		"fullName": "minimum 2 characters are needed",
	}))
}

// AdminUserInput is the admin "create user" form
type AdminUserInput struct {
	FullName        string `json:"fullName" validate:"required,min=2"`
	PhoneNumber     string `json:"phoneNumber" validate:"required,len=10,number"`
	Email           string `json:"email" validate:"required,email"`
	Role            string `json:"role" validate:"required,oneof=user admin"`
	Password        string `json:"password" validate:"required,min=6,hasletter,hasdigit"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (in AdminUserInput) Validate() FieldErrors {
	return run(in, withPasswordMessages(map[string]string{
		"fullName":        "minimum 2 characters are needed",
		"phoneNumber":     "Phone number must be exactly 10 digits",
		"email":           "Invalid email address",
		"role":            "Role must be user or admin",
		"confirmPassword": "Passwords do not match",
	}))
}

// AdminUserEditInput is the admin "edit user" form. The password pair is
// optional as a unit: setting one half without the other is an error.
type AdminUserEditInput struct {
	FullName        string `json:"fullName" validate:"required,min=2"`
	PhoneNumber     string `json:"phoneNumber" validate:"required,len=10,number"`
	Email           string `json:"email" validate:"required,email"`
	Role            string `json:"role" validate:"required,oneof=user admin"`
	Password        string `json:"password" validate:"omitempty,min=6,hasletter,hasdigit"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (in AdminUserEditInput) Validate() FieldErrors {
	errs := run(in, withPasswordMessages(map[string]string{
		"fullName":    "minimum 2 characters are needed",
		"phoneNumber": "Phone number must be exactly 10 digits",
		"email":       "Invalid email address",
		"role":        "Role must be user or admin",
	}))

	password := strings.TrimSpace(in.Password)
	confirm := strings.TrimSpace(in.ConfirmPassword)
	switch {
	case password == "" && confirm == "":
		// password unchanged
	case password == "":
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	case confirm == "":
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "Confirm password is required"})
	case password != confirm:
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "Passwords do not match"})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
