package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amountPtr(v float64) *float64 {
	return &v
}

func TestBeneficiaryLookupInput_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.Nil(t, BeneficiaryLookupInput{PhoneNumber: "9876543210"}.Validate())
	})

	testCases := []struct {
		name  string
		phone string
	}{
		{"Empty", ""},
		{"TooShort", "987654321"},
		{"TooLong", "98765432101"},
		{"NonNumeric", "98765abcde"},
		{"DecimalPoint", "9876.54321"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := BeneficiaryLookupInput{PhoneNumber: tc.phone}.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, "phoneNumber", errs[0].Field)
			assert.Equal(t, "Phone number must be exactly 10 digits", errs[0].Message)
		})
	}
}

func TestAmountInput_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.Nil(t, AmountInput{Amount: amountPtr(100.5), Remark: "lunch"}.Validate())
	})

	t.Run("ValidWithoutRemark", func(t *testing.T) {
		assert.Nil(t, AmountInput{Amount: amountPtr(1)}.Validate())
	})

	t.Run("Missing", func(t *testing.T) {
		errs := AmountInput{}.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "Amount is required", errs[0].Message)
	})

	t.Run("Zero", func(t *testing.T) {
		errs := AmountInput{Amount: amountPtr(0)}.Validate()
		assert.Equal(t, "Amount must be greater than 0", errs.ByField("amount"))
	})

	t.Run("Negative", func(t *testing.T) {
		errs := AmountInput{Amount: amountPtr(-5)}.Validate()
		assert.Equal(t, "Amount must be greater than 0", errs.ByField("amount"))
	})

	t.Run("ThreeDecimals", func(t *testing.T) {
		errs := AmountInput{Amount: amountPtr(10.125)}.Validate()
		assert.Equal(t, "Amount must have at most 2 decimal places", errs.ByField("amount"))
	})

	t.Run("RemarkTooLong", func(t *testing.T) {
		long := make([]byte, 141)
		for i := range long {
			long[i] = 'x'
		}
		errs := AmountInput{Amount: amountPtr(10), Remark: string(long)}.Validate()
		assert.Equal(t, "Remark must be at most 140 characters", errs.ByField("remark"))
	})

	t.Run("MultipleFailuresAllReported", func(t *testing.T) {
		long := make([]byte, 141)
		for i := range long {
			long[i] = 'x'
		}
		errs := AmountInput{Amount: amountPtr(-1), Remark: string(long)}.Validate()
		require.Len(t, errs, 2)
		assert.NotEmpty(t, errs.ByField("amount"))
		assert.NotEmpty(t, errs.ByField("remark"))
	})
}

func TestPinInput_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.Nil(t, PinInput{Pin: "1234"}.Validate())
	})

	testCases := []struct {
		name string
		pin  string
	}{
		{"Empty", ""},
		{"TooShort", "123"},
		{"TooLong", "12345"},
		{"NonNumeric", "12ab"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := PinInput{Pin: tc.pin}.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, "PIN must be exactly 4 digits", errs[0].Message)
		})
	}
}

func TestRegisterInput_Validate(t *testing.T) {
	valid := RegisterInput{
		FullName:        "Jane Doe",
		PhoneNumber:     "9876543210",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}

	t.Run("Valid", func(t *testing.T) {
		assert.Nil(t, valid.Validate())
	})

	t.Run("ShortFullName", func(t *testing.T) {
		in := valid
		in.FullName = "J"
		assert.Equal(t, "minimum 2 characters are needed", in.Validate().ByField("fullName"))
	})

	t.Run("PasswordWithoutDigit", func(t *testing.T) {
		in := valid
		in.Password = "abcdefg"
		in.ConfirmPassword = "abcdefg"
		assert.Equal(t, "Must include a number", in.Validate().ByField("password"))
	})

	t.Run("PasswordWithoutLetter", func(t *testing.T) {
		in := valid
		in.Password = "1234567"
		in.ConfirmPassword = "1234567"
		assert.Equal(t, "Must include a letter", in.Validate().ByField("password"))
	})

	t.Run("PasswordMismatch", func(t *testing.T) {
		in := valid
		in.ConfirmPassword = "secret2"
		assert.Equal(t, "Passwords do not match", in.Validate().ByField("confirmPassword"))
	})
}

func TestUpdateProfileInput_Validate(t *testing.T) {
	t.Run("AllBlankIsValid", func(t *testing.T) {
		assert.Nil(t, UpdateProfileInput{}.Validate())
	})

	t.Run("ShortPassword", func(t *testing.T) {
		errs := UpdateProfileInput{Password: "a1"}.Validate()
		assert.Equal(t, "Minimum 6 characters", errs.ByField("password"))
	})
}

func TestAdminUserEditInput_Validate(t *testing.T) {
	valid := AdminUserEditInput{
		FullName:    "Jane Doe",
		PhoneNumber: "9876543210",
		Email:       "jane@example.com",
		Role:        "user",
	}

	t.Run("ValidWithoutPasswordChange", func(t *testing.T) {
		assert.Nil(t, valid.Validate())
	})

	t.Run("ValidWithPasswordChange", func(t *testing.T) {
		in := valid
		in.Password = "secret1"
		in.ConfirmPassword = "secret1"
		assert.Nil(t, in.Validate())
	})

	t.Run("InvalidRole", func(t *testing.T) {
		in := valid
		in.Role = "superuser"
		assert.Equal(t, "Role must be user or admin", in.Validate().ByField("role"))
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		in := valid
		in.Email = "not-an-email"
		assert.Equal(t, "Invalid email address", in.Validate().ByField("email"))
	})

	t.Run("ConfirmWithoutPassword", func(t *testing.T) {
		in := valid
		in.ConfirmPassword = "secret1"
		assert.Equal(t, "Password is required", in.Validate().ByField("password"))
	})

	t.Run("PasswordWithoutConfirm", func(t *testing.T) {
		in := valid
		in.Password = "secret1"
		assert.Equal(t, "Confirm password is required", in.Validate().ByField("confirmPassword"))
	})

	t.Run("PasswordMismatch", func(t *testing.T) {
		in := valid
		in.Password = "secret1"
		in.ConfirmPassword = "secret2"
		assert.Equal(t, "Passwords do not match", in.Validate().ByField("confirmPassword"))
	})
}

func TestForgotPasswordInput_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.Nil(t, ForgotPasswordInput{PhoneNumber: "9876543210"}.Validate())
	})

	t.Run("BadPhone", func(t *testing.T) {
		errs := ForgotPasswordInput{PhoneNumber: "98-76"}.Validate()
		assert.Equal(t, "Phone number must be exactly 10 digits", errs.ByField("phoneNumber"))
	})
}

func TestResetPasswordInput_Validate(t *testing.T) {
	valid := ResetPasswordInput{
		Token:           "rt-1",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}

	t.Run("Valid", func(t *testing.T) {
		assert.Nil(t, valid.Validate())
	})

	t.Run("MissingToken", func(t *testing.T) {
		in := valid
		in.Token = ""
		assert.Equal(t, "Reset token is required", in.Validate().ByField("token"))
	})

	t.Run("Mismatch", func(t *testing.T) {
		in := valid
		in.ConfirmPassword = "secret2"
		assert.Equal(t, "Passwords do not match", in.Validate().ByField("confirmPassword"))
	})

	t.Run("WeakPassword", func(t *testing.T) {
		in := valid
		in.Password = "aaaaaa"
		in.ConfirmPassword = "aaaaaa"
		assert.Equal(t, "Must include a number", in.Validate().ByField("password"))
	})
}
