package auth

import "github.com/agb-hr/attendance-backend-go/internal/pkg/validator"

const maxPasswordLength = 255

type LoginRequest struct {
	EmployeeNumber string `json:"employee_number"`
	Password       string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	switch {
	case validator.IsEmpty(r.EmployeeNumber):
		errs.Add("employee_number", "employee_number is required")
	case !validator.IsValidEmployeeNumber(r.EmployeeNumber):
		errs.Add("employee_number", "employee_number must be 3-32 letters, digits, dashes or underscores")
	}

	switch {
	case validator.IsEmpty(r.Password):
		errs.Add("password", "password is required")
	case len(r.Password) > maxPasswordLength:
		errs.Add("password", "password must not exceed 255 characters")
	}

	return errs.Err()
}

// ResetPasswordRequest is the forgotten-password flow keyed by employee number.
type ResetPasswordRequest struct {
	EmployeeNumber  string `json:"employee_number"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeNumber) {
		errs.Add("employee_number", "employee_number is required")
	}

	switch {
	case validator.IsEmpty(r.NewPassword):
		errs.Add("new_password", "Please enter a new password")
	case len(r.NewPassword) > maxPasswordLength:
		errs.Add("new_password", "new_password must not exceed 255 characters")
	case !validator.IsStrongPassword(r.NewPassword):
		errs.Add("new_password", "new_password must be at least 8 characters and contain a letter and a digit")
	}

	if r.ConfirmPassword != r.NewPassword {
		errs.Add("confirm_password", "new_password and confirm_password do not match")
	}

	return errs.Err()
}

type LoginResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
	LoginToken           string `json:"login_token"`
	EmployeeID           string `json:"employee_id"`
	EmployeeName         string `json:"employee_name"`
	Message              string `json:"message"`
}
