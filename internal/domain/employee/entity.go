package employee

import (
	"strings"
	"time"
	"unicode"
)

const defaultShiftName = "Standard Shift (9:00 AM - 6:00 PM)"

type Employee struct {
	ID             string
	EmployeeNumber string
	FullName       string
	ShiftNames     []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Initials returns up to the last three initials of the full name, upper-cased.
func (e Employee) Initials() string {
	var initials []rune
	for _, part := range strings.Fields(e.FullName) {
		r := []rune(part)[0]
		initials = append(initials, unicode.ToUpper(r))
	}
	if len(initials) > 3 {
		initials = initials[len(initials)-3:]
	}
	return string(initials)
}

// ShiftName joins the employee's working calendars for display.
func (e Employee) ShiftName() string {
	if len(e.ShiftNames) == 0 {
		return defaultShiftName
	}
	return strings.Join(e.ShiftNames, ", ")
}
