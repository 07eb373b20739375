package account

import "strings"

// Type is the placement category of a username. It is derived purely
// from the username's shape and never stored in the directory.
type Type int

const (
	TypeStudent Type = iota
	TypeGuest
	TypeEmployee
)

// String returns string representation of the user type.
func (t Type) String() string {
	switch t {
	case TypeStudent:
		return "student"
	case TypeGuest:
		return "guest"
	case TypeEmployee:
		return "employee"
	default:
		return "unknown"
	}
}

// Classifier maps usernames to their Type using the configured patterns.
type Classifier struct {
	studentPattern string
	guestPattern   string
}

// NewClassifier creates a classifier from the configured patterns.
func NewClassifier(studentPattern, guestPattern string) *Classifier {
	return &Classifier{
		studentPattern: studentPattern,
		guestPattern:   guestPattern,
	}
}

// Classify resolves the Type of a username. The student check runs
// before the guest check; anything matching neither is an employee.
// There are no error conditions.
//
// The guest rule compares the guest pattern against the username with
// its last four characters stripped (guest accounts end in a 4-digit
// serial). Usernames shorter than four characters strip to the empty
// string; that degenerate compare is long-standing behavior and must
// not be "fixed".
func (c *Classifier) Classify(username string) Type {
	if strings.Contains(username, c.studentPattern) {
		return TypeStudent
	}
	if c.guestPattern == stripSerial(username) {
		return TypeGuest
	}
	return TypeEmployee
}

// stripSerial removes the trailing 4-character serial from a username.
func stripSerial(username string) string {
	if len(username) <= 4 {
		return ""
	}
	return username[:len(username)-4]
}
