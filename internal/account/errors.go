package account

// Kind identifies the failure category of a record-level error. Every
// processor failure is converted into one of these; none aborts the
// batch.
type Kind int

const (
	KindValidation Kind = iota // required input field missing a value
	KindConnection             // could not connect or bind
	KindDuplicate              // target identifier already exists
	KindNotFound               // target identifier absent
	KindCrossTypeRename        // rename spans a user type boundary
	KindModify                 // transport failure during add/modify/rename/delete
)

// Error is a per-record failure carrying the exact reason text that
// appears in the output report after the "ERROR: " prefix.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

// Outcome renders the report outcome string for this failure.
func (e *Error) Outcome() string {
	return "ERROR: " + e.Reason
}

// The reason texts are fixed; downstream tooling matches on them.
func newValidationError(field string) *Error {
	return &Error{
		Kind:   KindValidation,
		Reason: "Missing an expected input value for " + field + " in input file",
	}
}

func errConnection() *Error {
	return &Error{Kind: KindConnection, Reason: "unable to connect to LDAP server"}
}

func errUsernameTaken() *Error {
	return &Error{Kind: KindDuplicate, Reason: "username already taken!"}
}

func errNewUsernameTaken() *Error {
	return &Error{Kind: KindDuplicate, Reason: "newusername already taken!"}
}

func errUserNotFound() *Error {
	return &Error{Kind: KindNotFound, Reason: "user could not be found!"}
}

func errCrossTypeRename() *Error {
	return &Error{Kind: KindCrossTypeRename, Reason: "won't rename users across different types"}
}

func errCreateFailed() *Error {
	return &Error{Kind: KindModify, Reason: "Could not create ldap user"}
}

func errRenameFailed() *Error {
	return &Error{Kind: KindModify, Reason: "Could not rename ldap user"}
}

func errUpdateFailed() *Error {
	return &Error{Kind: KindModify, Reason: "Could not update ldap user"}
}

func errDeleteFailed() *Error {
	return &Error{Kind: KindModify, Reason: "Could not delete ldap user"}
}
