// Package account implements the user lifecycle operations: classifying
// usernames, building their DNs, probing the directory for existing
// entries, and executing create/update/delete actions with per-record
// error isolation.
package account

import (
	"log/slog"

	"github.com/campus-idm/ldapbatch/internal/ldap"
)

// DialFunc opens a fresh bound directory connection. Each processor
// invocation dials its own connection and closes it before returning.
type DialFunc func() (ldap.Directory, error)

// Record carries the per-user input fields of one requested action.
// Which fields are required depends on the action; validation names the
// first missing one.
type Record struct {
	Username         string
	NewUsername      string
	UIDNumber        string
	GIDNumber        string
	GivenName        string
	FullName         string
	Surname          string
	EmployeeType     string
	EmployeeNumber   string
	OrgUnit          string
	BusinessCategory string
	Password         string
}

// Processor executes user lifecycle actions against the directory.
type Processor struct {
	dial       DialFunc
	classifier *Classifier
	dn         *DNBuilder
	lookup     *Lookup
	mailDomain string
	log        *slog.Logger
}

// NewProcessor creates a processor. mailDomain carries its leading "@".
func NewProcessor(dial DialFunc, classifier *Classifier, dn *DNBuilder, lookup *Lookup, mailDomain string, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		dial:       dial,
		classifier: classifier,
		dn:         dn,
		lookup:     lookup,
		mailDomain: mailDomain,
		log:        logger,
	}
}

// requiredField pairs an input field name with its value for validation.
type requiredField struct {
	name  string
	value string
}

// validate returns a validation error naming the first field missing a
// value. Validation always runs before any directory connection is
// attempted.
func validate(fields []requiredField) *Error {
	for _, field := range fields {
		if field.value == "" {
			return newValidationError(field.name)
		}
	}
	return nil
}
