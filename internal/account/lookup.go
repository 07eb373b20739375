package account

import (
	"fmt"
	"log/slog"

	"github.com/campus-idm/ldapbatch/internal/ldap"
)

// LookupOutcome distinguishes the three shapes a uid search can take.
// Only an unambiguous single match counts as found.
type LookupOutcome int

const (
	LookupNotFound LookupOutcome = iota
	LookupFound
	LookupAmbiguous
)

// String returns string representation of the lookup outcome.
func (o LookupOutcome) String() string {
	switch o {
	case LookupNotFound:
		return "not_found"
	case LookupFound:
		return "found"
	case LookupAmbiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Lookup answers existence questions about usernames via subtree
// searches under the base DN.
type Lookup struct {
	baseDN string
	log    *slog.Logger
}

// NewLookup creates a lookup helper searching under baseDN.
func NewLookup(baseDN string, logger *slog.Logger) *Lookup {
	if logger == nil {
		logger = slog.Default()
	}
	return &Lookup{
		baseDN: baseDN,
		log:    logger,
	}
}

// Exists reports whether exactly one entry carries the uid. Zero and
// multiple matches both report false. A search transport failure is
// logged, returned for observability, and degrades to false so a broken
// search reads as "not found" to the processors.
func (l *Lookup) Exists(dir ldap.Directory, username string) (bool, error) {
	filter := fmt.Sprintf("(uid=%s)", ldap.EscapeFilter(username))
	outcome, err := l.find(dir, filter, username)
	return outcome == LookupFound, err
}

// HasPosixAccount reports whether the username's entry carries the
// posixAccount auxiliary object class. Same degrade-to-false contract
// as Exists.
func (l *Lookup) HasPosixAccount(dir ldap.Directory, username string) (bool, error) {
	filter := fmt.Sprintf("(&(uid=%s)(objectClass=posixAccount))", ldap.EscapeFilter(username))
	outcome, err := l.find(dir, filter, username)
	return outcome == LookupFound, err
}

// find runs a subtree search and maps the result count onto a
// LookupOutcome.
func (l *Lookup) find(dir ldap.Directory, filter, username string) (LookupOutcome, error) {
	result, err := dir.Search(&ldap.SearchRequest{
		BaseDN: l.baseDN,
		Scope:  ldap.ScopeWholeSubtree,
		Filter: filter,
	})
	if err != nil {
		l.log.Error("problem with LDAP search", "username", username, "error", err)
		return LookupNotFound, err
	}

	switch {
	case len(result.Entries) == 0:
		l.log.Info("user does not exist in ldap", "username", username)
		return LookupNotFound, nil
	case len(result.Entries) > 1:
		l.log.Info("user has multiple entries in ldap", "username", username, "entries", len(result.Entries))
		return LookupAmbiguous, nil
	}
	return LookupFound, nil
}
