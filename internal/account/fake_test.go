package account

import (
	"io"
	"log/slog"
	"strings"

	"github.com/campus-idm/ldapbatch/internal/ldap"
)

// fakeUser is one entry held by the fake directory.
type fakeUser struct {
	posix bool
}

// fakeDirectory is an in-memory Directory for processor tests. It
// understands the two filter shapes the lookup issues: (uid=<u>) and
// (&(uid=<u>)(objectClass=posixAccount)).
type fakeDirectory struct {
	users map[string]*fakeUser

	searchErr error
	addErr    error
	modifyErr error
	renameErr error
	deleteErr error

	adds    []*ldap.AddRequest
	mods    []*ldap.ModifyRequest
	renames []*ldap.ModifyDNRequest
	deletes []string
	closes  int

	// duplicateUID makes searches for this uid return two entries.
	duplicateUID string
}

func newFakeDirectory(usernames ...string) *fakeDirectory {
	users := make(map[string]*fakeUser)
	for _, name := range usernames {
		users[name] = &fakeUser{}
	}
	return &fakeDirectory{users: users}
}

func (f *fakeDirectory) Search(req *ldap.SearchRequest) (*ldap.SearchResult, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}

	uid, posixOnly := parseUIDFilter(req.Filter)

	if uid == f.duplicateUID && uid != "" {
		return &ldap.SearchResult{
			Entries: []*ldap.Entry{{DN: "uid=" + uid}, {DN: "uid=" + uid}},
			Total:   2,
		}, nil
	}

	user, ok := f.users[uid]
	if !ok || (posixOnly && !user.posix) {
		return &ldap.SearchResult{}, nil
	}
	return &ldap.SearchResult{
		Entries: []*ldap.Entry{{DN: "uid=" + uid}},
		Total:   1,
	}, nil
}

func (f *fakeDirectory) Add(req *ldap.AddRequest) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.adds = append(f.adds, req)
	f.users[uidFromDN(req.DN)] = &fakeUser{}
	return nil
}

func (f *fakeDirectory) Modify(req *ldap.ModifyRequest) error {
	if f.modifyErr != nil {
		return f.modifyErr
	}
	f.mods = append(f.mods, req)
	return nil
}

func (f *fakeDirectory) ModifyDN(req *ldap.ModifyDNRequest) error {
	if f.renameErr != nil {
		return f.renameErr
	}
	f.renames = append(f.renames, req)

	oldUID := uidFromDN(req.DN)
	newUID := strings.TrimPrefix(req.NewRDN, "uid=")
	if user, ok := f.users[oldUID]; ok {
		delete(f.users, oldUID)
		f.users[newUID] = user
	}
	return nil
}

func (f *fakeDirectory) Delete(dn string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, dn)
	delete(f.users, uidFromDN(dn))
	return nil
}

func (f *fakeDirectory) Close() error {
	f.closes++
	return nil
}

// directoryOps counts the mutating operations the fake has seen.
func (f *fakeDirectory) directoryOps() int {
	return len(f.adds) + len(f.mods) + len(f.renames) + len(f.deletes)
}

// parseUIDFilter extracts the uid and posix predicate from the two
// filter shapes used by Lookup.
func parseUIDFilter(filter string) (uid string, posixOnly bool) {
	if strings.HasPrefix(filter, "(&(uid=") {
		rest := strings.TrimPrefix(filter, "(&(uid=")
		if end := strings.Index(rest, ")"); end >= 0 {
			return rest[:end], true
		}
		return "", true
	}
	if strings.HasPrefix(filter, "(uid=") {
		rest := strings.TrimPrefix(filter, "(uid=")
		return strings.TrimSuffix(rest, ")"), false
	}
	return "", false
}

// uidFromDN extracts the uid component from a DN like uid=jdoe,ou=...
func uidFromDN(dn string) string {
	rest := strings.TrimPrefix(dn, "uid=")
	if comma := strings.Index(rest, ","); comma >= 0 {
		return rest[:comma]
	}
	return rest
}

// testLogger discards all output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Test fixture constants mirroring a typical campus configuration.
const (
	testStudentOU  = ",ou=students,dc=example,dc=edu"
	testGuestOU    = ",ou=guests,dc=example,dc=edu"
	testEmployeeOU = ",ou=people,dc=example,dc=edu"
	testMailDomain = "@example.edu"
)

// newTestProcessor wires a processor onto the fake directory.
func newTestProcessor(f *fakeDirectory) *Processor {
	logger := testLogger()
	classifier := NewClassifier("_", "gst")
	builder := NewDNBuilder(classifier, testStudentOU, testGuestOU, testEmployeeOU)
	lookup := NewLookup("dc=example,dc=edu", logger)
	dial := func() (ldap.Directory, error) { return f, nil }
	return NewProcessor(dial, classifier, builder, lookup, testMailDomain, logger)
}

// failingDialProcessor wires a processor whose dial always fails.
func failingDialProcessor(dialErr error) *Processor {
	logger := testLogger()
	classifier := NewClassifier("_", "gst")
	builder := NewDNBuilder(classifier, testStudentOU, testGuestOU, testEmployeeOU)
	lookup := NewLookup("dc=example,dc=edu", logger)
	dial := func() (ldap.Directory, error) { return nil, dialErr }
	return NewProcessor(dial, classifier, builder, lookup, testMailDomain, logger)
}
