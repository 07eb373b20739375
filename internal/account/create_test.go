package account

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-idm/ldapbatch/internal/ldap"
)

func validCreateRecord() Record {
	return Record{
		Username:         "jdoe",
		GivenName:        "Jane",
		FullName:         "Jane Doe",
		Surname:          "Doe",
		EmployeeType:     "ADM",
		EmployeeNumber:   "D0000001",
		OrgUnit:          "Biology",
		BusinessCategory: "staff",
		Password:         "pw1",
	}
}

func attrValue(attrs []ldap.Attribute, name string) []string {
	for _, attr := range attrs {
		if attr.Name == name {
			return attr.Values
		}
	}
	return nil
}

func TestCreateSuccess(t *testing.T) {
	dir := newFakeDirectory()
	proc := newTestProcessor(dir)

	err := proc.Create(validCreateRecord())
	require.NoError(t, err)

	require.Len(t, dir.adds, 1)
	add := dir.adds[0]
	assert.Equal(t, "uid=jdoe"+testEmployeeOU, add.DN)
	assert.Equal(t, []string{"jdoe"}, attrValue(add.Attributes, "uid"))
	assert.Equal(t, []string{"jdoe" + testMailDomain}, attrValue(add.Attributes, "mail"))
	assert.Equal(t, []string{"Jane Doe"}, attrValue(add.Attributes, "cn"))
	assert.Equal(t, []string{"TRUE"}, attrValue(add.Attributes, "pwdReset"))
	assert.Equal(t, []string{HashPassword("pw1")}, attrValue(add.Attributes, "userPassword"))
	assert.Equal(t,
		[]string{"top", "person", "organizationalPerson", "inetOrgPerson", "duPerson", "qmailUser"},
		attrValue(add.Attributes, "objectClass"))

	assert.Equal(t, 1, dir.closes, "connection must be released")
}

func TestCreateDuplicate(t *testing.T) {
	dir := newFakeDirectory("jdoe")
	proc := newTestProcessor(dir)

	err := proc.Create(validCreateRecord())

	var recErr *Error
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, KindDuplicate, recErr.Kind)
	assert.Equal(t, "ERROR: username already taken!", recErr.Outcome())
	assert.Zero(t, dir.directoryOps(), "no add may be performed")
	assert.Equal(t, 1, dir.closes)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Record)
		wantField string
	}{
		{"missing username", func(r *Record) { r.Username = "" }, "username"},
		{"missing givenName", func(r *Record) { r.GivenName = "" }, "givenName"},
		{"missing fullName", func(r *Record) { r.FullName = "" }, "fullName"},
		{"missing sn", func(r *Record) { r.Surname = "" }, "sn"},
		{"missing employeeType", func(r *Record) { r.EmployeeType = "" }, "employeeType"},
		{"missing dNumber", func(r *Record) { r.EmployeeNumber = "" }, "dNumber"},
		{"missing ou", func(r *Record) { r.OrgUnit = "" }, "ou"},
		{"missing businessCategory", func(r *Record) { r.BusinessCategory = "" }, "businessCategory"},
		{"missing userPassword", func(r *Record) { r.Password = "" }, "userPassword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialed := false
			proc := newTestProcessor(newFakeDirectory())
			proc.dial = func() (ldap.Directory, error) {
				dialed = true
				return nil, errors.New("must not dial")
			}

			rec := validCreateRecord()
			tt.mutate(&rec)
			err := proc.Create(rec)

			var recErr *Error
			require.ErrorAs(t, err, &recErr)
			assert.Equal(t, KindValidation, recErr.Kind)
			assert.Equal(t,
				"ERROR: Missing an expected input value for "+tt.wantField+" in input file",
				recErr.Outcome())
			assert.False(t, dialed, "validation must run before any connection attempt")
		})
	}
}

func TestCreateValidationNamesFirstMissingField(t *testing.T) {
	rec := validCreateRecord()
	rec.GivenName = ""
	rec.Surname = ""

	err := newTestProcessor(newFakeDirectory()).Create(rec)

	var recErr *Error
	require.ErrorAs(t, err, &recErr)
	assert.Contains(t, recErr.Reason, "givenName")
}

func TestCreateConnectionFailure(t *testing.T) {
	proc := failingDialProcessor(errors.New("bind refused"))

	err := proc.Create(validCreateRecord())

	var recErr *Error
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, KindConnection, recErr.Kind)
	assert.Equal(t, "ERROR: unable to connect to LDAP server", recErr.Outcome())
}

func TestCreateAddFailure(t *testing.T) {
	dir := newFakeDirectory()
	dir.addErr = errors.New("objectClass violation")
	proc := newTestProcessor(dir)

	err := proc.Create(validCreateRecord())

	var recErr *Error
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, KindModify, recErr.Kind)
	assert.Equal(t, "ERROR: Could not create ldap user", recErr.Outcome())
}

func TestCreateAmbiguousEntryReadsAsAbsent(t *testing.T) {
	// Multiple entries for a uid degrade to "not found", so the create
	// proceeds. Preserved behavior; see the lookup contract.
	dir := newFakeDirectory("jdoe")
	dir.duplicateUID = "jdoe"
	proc := newTestProcessor(dir)

	err := proc.Create(validCreateRecord())
	require.NoError(t, err)
	assert.Len(t, dir.adds, 1)
}
