package account

import (
	"github.com/campus-idm/ldapbatch/internal/ldap"
)

// createObjectClasses is the fixed object class set for new user
// entries.
var createObjectClasses = []string{
	"top",
	"person",
	"organizationalPerson",
	"inetOrgPerson",
	"duPerson",
	"qmailUser",
}

// Create adds a new user entry to the directory. The entry is placed
// under the OU selected by the username's type, with a "{SHA}" password
// digest, a mail address derived from the username, and the password
// reset flag set.
func (p *Processor) Create(rec Record) error {
	if err := validate([]requiredField{
		{"username", rec.Username},
		{"givenName", rec.GivenName},
		{"fullName", rec.FullName},
		{"sn", rec.Surname},
		{"employeeType", rec.EmployeeType},
		{"dNumber", rec.EmployeeNumber},
		{"ou", rec.OrgUnit},
		{"businessCategory", rec.BusinessCategory},
		{"userPassword", rec.Password},
	}); err != nil {
		p.log.Error("unable to create user: missing input value",
			"username", rec.Username, "reason", err.Reason)
		return err
	}

	dir, err := p.dial()
	if err != nil {
		p.log.Error("problem binding to LDAP server", "error", err)
		return errConnection()
	}
	defer dir.Close()

	// Lookup errors are logged inside Exists and degrade to not-found.
	exists, _ := p.lookup.Exists(dir, rec.Username)
	if exists {
		p.log.Error("cannot create user - user already exists", "username", rec.Username)
		return errUsernameTaken()
	}

	dn := p.dn.Build(rec.Username)
	p.log.Info("adding user",
		"username", rec.Username,
		"dn", dn,
		"user_type", p.classifier.Classify(rec.Username).String())

	req := &ldap.AddRequest{
		DN: dn,
		Attributes: []ldap.Attribute{
			{Name: "objectClass", Values: createObjectClasses},
			{Name: "uid", Values: []string{rec.Username}},
			{Name: "userPassword", Values: []string{HashPassword(rec.Password)}},
			{Name: "givenName", Values: []string{rec.GivenName}},
			{Name: "cn", Values: []string{rec.FullName}},
			{Name: "sn", Values: []string{rec.Surname}},
			{Name: "mail", Values: []string{rec.Username + p.mailDomain}},
			{Name: "employeeType", Values: []string{rec.EmployeeType}},
			{Name: "employeeNumber", Values: []string{rec.EmployeeNumber}},
			{Name: "o", Values: []string{rec.OrgUnit}},
			{Name: "businessCategory", Values: []string{rec.BusinessCategory}},
			{Name: "pwdReset", Values: []string{"TRUE"}},
		},
	}

	if err := dir.Add(req); err != nil {
		p.log.Error("ldap add failed for user", "username", rec.Username, "error", err)
		return errCreateFailed()
	}

	p.log.Info("user added to ldap", "username", rec.Username, "dn", dn)
	return nil
}
