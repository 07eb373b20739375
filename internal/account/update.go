package account

import (
	"github.com/campus-idm/ldapbatch/internal/ldap"
)

// Update modifies an existing user's attributes and optionally renames
// the user first. Renames never cross a user type boundary, since the
// type decides organizational placement.
//
// When the entry carries the posixAccount object class the modification
// replaces only uidNumber, gidNumber, and homeDirectory; otherwise it
// replaces the inetOrgPerson profile attributes. The two sets are never
// merged. The password is never touched here.
//
// A modify failure after a successful rename leaves the entry renamed
// with stale attributes; there is no compensating rename-back.
func (p *Processor) Update(rec Record) error {
	if err := validate([]requiredField{
		{"username", rec.Username},
		{"newusername", rec.NewUsername},
		{"uidNumber", rec.UIDNumber},
		{"gidNumber", rec.GIDNumber},
		{"givenName", rec.GivenName},
		{"fullName", rec.FullName},
		{"sn", rec.Surname},
		{"employeeType", rec.EmployeeType},
		{"dNumber", rec.EmployeeNumber},
		{"ou", rec.OrgUnit},
		{"businessCategory", rec.BusinessCategory},
	}); err != nil {
		p.log.Error("unable to update user: missing input value",
			"username", rec.Username, "reason", err.Reason)
		return err
	}

	dir, err := p.dial()
	if err != nil {
		p.log.Error("problem binding to LDAP server", "error", err)
		return errConnection()
	}
	defer dir.Close()

	exists, _ := p.lookup.Exists(dir, rec.Username)
	if !exists {
		p.log.Error("user does not exist", "username", rec.Username)
		return errUserNotFound()
	}

	if rec.Username != rec.NewUsername {
		if err := p.rename(dir, rec.Username, rec.NewUsername); err != nil {
			return err
		}
	}

	// The posixAccount probe uses the pre-rename username, matching how
	// entries were audited historically; after a rename it reads as
	// absent and the profile attribute set applies.
	hasPosix, _ := p.lookup.HasPosixAccount(dir, rec.Username)

	var mods []ldap.Attribute
	if hasPosix {
		mods = []ldap.Attribute{
			{Name: "uidNumber", Values: []string{rec.UIDNumber}},
			{Name: "gidNumber", Values: []string{rec.GIDNumber}},
			{Name: "homeDirectory", Values: []string{"/home/" + rec.NewUsername}},
		}
	} else {
		mods = []ldap.Attribute{
			{Name: "givenName", Values: []string{rec.GivenName}},
			{Name: "cn", Values: []string{rec.FullName}},
			{Name: "sn", Values: []string{rec.Surname}},
			{Name: "uid", Values: []string{rec.NewUsername}},
			{Name: "mail", Values: []string{rec.NewUsername + p.mailDomain}},
			{Name: "employeeType", Values: []string{rec.EmployeeType}},
			{Name: "employeeNumber", Values: []string{rec.EmployeeNumber}},
			{Name: "o", Values: []string{rec.OrgUnit}},
			{Name: "businessCategory", Values: []string{rec.BusinessCategory}},
		}
	}

	dn := p.dn.Build(rec.NewUsername)
	if err := dir.Modify(&ldap.ModifyRequest{DN: dn, ReplaceAttributes: mods}); err != nil {
		p.log.Error("ldap update failed", "username", rec.Username, "dn", dn, "error", err)
		return errUpdateFailed()
	}

	p.log.Info("user updated in ldap", "username", rec.NewUsername, "dn", dn, "posix", hasPosix)
	return nil
}

// rename moves the entry to uid=<newUsername> within its OU. Both
// usernames must classify to the same type and the target must be free.
func (p *Processor) rename(dir ldap.Directory, username, newUsername string) error {
	oldType := p.classifier.Classify(username)
	newType := p.classifier.Classify(newUsername)
	if oldType != newType {
		p.log.Error("unable to rename user across types",
			"username", username, "newusername", newUsername,
			"user_type", oldType.String(), "new_type", newType.String())
		return errCrossTypeRename()
	}

	exists, _ := p.lookup.Exists(dir, newUsername)
	if exists {
		p.log.Error("cannot rename user - user already exists", "newusername", newUsername)
		return errNewUsernameTaken()
	}

	dn := p.dn.Build(username)
	req := &ldap.ModifyDNRequest{
		DN:           dn,
		NewRDN:       "uid=" + newUsername,
		DeleteOldRDN: true,
	}
	if err := dir.ModifyDN(req); err != nil {
		p.log.Error("ldap rename failed",
			"username", username, "newusername", newUsername, "error", err)
		return errRenameFailed()
	}

	p.log.Info("user renamed in ldap", "username", username, "newusername", newUsername)
	return nil
}
