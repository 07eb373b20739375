package account

// Delete removes a user's entry from the directory. Only the username
// is required; nothing is ever implicitly created.
func (p *Processor) Delete(rec Record) error {
	if err := validate([]requiredField{
		{"username", rec.Username},
	}); err != nil {
		p.log.Error("unable to delete user: missing input value", "reason", err.Reason)
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

	dn := p.dn.Build(rec.Username)
	if err := dir.Delete(dn); err != nil {
		p.log.Error("ldap delete failed", "dn", dn, "error", err)
		return errDeleteFailed()
	}

	p.log.Info("user deleted from ldap", "username", rec.Username, "dn", dn)
	return nil
}
