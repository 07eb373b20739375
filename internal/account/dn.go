package account

// DNBuilder constructs the distinguished name for a username under the
// organizational unit selected by its Type. It is a pure function of the
// username and configuration; no directory I/O is involved.
type DNBuilder struct {
	classifier *Classifier
	studentOU  string
	guestOU    string
	employeeOU string
}

// NewDNBuilder creates a DN builder over the configured OU suffixes.
// Each suffix carries its own leading comma, e.g.
// ",ou=people,dc=example,dc=edu".
func NewDNBuilder(classifier *Classifier, studentOU, guestOU, employeeOU string) *DNBuilder {
	return &DNBuilder{
		classifier: classifier,
		studentOU:  studentOU,
		guestOU:    guestOU,
		employeeOU: employeeOU,
	}
}

// Build returns uid=<username> joined with the OU suffix for the
// username's Type.
func (b *DNBuilder) Build(username string) string {
	switch b.classifier.Classify(username) {
	case TypeStudent:
		return "uid=" + username + b.studentOU
	case TypeGuest:
		return "uid=" + username + b.guestOU
	default:
		return "uid=" + username + b.employeeOU
	}
}
