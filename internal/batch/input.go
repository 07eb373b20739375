// Package batch reads the input action document, applies each record
// through the account processor, and renders the per-record CSV report.
package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/campus-idm/ldapbatch/internal/account"
)

// Document is the input JSON envelope.
type Document struct {
	UserActions []ActionRecord `json:"useractions"`
}

// ActionRecord is one requested operation from the input document. All
// sixteen attributes are accepted; loginDisabled and description are
// carried but ignored by processing.
type ActionRecord struct {
	Action           string     `json:"action"`
	Username         string     `json:"username"`
	NewUsername      string     `json:"newusername"`
	LoginDisabled    FlexString `json:"loginDisabled"`
	UIDNumber        FlexString `json:"uidNumber"`
	GIDNumber        FlexString `json:"gidNumber"`
	GivenName        string     `json:"givenName"`
	FullName         string     `json:"fullName"`
	Surname          string     `json:"sn"`
	EmployeeType     string     `json:"employeeType"`
	EmployeeNumber   string     `json:"DNumber"`
	OrgUnit          string     `json:"primO"`
	BusinessCategory string     `json:"businessCategory"`
	Password         string     `json:"userPassword"`
	Description      string     `json:"description"`
}

// record maps the input fields onto the processor's record type.
func (r ActionRecord) record() account.Record {
	return account.Record{
		Username:         r.Username,
		NewUsername:      r.NewUsername,
		UIDNumber:        string(r.UIDNumber),
		GIDNumber:        string(r.GIDNumber),
		GivenName:        r.GivenName,
		FullName:         r.FullName,
		Surname:          r.Surname,
		EmployeeType:     r.EmployeeType,
		EmployeeNumber:   r.EmployeeNumber,
		OrgUnit:          r.OrgUnit,
		BusinessCategory: r.BusinessCategory,
		Password:         r.Password,
	}
}

// FlexString decodes a JSON string, number, or boolean into its string
// form. Feeds routinely deliver uidNumber/gidNumber as bare numbers.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	token := strings.TrimSpace(string(data))
	if token == "null" {
		*f = ""
		return nil
	}
	*f = FlexString(token)
	return nil
}

// ParseInput decodes the action document and returns its records in
// input order.
func ParseInput(r io.Reader) ([]ActionRecord, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse input document: %w", err)
	}
	return doc.UserActions, nil
}
