package ldap

import (
	"crypto/tls"
	"time"
)

// ConnectionConfig holds configuration for directory connections.
type ConnectionConfig struct {
	// Connection settings
	URL     string        // LDAP URL, e.g. ldaps://ldap.example.edu:636
	BaseDN  string        // Base DN for searches
	Timeout time.Duration // Network timeout per operation

	// Authentication settings
	BindDN       string // DN to bind with for simple bind
	BindPassword string // Password for simple bind

	// Kerberos settings (GSSAPI bind is used when Realm is set)
	KerberosRealm  string // Kerberos realm
	KerberosKeytab string // Path to keytab file
	KerberosCCache string // Path to credential cache
	KerberosConfig string // Path to krb5.conf
	KerberosSPN    string // Explicit service principal override

	// TLS settings
	TLSConfig *tls.Config // Custom TLS configuration for ldaps URLs
}

// DefaultConfig returns a configuration with sane defaults.
func DefaultConfig() *ConnectionConfig {
	return &ConnectionConfig{
		Timeout: 30 * time.Second,
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// AuthMethod defines authentication method types.
type AuthMethod int

const (
	AuthMethodSimpleBind AuthMethod = iota // DN/password authentication
	AuthMethodKerberos                     // GSSAPI/Kerberos authentication
)

// String returns string representation of authentication method.
func (a AuthMethod) String() string {
	switch a {
	case AuthMethodSimpleBind:
		return "simple"
	case AuthMethodKerberos:
		return "kerberos"
	default:
		return "unknown"
	}
}

// GetAuthMethod determines the authentication method from the configuration.
func (c *ConnectionConfig) GetAuthMethod() AuthMethod {
	if c.KerberosRealm != "" {
		return AuthMethodKerberos
	}
	return AuthMethodSimpleBind
}

// HasAuthentication checks if any authentication method is configured.
func (c *ConnectionConfig) HasAuthentication() bool {
	hasSimple := c.BindDN != "" && c.BindPassword != ""
	hasKerberos := c.KerberosRealm != ""
	return hasSimple || hasKerberos
}

// Directory provides the directory operations used by action processors.
// A Directory is scoped to a single bound connection; callers must Close
// it on every exit path.
type Directory interface {
	Search(req *SearchRequest) (*SearchResult, error)
	Add(req *AddRequest) error
	Modify(req *ModifyRequest) error
	ModifyDN(req *ModifyDNRequest) error
	Delete(dn string) error
	Close() error
}

// SearchRequest encapsulates LDAP search parameters.
type SearchRequest struct {
	BaseDN     string
	Scope      SearchScope
	Filter     string
	Attributes []string
	SizeLimit  int
	TimeLimit  time.Duration
}

// SearchResult contains search results and metadata.
type SearchResult struct {
	Entries []*Entry
	Total   int
}

// Entry is a single directory entry returned by a search.
type Entry struct {
	DN         string
	Attributes map[string][]string
}

// GetAttributeValue returns the first value of the named attribute,
// or the empty string when absent.
func (e *Entry) GetAttributeValue(name string) string {
	values := e.Attributes[name]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// AddRequest encapsulates LDAP add parameters.
type AddRequest struct {
	DN         string
	Attributes []Attribute
}

// Attribute is a single named attribute with its values. Requests carry
// an ordered attribute list so entries render deterministically.
type Attribute struct {
	Name   string
	Values []string
}

// ModifyRequest encapsulates LDAP modify parameters. Only attribute
// replacement is needed by this tool.
type ModifyRequest struct {
	DN                string
	ReplaceAttributes []Attribute
}

// ModifyDNRequest encapsulates LDAP rename parameters.
type ModifyDNRequest struct {
	DN           string // Current entry DN
	NewRDN       string // New relative DN, e.g. uid=newname
	DeleteOldRDN bool   // Remove the old RDN attribute value
}

// SearchScope defines LDAP search scope.
type SearchScope int

const (
	ScopeBaseObject SearchScope = iota
	ScopeSingleLevel
	ScopeWholeSubtree
)

// String returns string representation of the search scope.
func (s SearchScope) String() string {
	switch s {
	case ScopeBaseObject:
		return "base"
	case ScopeSingleLevel:
		return "one"
	case ScopeWholeSubtree:
		return "sub"
	default:
		return "unknown"
	}
}
