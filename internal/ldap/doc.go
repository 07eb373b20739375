/*
Package ldap provides the OpenLDAP client layer for the batch user tool.

The package wraps github.com/go-ldap/ldap/v3 behind a small Directory
interface so the action processors can be tested against a fake.

# Connection Model

The batch is strictly sequential: every action processor calls Connect,
performs its operations, and closes the connection before returning. A
Directory therefore wraps exactly one bound connection and is never
shared. There is no pooling, retry, or background health checking.

# Authentication

Two bind methods are supported:

  - Simple bind with a DN and password (the default)
  - GSSAPI/Kerberos bind via credential cache, keytab, or password

# Error Handling

All operation failures are wrapped in LDAPError, which carries the LDAP
result code and an ErrorCategory so callers can distinguish connection,
authentication, not-found, and conflict conditions without string
matching.
*/
package ldap
