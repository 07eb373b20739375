package ldap

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-ldap/ldap/v3"
)

// connection implements Directory over a single bound *ldap.Conn. The
// batch runs sequentially and every action processor opens its own
// connection and closes it before returning, so no pooling is involved.
type connection struct {
	conn   *ldap.Conn
	config *ConnectionConfig
	log    *slog.Logger
}

// Connect dials the configured server and authenticates. The returned
// Directory is backed by exactly one connection; the caller must Close it.
func Connect(config *ConnectionConfig, logger *slog.Logger) (Directory, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	if config.URL == "" {
		return nil, fmt.Errorf("LDAP URL cannot be empty")
	}

	logger.Debug("dialing LDAP server",
		"url", config.URL,
		"auth_method", config.GetAuthMethod().String())

	conn, err := dial(config)
	if err != nil {
		logger.Error("failed to dial LDAP server", "url", config.URL, "error", err)
		return nil, NewLDAPError("connect", err)
	}

	if config.Timeout > 0 {
		conn.SetTimeout(config.Timeout)
	}

	c := &connection{
		conn:   conn,
		config: config,
		log:    logger,
	}

	if err := c.authenticate(); err != nil {
		conn.Close()
		logger.Error("bind failed",
			"auth_method", config.GetAuthMethod().String(),
			"error", err)
		return nil, WrapError("bind", err)
	}

	logger.Debug("bind successful", "auth_method", config.GetAuthMethod().String())
	return c, nil
}

// dial opens the transport connection described by the URL.
func dial(config *ConnectionConfig) (*ldap.Conn, error) {
	parsed, err := url.Parse(config.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid LDAP URL %s: %w", config.URL, err)
	}

	if strings.EqualFold(parsed.Scheme, "ldaps") && config.TLSConfig != nil {
		return ldap.DialURL(config.URL, ldap.DialWithTLSConfig(config.TLSConfig))
	}
	return ldap.DialURL(config.URL)
}

// authenticate performs the bind based on the configured method.
func (c *connection) authenticate() error {
	switch c.config.GetAuthMethod() {
	case AuthMethodKerberos:
		return performKerberosAuth(c.conn, c.config)
	default:
		return c.bindSimple()
	}
}

// bindSimple performs simple bind authentication.
func (c *connection) bindSimple() error {
	if c.config.BindDN == "" {
		return fmt.Errorf("bind DN is required for simple bind authentication")
	}
	return c.conn.Bind(c.config.BindDN, c.config.BindPassword)
}

// Search performs an LDAP search.
func (c *connection) Search(req *SearchRequest) (*SearchResult, error) {
	if req == nil {
		return nil, fmt.Errorf("search request cannot be nil")
	}

	c.log.Debug("starting search",
		"base_dn", req.BaseDN,
		"scope", req.Scope.String(),
		"filter", req.Filter)

	ldapReq := ldap.NewSearchRequest(
		req.BaseDN,
		int(req.Scope),
		ldap.NeverDerefAliases,
		req.SizeLimit,
		int(req.TimeLimit.Seconds()),
		false, // TypesOnly
		req.Filter,
		req.Attributes,
		nil, // Controls
	)

	result, err := c.conn.Search(ldapReq)
	if err != nil {
		c.log.Error("search failed", "filter", req.Filter, "error", err)
		return nil, WrapError("search", err)
	}

	entries := make([]*Entry, 0, len(result.Entries))
	for _, entry := range result.Entries {
		entries = append(entries, convertEntry(entry))
	}

	c.log.Debug("search completed", "filter", req.Filter, "entries_found", len(entries))

	return &SearchResult{
		Entries: entries,
		Total:   len(entries),
	}, nil
}

// Add creates a new LDAP entry.
func (c *connection) Add(req *AddRequest) error {
	if req == nil {
		return fmt.Errorf("add request cannot be nil")
	}

	c.log.Debug("adding entry", "dn", req.DN)

	ldapReq := ldap.NewAddRequest(req.DN, nil)
	for _, attr := range req.Attributes {
		ldapReq.Attribute(attr.Name, attr.Values)
	}

	if err := c.conn.Add(ldapReq); err != nil {
		c.log.Error("add failed", "dn", req.DN, "error", err)
		return WrapError("add", err)
	}
	return nil
}

// Modify replaces attributes on an existing LDAP entry.
func (c *connection) Modify(req *ModifyRequest) error {
	if req == nil {
		return fmt.Errorf("modify request cannot be nil")
	}

	c.log.Debug("modifying entry", "dn", req.DN, "attributes", len(req.ReplaceAttributes))

	ldapReq := ldap.NewModifyRequest(req.DN, nil)
	for _, attr := range req.ReplaceAttributes {
		ldapReq.Replace(attr.Name, attr.Values)
	}

	if err := c.conn.Modify(ldapReq); err != nil {
		c.log.Error("modify failed", "dn", req.DN, "error", err)
		return WrapError("modify", err)
	}
	return nil
}

// ModifyDN renames an LDAP entry.
func (c *connection) ModifyDN(req *ModifyDNRequest) error {
	if req == nil {
		return fmt.Errorf("modify DN request cannot be nil")
	}
	if req.DN == "" {
		return fmt.Errorf("DN cannot be empty")
	}
	if req.NewRDN == "" {
		return fmt.Errorf("new RDN cannot be empty")
	}

	c.log.Debug("renaming entry", "dn", req.DN, "new_rdn", req.NewRDN)

	ldapReq := ldap.NewModifyDNRequest(req.DN, req.NewRDN, req.DeleteOldRDN, "")

	if err := c.conn.ModifyDN(ldapReq); err != nil {
		c.log.Error("rename failed", "dn", req.DN, "new_rdn", req.NewRDN, "error", err)
		return WrapError("modify_dn", err)
	}
	return nil
}

// Delete removes an LDAP entry.
func (c *connection) Delete(dn string) error {
	if dn == "" {
		return fmt.Errorf("DN cannot be empty")
	}

	c.log.Debug("deleting entry", "dn", dn)

	ldapReq := ldap.NewDelRequest(dn, nil)

	if err := c.conn.Del(ldapReq); err != nil {
		c.log.Error("delete failed", "dn", dn, "error", err)
		return WrapError("delete", err)
	}
	return nil
}

// Close releases the underlying connection.
func (c *connection) Close() error {
	c.log.Debug("closing LDAP connection", "url", c.config.URL)
	return c.conn.Close()
}

// EscapeFilter escapes special characters for safe use inside a search
// filter. Every username interpolated into a filter must pass through it.
func EscapeFilter(value string) string {
	return ldap.EscapeFilter(value)
}

// convertEntry maps a go-ldap entry to the package entry type.
func convertEntry(entry *ldap.Entry) *Entry {
	attrs := make(map[string][]string, len(entry.Attributes))
	for _, attr := range entry.Attributes {
		attrs[attr.Name] = attr.Values
	}
	return &Entry{
		DN:         entry.DN,
		Attributes: attrs,
	}
}
