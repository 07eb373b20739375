// Package config loads and validates the ldapbatch settings file.
//
// Settings live in a JSON document loaded once at startup. The bind
// password is stored base64-encoded and decoded during load. Any missing
// required setting aborts the process before a single record is touched.
package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"

	"github.com/campus-idm/ldapbatch/internal/ldap"
)

// KerberosSettings configures the optional GSSAPI bind. Simple bind with
// bindUser/bindPassword remains the default when this block is absent.
type KerberosSettings struct {
	Realm  string `json:"realm"`
	Keytab string `json:"keytab"`
	CCache string `json:"ccache"`
	Config string `json:"config"`
	SPN    string `json:"spn"`
}

// Config describes the environment this tool runs against. It is loaded
// once in main and passed into every component constructor; there is no
// ambient global state.
type Config struct {
	// Directory connection
	Server       string `json:"server"`       // LDAP URL, e.g. ldaps://ldap.example.edu:636
	BindUser     string `json:"bindUser"`     // bind DN, e.g. cn=admin,dc=example,dc=edu
	BindPassword string `json:"bindPassword"` // base64-encoded in the file, decoded at load
	BaseDN       string `json:"baseDN"`       // search base, e.g. dc=example,dc=edu

	// User naming and placement
	MailDomain     string `json:"mailDomain"`     // mail suffix, e.g. @example.edu
	StudentPattern string `json:"studentPattern"` // substring identifying student usernames
	GuestPattern   string `json:"guestPattern"`   // prefix identifying guest usernames
	StudentOU      string `json:"studentOU"`      // DN suffix for students, e.g. ,ou=people,dc=example,dc=edu
	GuestOU        string `json:"guestOU"`        // DN suffix for guests
	EmployeeOU     string `json:"employeeOU"`     // DN suffix for employees

	// Process settings
	LogFile        string `json:"logFile" default:"ldapbatch.log"`
	TimeoutSeconds int    `json:"timeoutSeconds" default:"30"`

	Kerberos *KerberosSettings `json:"kerberos,omitempty"`
}

// Load reads and validates the settings file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}

	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("apply setting defaults: %w", err)
	}

	if cfg.BindPassword != "" {
		decoded, err := base64.StdEncoding.DecodeString(cfg.BindPassword)
		if err != nil {
			return nil, fmt.Errorf("decode bindPassword: %w", err)
		}
		cfg.BindPassword = string(decoded)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every required setting is present.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"server", c.Server},
		{"baseDN", c.BaseDN},
		{"mailDomain", c.MailDomain},
		{"studentPattern", c.StudentPattern},
		{"guestPattern", c.GuestPattern},
		{"studentOU", c.StudentOU},
		{"guestOU", c.GuestOU},
		{"employeeOU", c.EmployeeOU},
	}

	for _, setting := range required {
		if setting.value == "" {
			return fmt.Errorf("missing required setting: %s", setting.name)
		}
	}

	usesKerberos := c.Kerberos != nil && c.Kerberos.Realm != ""
	if !usesKerberos {
		if c.BindUser == "" {
			return fmt.Errorf("missing required setting: bindUser")
		}
		if c.BindPassword == "" {
			return fmt.Errorf("missing required setting: bindPassword")
		}
	}

	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeoutSeconds must be positive")
	}

	return nil
}

// ConnectionConfig maps the settings onto the directory client
// configuration.
func (c *Config) ConnectionConfig() *ldap.ConnectionConfig {
	conn := ldap.DefaultConfig()
	conn.URL = c.Server
	conn.BaseDN = c.BaseDN
	conn.BindDN = c.BindUser
	conn.BindPassword = c.BindPassword
	conn.Timeout = time.Duration(c.TimeoutSeconds) * time.Second

	if c.Kerberos != nil {
		conn.KerberosRealm = c.Kerberos.Realm
		conn.KerberosKeytab = c.Kerberos.Keytab
		conn.KerberosCCache = c.Kerberos.CCache
		conn.KerberosConfig = c.Kerberos.Config
		conn.KerberosSPN = c.Kerberos.SPN
	}

	return conn
}
