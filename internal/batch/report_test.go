package batch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	results := []Result{
		{"create", "jdoe", "SUCCESS: User added to ldap"},
		{"create", "jdoe", "ERROR: username already taken!"},
		{"delete", "ghost", "ERROR: user could not be found!"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, results))

	want := "action,username,result\n" +
		"create,jdoe,SUCCESS: User added to ldap\n" +
		"create,jdoe,ERROR: username already taken!\n" +
		"delete,ghost,ERROR: user could not be found!\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReportHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, nil))
	assert.Equal(t, "action,username,result\n", buf.String())
}

func TestWriteReportQuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, []Result{
		{"create", "jdoe", `ERROR: invalid attribute value, rejected by server`},
	}))
	assert.Contains(t, buf.String(), `"ERROR: invalid attribute value, rejected by server"`)
}
