package account

import (
	"crypto/sha1"
	"encoding/base64"
)

// HashPassword returns the RFC 2307 "{SHA}" form of a password: an
// unsalted SHA-1 digest, base64-encoded. The format must stay
// bit-for-bit compatible with entries already in the directory; it is
// computed once at entry creation and never recomputed on update.
func HashPassword(password string) string {
	sum := sha1.Sum([]byte(password))
	return "{SHA}" + base64.StdEncoding.EncodeToString(sum[:])
}
