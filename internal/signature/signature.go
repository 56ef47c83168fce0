// Package signature implements keyed-hash verification of webhook payloads.
//
// Clients sign the exact raw request bytes with HMAC-SHA256 using the shared
// secret and send the lowercase hex digest in the X-Signature header. The
// comparison is constant-time so response latency does not leak how many
// digest bytes matched.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Compute returns the lowercase hex HMAC-SHA256 digest of rawBody under
// secret. Exposed for clients and tests that need to produce signatures.
func Compute(rawBody, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(rawBody)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether declared is the hex HMAC-SHA256 digest of rawBody
// under secret. It returns false for an empty secret, an empty declared
// value, or any mismatch; it never panics and has no side effects.
//
// hmac.Equal keeps the digest comparison constant-time. The length check it
// performs short-circuits on mismatched lengths, which is fine: the digest
// length is public, only its bytes are sensitive.
func Verify(rawBody []byte, declared string, secret []byte) bool {
	if len(secret) == 0 || declared == "" {
		return false
	}
	expected := Compute(rawBody, secret)
	return hmac.Equal([]byte(expected), []byte(declared))
}
