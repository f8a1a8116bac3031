package phonepe

import (
	"crypto/sha256"
	"encoding/hex"
)

// SignPayload computes the X-VERIFY header for a body-carrying call:
// sha256hex(base64Payload + path + saltKey) + "###" + saltIndex. The gateway
// recomputes the same hash, so the payload bytes must match exactly.
func SignPayload(base64Payload, path, saltKey, saltIndex string) string {
	return sha256Hex(base64Payload+path+saltKey) + "###" + saltIndex
}

// SignPath computes the X-VERIFY header for body-less calls (status checks),
// where only the request path is hashed.
func SignPath(path, saltKey, saltIndex string) string {
	return sha256Hex(path+saltKey) + "###" + saltIndex
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
