package bridge

import (
	"encoding/hex"

	uuid "github.com/hashicorp/go-uuid"
)

// NewConnId returns a fresh, unpredictable 128-bit hex connection id.
//
// The reference implementation this system was distilled from used a
// single constant id for every client invocation, so two concurrent
// clients against the same bridge would collide on the same Connection
// Table entry. Every invocation here gets its own id instead.
func NewConnId() (string, error) {
	b, err := uuid.GenerateRandomBytes(16)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
