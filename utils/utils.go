package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenReference generates an opaque reference code for a ledger entry, e.g.
// TXN-9F3A1B7C04DE.
func GenReference() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "TXN-" + strings.ToUpper(raw[:12])
}
