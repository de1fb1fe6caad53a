// Package fingerprint produces deterministic content hashes for canonical
// records, used to annotate supersede events.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/stellyes/catalog-csv-filtering/pkg/models"
)

// Record returns the SHA256 fingerprint of a canonical record's full field
// set. The schema is fixed and ordered, so hashing values in column order is
// already canonical; a separator guards against value-boundary ambiguity.
func Record(record *models.CanonicalRecord) string {
	h := sha256.New()
	for _, value := range record.Values() {
		h.Write([]byte(value))
		h.Write([]byte{0x1f})
	}
	return hex.EncodeToString(h.Sum(nil))
}
