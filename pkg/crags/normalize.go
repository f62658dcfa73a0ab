package crags

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// umlauts must be expanded before generic transliteration, which would
// otherwise fold ä to a instead of ae.
var umlauts = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"Ä", "Ae",
	"Ö", "Oe",
	"Ü", "Ue",
)

// Normalize transliterates a crag name into a stable ASCII form.
// It is deterministic and idempotent.
func Normalize(name string) string {
	if isASCII(name) {
		return name
	}
	name = norm.NFC.String(name)
	name = umlauts.Replace(name)
	return unidecode.Unidecode(name)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
