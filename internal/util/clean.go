package util

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Word processors love these; keyword matching does not.
var charReplacements = map[string]string{
	"‘": "'", "’": "'",
	"“": "\"", "”": "\"",
	"–": "-", "—": "--",
	"…": "...", " ": " ",
	"•": "-",
}

// CleanResumeContent normalizes raw resume bytes into matchable text:
// BOM stripped, invalid UTF-8 replaced, typographic punctuation mapped
// to ASCII equivalents.
func CleanResumeContent(raw []byte, src string) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if !utf8.Valid(raw) {
		raw = bytes.ToValidUTF8(raw, []byte(string(utf8.RuneError)))
	}

	str := string(raw)
	for bad, good := range charReplacements {
		str = strings.ReplaceAll(str, bad, good)
	}

	if !utf8.ValidString(str) {
		return "", fmt.Errorf("invalid UTF-8 after cleaning: %s", src)
	}
	return str, nil
}
