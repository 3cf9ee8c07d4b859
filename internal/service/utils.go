package service

import "strings"

// cleanText drops invalid UTF-8 and NUL bytes; Postgres text columns reject both.
func cleanText(s string) string {
	s = strings.ToValidUTF8(s, "")
	if strings.IndexByte(s, 0) >= 0 {
		s = strings.ReplaceAll(s, "\x00", "")
	}
	return s
}
