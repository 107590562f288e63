package dirent

import "strings"

// shortNameChars are the characters allowed in an 8.3 name besides
// letters and digits.
const shortNameChars = "$%'-_@~`!(){}^#&"

// ShortName derives a DOS 8.3-style short name from a long filename:
// uppercase, invalid characters replaced with '_', spaces and leading
// dots dropped, base truncated to 8 and extension to 3. A lossy
// conversion gets the conventional "~1" tail. The numeric tail is not
// deduplicated against sibling entries; the short name here is a
// display form, not an addressable alias.
func ShortName(name string) string {
	upper := strings.ToUpper(name)
	trimmed := strings.TrimLeft(upper, ". ")
	lossy := trimmed != upper

	base := trimmed
	ext := ""
	if i := strings.LastIndexByte(trimmed, '.'); i >= 0 {
		base = trimmed[:i]
		ext = trimmed[i+1:]
	}

	base, baseLossy := sanitize(base)
	ext, extLossy := sanitize(ext)
	lossy = lossy || baseLossy || extLossy

	if len(ext) > 3 {
		ext = ext[:3]
		lossy = true
	}
	if base == "" {
		base = "_"
		lossy = true
	}
	if len(base) > 8 {
		base = base[:6]
		lossy = true
	}
	if lossy {
		if len(base) > 6 {
			base = base[:6]
		}
		base += "~1"
	}

	if ext == "" {
		return base
	}
	return base + "." + ext
}

// sanitize strips dots and spaces and maps disallowed characters to '_',
// reporting whether anything changed.
func sanitize(s string) (string, bool) {
	var b strings.Builder
	lossy := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			strings.IndexByte(shortNameChars, c) >= 0:
			b.WriteByte(c)
		case c == '.' || c == ' ':
			lossy = true
		default:
			b.WriteByte('_')
			lossy = true
		}
	}
	return b.String(), lossy
}
