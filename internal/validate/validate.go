// Package validate holds explicit form validation: each function takes
// raw submitted values and returns either a cleaned value or a list of
// field errors, instead of hiding the rules inside form objects.
package validate

import (
	"path"
	"strings"
)

// FieldErrors maps a field name to its error messages.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Messages flattens all field errors into one list, for templates that
// render a single messages_error block.
func (e FieldErrors) Messages() []string {
	var out []string
	for _, msgs := range e {
		out = append(out, msgs...)
	}
	return out
}

// NormalizePhone strips every non-digit character from a raw phone
// number, e.g. "+998 (90) 123-45-67" -> "998901234567".
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// minPhoneDigits is the shortest phone number accepted at login.
const minPhoneDigits = 10

// PhoneValid reports whether a normalized phone number is long enough
// to identify an account.
func PhoneValid(normalized string) bool {
	return len(normalized) >= minPhoneDigits
}

// VideoExtensionAllowed checks a video filename against the allowed
// extension list (case-insensitive).
func VideoExtensionAllowed(filename string, allowed []string) bool {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}
