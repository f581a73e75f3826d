// Package validation holds the syntax checks and the violation collector
// used by account registration and profile updates.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate = validator.New()
	phoneRe  = regexp.MustCompile(`^\+?[0-9\s\-()]{10,}$`)
)

// IsValidEmail reports whether s is a syntactically valid e-mail address.
func IsValidEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// IsValidPhone accepts an optional leading '+' followed by at least ten
// digits, spaces, dashes or parentheses.
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// Violations collects rule codes in the order they were found.
type Violations []string

func (v *Violations) Add(code string) {
	*v = append(*v, code)
}

// Required adds code when value is blank.
func (v *Violations) Required(value, code string) {
	if IsBlank(value) {
		v.Add(code)
	}
}

func (v Violations) Empty() bool { return len(v) == 0 }

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
