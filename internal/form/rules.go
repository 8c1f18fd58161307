// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form is the shared validation and derivation engine behind every
// record-entry form. A form is a Schema: an ordered list of fields, each with
// declarative rules evaluated on submit. The first violated rule per field
// yields that field's localized message; submission is blocked while any
// field is invalid. Numeric inputs are coerced from text at submit time and
// out-of-range input fails validation instead of being truncated.
package form

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/aractakip/aractakip/internal/i18n"
)

// L marks an argument as an i18n message ID to be resolved when the rule's
// message is rendered, so messages follow a language switch.
type L string

// Rule is one declarative constraint on a field's raw input. All rules
// except Required pass on empty input, which is how optional fields work.
type Rule struct {
	check func(string) bool
	msgID string
	args  []interface{}
}

// fail renders the rule's localized violation message.
func (r Rule) fail() string {
	args := make([]interface{}, len(r.args))
	for i, a := range r.args {
		if id, ok := a.(L); ok {
			args[i] = i18n.T(string(id))
			continue
		}
		args[i] = a
	}
	return i18n.T(r.msgID, args...)
}

// Required fails on empty input.
func Required(labelID string) Rule {
	return Rule{
		check: func(s string) bool { return s != "" },
		msgID: "form.required",
		args:  []interface{}{L(labelID)},
	}
}

// SelectRequired is Required with the "must be selected" phrasing used for
// reference fields (vehicle, category).
func SelectRequired(labelID string) Rule {
	return Rule{
		check: func(s string) bool { return s != "" },
		msgID: "form.select_required",
		args:  []interface{}{L(labelID)},
	}
}

// MinLen fails when the input is shorter than n runes.
func MinLen(labelID string, n int) Rule {
	return Rule{
		check: func(s string) bool { return s == "" || len([]rune(s)) >= n },
		msgID: "form.min_len",
		args:  []interface{}{L(labelID), n},
	}
}

// MaxLen fails when the input is longer than n runes.
func MaxLen(labelID string, n int) Rule {
	return Rule{
		check: func(s string) bool { return len([]rune(s)) <= n },
		msgID: "form.max_len",
		args:  []interface{}{L(labelID), n},
	}
}

// MaxLenMsg is MaxLen with a schema-specific message.
func MaxLenMsg(n int, msgID string, args ...interface{}) Rule {
	return Rule{
		check: func(s string) bool { return len([]rune(s)) <= n },
		msgID: msgID,
		args:  args,
	}
}

// Numeric fails when the input does not parse as a number.
func Numeric(labelID string) Rule {
	return Rule{
		check: func(s string) bool { return s == "" || parses(s) },
		msgID: "form.numeric",
		args:  []interface{}{L(labelID)},
	}
}

// NumericMsg is Numeric with a schema-specific message.
func NumericMsg(msgID string) Rule {
	return Rule{
		check: func(s string) bool { return s == "" || parses(s) },
		msgID: msgID,
	}
}

// Integer fails when the input parses as a number but not as an integer.
func Integer(labelID string) Rule {
	return Rule{
		check: func(s string) bool { return s == "" || !parses(s) || parsesInt(s) },
		msgID: "form.integer",
		args:  []interface{}{L(labelID)},
	}
}

// IntegerMsg is Integer with a schema-specific message.
func IntegerMsg(msgID string, args ...interface{}) Rule {
	return Rule{
		check: func(s string) bool { return s == "" || !parses(s) || parsesInt(s) },
		msgID: msgID,
		args:  args,
	}
}

// IntMin fails when the parsed integer is below min.
func IntMin(min int, msgID string, args ...interface{}) Rule {
	return Rule{
		check: func(s string) bool {
			if s == "" {
				return true
			}
			n, err := strconv.Atoi(s)
			return err != nil || n >= min
		},
		msgID: msgID,
		args:  args,
	}
}

// IntMax fails when the parsed integer is above max.
func IntMax(max int, msgID string, args ...interface{}) Rule {
	return Rule{
		check: func(s string) bool {
			if s == "" {
				return true
			}
			n, err := strconv.Atoi(s)
			return err != nil || n <= max
		},
		msgID: msgID,
		args:  args,
	}
}

// FloatMin fails when the parsed number is below min.
func FloatMin(min float64, msgID string, args ...interface{}) Rule {
	return Rule{
		check: func(s string) bool {
			if s == "" {
				return true
			}
			f, err := strconv.ParseFloat(s, 64)
			return err != nil || f >= min
		},
		msgID: msgID,
		args:  args,
	}
}

// Pattern fails when the input does not match re.
func Pattern(re *regexp.Regexp, msgID string, args ...interface{}) Rule {
	return Rule{
		check: func(s string) bool { return s == "" || re.MatchString(s) },
		msgID: msgID,
		args:  args,
	}
}

// OneOf fails when the input is not one of the allowed values.
func OneOf(allowed []string, msgID string, args ...interface{}) Rule {
	return Rule{
		check: func(s string) bool {
			if s == "" {
				return true
			}
			for _, a := range allowed {
				if s == a {
					return true
				}
			}
			return false
		},
		msgID: msgID,
		args:  args,
	}
}

// DateISO fails when the input is not a YYYY-MM-DD date.
func DateISO() Rule {
	return Rule{
		check: func(s string) bool {
			if s == "" {
				return true
			}
			_, err := time.Parse("2006-01-02", s)
			return err == nil
		},
		msgID: "form.date_invalid",
	}
}

func parses(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func parsesInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// Normalizers shared by schemas.

// UpperNoSpaces upper-cases the input and strips inner spaces; plates are
// usually typed "34 ABC 123".
func UpperNoSpaces(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, " ", ""))
}
