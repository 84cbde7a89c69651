package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/samandr77/microservices/onboarding/internal/entity"
)

// Rule constrains one field. Checks run in the order required, MinLength, Pattern and the
// first failing check decides the message.
type Rule struct {
	Field           string
	Required        bool
	MinLength       int
	Pattern         *regexp.Regexp
	Message         string
	RequiredMessage string
}

func (r Rule) requiredMessage() string {
	if r.RequiredMessage != "" {
		return r.RequiredMessage
	}

	return r.Message
}

// Check returns the error message for value, or "" when the value is valid.
// present reports whether the field exists in the record at all.
func (r Rule) Check(value string, present bool) string {
	if r.Required && (!present || strings.TrimSpace(value) == "") {
		return r.requiredMessage()
	}

	if r.MinLength > 0 && utf8.RuneCountInString(value) < r.MinLength {
		return r.Message
	}

	if r.Pattern != nil && !r.Pattern.MatchString(value) {
		return r.Message
	}

	return ""
}

type Rules []Rule

// Validate evaluates every rule against record. Fields without a rule are ignored.
func (rs Rules) Validate(record map[string]string) Errors {
	errs := Errors{}

	for _, r := range rs {
		if _, seen := errs[r.Field]; seen {
			continue
		}

		value, present := record[r.Field]
		if msg := r.Check(value, present); msg != "" {
			errs[r.Field] = msg
		}
	}

	return errs
}

// Field returns the rule declared for field.
func (rs Rules) Field(field string) (Rule, bool) {
	for _, r := range rs {
		if r.Field == field {
			return r, true
		}
	}

	return Rule{}, false
}

func Validate(rules Rules, record map[string]string) Errors {
	return rules.Validate(record)
}

// ValidateApplication runs the rules against the application's field mapping.
func ValidateApplication(rules Rules, app entity.Application) Errors {
	return rules.Validate(app.Fields())
}

// Errors maps a field name to its single error message.
type Errors map[string]string

func (e Errors) Empty() bool {
	return len(e) == 0
}

// Fields returns the failing field names sorted.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}

func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}

	return out
}

// Err returns nil for an empty map and an *Error otherwise.
func (e Errors) Err() error {
	if e.Empty() {
		return nil
	}

	return &Error{Fields: e.Clone()}
}

type Error struct {
	Fields Errors
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}

	return fmt.Sprintf("%s: %s", entity.ErrValidation, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return entity.ErrValidation
}
