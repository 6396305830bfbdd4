package bqschema

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gyeh/pq2bq/internal/model"
)

// MaxColumnNameLength is BigQuery's limit on column name length, in characters.
const MaxColumnNameLength = 300

// restrictedPrefixes are reserved for BigQuery system columns. Order matters:
// the first match is reported.
var restrictedPrefixes = []string{
	"_PARTITION",
	"_TABLE_",
	"_FILE_",
	"_ROW_TIMESTAMP",
	"__ROOT__",
	"_COLIDENTIFIER",
}

const (
	reasonEmpty        = "Column name cannot be empty"
	reasonTooLong      = "Column name exceeds maximum length of 300 characters"
	reasonBadFirstChar = "Column name must start with a letter or underscore"
	reasonBadChars     = "Column name contains invalid characters; only letters, numbers, and underscores are allowed"
)

// RestrictedPrefixes returns the reserved column-name prefixes in match order.
func RestrictedPrefixes() []string {
	out := make([]string, len(restrictedPrefixes))
	copy(out, restrictedPrefixes)
	return out
}

// ValidateName checks name against BigQuery's column naming rules.
// The first failing rule determines the reason.
func ValidateName(name string) model.Validation {
	if name == "" {
		return skip(reasonEmpty)
	}
	if utf8.RuneCountInString(name) > MaxColumnNameLength {
		return skip(reasonTooLong)
	}

	upper := strings.ToUpper(name)
	for _, prefix := range restrictedPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return skip(fmt.Sprintf("Column name starts with restricted prefix '%s'", prefix))
		}
	}

	if !isLetter(name[0]) && name[0] != '_' {
		return skip(reasonBadFirstChar)
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if !isLetter(c) && !isDigit(c) && c != '_' {
			return skip(reasonBadChars)
		}
	}
	return model.Validation{Valid: true}
}

func skip(reason string) model.Validation {
	return model.Validation{Reason: reason}
}

func isLetter(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }
