// Package validation provides ready-made argument validators. Every validator is a
// predicate over the raw argument text and can be passed to Option.SetValidator.
package validation

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/araddon/dateparse"
)

// All combines multiple validators - all must pass
func All(validators ...func(string) bool) func(string) bool {
	return func(value string) bool {
		for _, validator := range validators {
			if !validator(value) {
				return false
			}
		}
		return true
	}
}

// Any combines multiple validators - at least one must pass
func Any(validators ...func(string) bool) func(string) bool {
	return func(value string) bool {
		for _, validator := range validators {
			if validator(value) {
				return true
			}
		}
		return false
	}
}

// Not inverts a validator
func Not(validator func(string) bool) func(string) bool {
	return func(value string) bool {
		return !validator(value)
	}
}

// NonEmpty rejects empty and whitespace-only values
func NonEmpty() func(string) bool {
	return func(value string) bool {
		return strings.TrimSpace(value) != ""
	}
}

// MinLength validates minimum string length in Unicode characters (not bytes)
func MinLength(min int) func(string) bool {
	return func(value string) bool {
		return utf8.RuneCountInString(value) >= min
	}
}

// MaxLength validates maximum string length in Unicode characters (not bytes)
func MaxLength(max int) func(string) bool {
	return func(value string) bool {
		return utf8.RuneCountInString(value) <= max
	}
}

// Integer accepts base-10 integers
func Integer() func(string) bool {
	return func(value string) bool {
		_, err := strconv.ParseInt(value, 10, 64)
		return err == nil
	}
}

// Float accepts anything strconv.ParseFloat accepts
func Float() func(string) bool {
	return func(value string) bool {
		_, err := strconv.ParseFloat(value, 64)
		return err == nil
	}
}

// Range accepts numbers within [min, max]
func Range(min, max float64) func(string) bool {
	return func(value string) bool {
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		return num >= min && num <= max
	}
}

// OneOf accepts exactly one of the given values (case-sensitive)
func OneOf(values ...string) func(string) bool {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}

	return func(value string) bool {
		_, ok := allowed[value]
		return ok
	}
}

// Regex accepts values matching pattern. The pattern is compiled once; an invalid
// pattern is reported here rather than at parse time.
func Regex(pattern string) (func(string) bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return re.MatchString, nil
}

// Date accepts anything dateparse can read as a date or timestamp
func Date() func(string) bool {
	return func(value string) bool {
		_, err := dateparse.ParseAny(value)
		return err == nil
	}
}

// ExistingFile accepts paths to existing regular files
func ExistingFile() func(string) bool {
	return func(value string) bool {
		info, err := os.Stat(value)
		return err == nil && info.Mode().IsRegular()
	}
}
