package guard

import (
	"net/mail"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IsString reports whether the value is a string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsNumber reports whether the value is any numeric kind, integer or float.
func IsNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// IsInt reports whether the value is an integer kind.
func IsInt(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

// IsFloat reports whether the value is a floating-point kind.
func IsFloat(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	}
	return false
}

// IsBool reports whether the value is a bool.
func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsNil reports whether the value is nil, including typed nil pointers,
// maps, slices, channels, functions and interfaces.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsMap reports whether the value is a map of any key and element type.
func IsMap(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Map
}

// IsSlice reports whether the value is a slice or array of any element type.
func IsSlice(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// IsUUID reports whether the value is a string holding a standard UUID.
// Only the canonical 36-character hyphenated form is accepted; the braced,
// URN and bare-hex forms that uuid.Parse tolerates are rejected.
func IsUUID(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsEmail reports whether the value is a string holding an email address
// acceptable for typical web use: RFC 5322 parseable, with a dotted domain.
func IsEmail(v any) bool {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 || parts[0] == "" {
		return false
	}

	domain := parts[1]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// IsURL reports whether the value is a string holding an absolute URL with
// a scheme and host.
func IsURL(v any) bool {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// IsISOTime reports whether the value is a string holding an RFC 3339
// timestamp, the interchange format of ISO 8601.
func IsISOTime(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
