package option

import (
	"fmt"

	"github.com/c360/semserial/errors"
)

// normalizedRead lists the numeric options whose reads collapse to 0/1.
// Historically only these two are normalized; the rest return the stored
// value unchanged.
var normalizedRead = map[Option]bool{
	WriteBaseURI: true,
	RelativeURIs: true,
}

// Store holds the option values of one session, validated against a single
// area. Numeric and string values live in separate typed slots per the
// schema; a mismatched set or get never mutates state.
type Store struct {
	area    Area
	numeric map[Option]int
	text    map[Option]string
}

// NewStore returns an empty store validating against the given area.
func NewStore(area Area) *Store {
	return &Store{
		area:    area,
		numeric: make(map[Option]int),
		text:    make(map[Option]string),
	}
}

// Area returns the area this store validates against.
func (s *Store) Area() Area {
	return s.area
}

// Set stores a numeric option value. It rejects negative values, ids
// outside the store's area, and non-numeric ids. XMLVersion accepts only
// 10 and 11; any other value is ignored without error.
func (s *Store) Set(id Option, value int) error {
	if value < 0 {
		return fmt.Errorf("%s: negative value %d: %w", id, value, errors.ErrInvalidOption)
	}
	desc, ok := schema[id]
	if !ok || !desc.Areas.Has(s.area) {
		return fmt.Errorf("%s: not a %s option: %w", id, s.area, errors.ErrInvalidOption)
	}
	if desc.Kind != KindNumeric {
		return fmt.Errorf("%s: not a numeric option: %w", id, errors.ErrInvalidOption)
	}

	if id == XMLVersion && value != 10 && value != 11 {
		return nil
	}

	s.numeric[id] = value
	return nil
}

// SetString stores a string option value. For numeric ids the text is
// parsed as a best-effort integer (leading digits win, anything else
// parses to 0) and delegated to Set. For string ids the value replaces
// any previously stored one.
func (s *Store) SetString(id Option, value string) error {
	desc, ok := schema[id]
	if !ok || !desc.Areas.Has(s.area) {
		return fmt.Errorf("%s: not a %s option: %w", id, s.area, errors.ErrInvalidOption)
	}

	if desc.Kind == KindNumeric {
		return s.Set(id, atoi(value))
	}

	s.text[id] = value
	return nil
}

// Get returns a numeric option value, or -1 for ids outside the store's
// area or with string kind. Reads of normalized options collapse to 0/1;
// all other numeric options return the stored value, zero when unset.
func (s *Store) Get(id Option) int {
	desc, ok := schema[id]
	if !ok || !desc.Areas.Has(s.area) || desc.Kind != KindNumeric {
		return -1
	}

	value := s.numeric[id]
	if normalizedRead[id] {
		if value != 0 {
			return 1
		}
		return 0
	}
	return value
}

// GetString returns a string option value and whether it was set. Ids
// outside the store's area or with numeric kind report unset.
func (s *Store) GetString(id Option) (string, bool) {
	desc, ok := schema[id]
	if !ok || !desc.Areas.Has(s.area) || desc.Kind != KindString {
		return "", false
	}
	value, ok := s.text[id]
	return value, ok
}

// atoi parses leading whitespace, an optional sign, and leading digits;
// anything else yields 0. Matches the lenient integer parse the string
// setter has always used, which strconv.Atoi is too strict for.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\v' || s[i] == '\f' || s[i] == '\r') {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}

	if neg {
		return -n
	}
	return n
}
