package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Paging carries the normalized list-endpoint query parameters.
type Paging struct {
	Page              int
	Limit             int
	Offset            int
	DescriptionLength int

	offsetSet bool
}

const (
	DefaultPage              = 1
	DefaultLimit             = 20
	DefaultOffset            = 0
	DefaultDescriptionLength = 200
)

// PageParams normalizes raw query values. Invalid or non-numeric input falls
// back to the default rather than erroring.
func PageParams(page, limit, offset, descriptionLength string) Paging {
	p := Paging{
		Page:              atoi(page, DefaultPage),
		Limit:             atoi(limit, DefaultLimit),
		Offset:            DefaultOffset,
		DescriptionLength: atoi(descriptionLength, DefaultDescriptionLength),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(offset)); err == nil && n > 0 {
		p.Offset = n
		p.offsetSet = true
	}
	return p
}

// SQLOffset is the row offset for the query: an explicit offset wins,
// otherwise it is derived from the page number.
func (p Paging) SQLOffset() int {
	if p.offsetSet {
		return p.Offset
	}
	return (p.Page - 1) * p.Limit
}

func atoi(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// ID parses a positive numeric resource identifier.
func ID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n > 0
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Qty clamps a quantity into a sane window.
func Qty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Rating bounds a review rating to the 1..5 scale.
func Rating(n int) bool { return n >= 1 && n <= 5 }
