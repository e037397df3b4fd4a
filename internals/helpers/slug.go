package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// SlugOptions controls how slug uniqueness is checked against the DB.
type SlugOptions struct {
	// Table name, e.g. "classes"
	Table string
	// Slug column, e.g. "class_slug"
	SlugColumn string

	// Soft-delete column (NULL means live). Empty when the table does
	// not soft-delete.
	SoftDeleteColumn string

	// Extra filters to scope uniqueness to a tenant,
	// e.g. map[string]any{"class_academy_id": academyID}
	Filters map[string]any

	// Max slug length including -2/-3 suffixes. 0 = DefaultSlugMaxLen.
	MaxLen int

	// Fallback base when the input normalizes to empty.
	DefaultBase string
}

// GenerateSlug normalizes a string into a slug: lower-case, non-alnum
// runs collapsed into a single "-", trimmed at both ends.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")

	reDash := regexp.MustCompile(`-+`)
	return reDash.ReplaceAllString(out, "-")
}

func cutToLen(s string, n int) string {
	if n <= 0 {
		return s
	}
	if len(s) <= n {
		return strings.Trim(s, "-")
	}
	return strings.Trim(s[:n], "-")
}

func isTaken(db *gorm.DB, opts SlugOptions, candidate string) (bool, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return false, errors.New("slug options: table/slug column required")
	}

	q := db.Table(opts.Table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", opts.SlugColumn), candidate)

	for k, v := range opts.Filters {
		q = q.Where(fmt.Sprintf("%s = ?", k), v)
	}

	if opts.SoftDeleteColumn != "" {
		q = q.Where(fmt.Sprintf("%s IS NULL", opts.SoftDeleteColumn))
	}

	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GenerateUniqueSlug builds a slug from base (or DefaultBase), unique
// case-insensitively among non-soft-deleted rows within Filters scope.
// Tries base, then base-2, base-3, ... up to an iteration cap.
func GenerateUniqueSlug(db *gorm.DB, opts SlugOptions, base string) (string, error) {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	slug := GenerateSlug(base)
	if slug == "" {
		slug = GenerateSlug(opts.DefaultBase)
	}
	if slug == "" {
		return "", errors.New("slug: empty base and no default base")
	}
	slug = cutToLen(slug, maxLen)

	taken, err := isTaken(db, opts, slug)
	if err != nil {
		return "", err
	}
	if !taken {
		return slug, nil
	}

	for i := 2; i <= 200; i++ {
		suffix := fmt.Sprintf("-%d", i)
		candidate := cutToLen(slug, maxLen-len(suffix)) + suffix
		taken, err := isTaken(db, opts, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("slug: exhausted candidates")
}
