package site

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tag identifies a tag case-insensitively. Two tags are equal when their
// keys are.
type Tag struct {
	Label string // first spelling seen in discovery order
	Key   string // trimmed, lowercased label
	Slug  string // unique path segment for the tag detail page
}

// TagGroup lists the posts carrying a tag, newest first.
type TagGroup struct {
	Tag   Tag
	Posts []*Post
}

// tagRegistry assigns keys, labels and slugs. Not safe for concurrent use;
// the caser keeps state.
type tagRegistry struct {
	lower  cases.Caser
	labels map[string]string // key -> label
	order  []string          // keys in first-seen order
}

func newTagRegistry() *tagRegistry {
	return &tagRegistry{
		lower:  cases.Lower(language.Und),
		labels: make(map[string]string),
	}
}

func (r *tagRegistry) key(label string) string {
	return r.lower.String(strings.TrimSpace(label))
}

// add registers the raw tags of one post and returns its distinct keys.
func (r *tagRegistry) add(raw []string) []string {
	var keys []string
	seen := make(map[string]bool, len(raw))
	for _, label := range raw {
		label = strings.TrimSpace(label)
		k := r.key(label)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
		if _, ok := r.labels[k]; !ok {
			r.labels[k] = label
			r.order = append(r.order, k)
		}
	}
	return keys
}

// slugs maps every key to a distinct path segment. Keys must be sorted so
// suffixes are stable across runs.
func slugs(sortedKeys []string) map[string]string {
	out := make(map[string]string, len(sortedKeys))
	taken := make(map[string]bool, len(sortedKeys))
	for _, k := range sortedKeys {
		base := slugify(k)
		if base == "" {
			base = "tag"
		}
		s := base
		for n := 2; taken[s]; n++ {
			s = base + "-" + strconv.Itoa(n)
		}
		taken[s] = true
		out[k] = s
	}
	return out
}

// slugify keeps letters and digits and folds every other run into one dash.
func slugify(key string) string {
	var b strings.Builder
	dash := false
	for _, r := range key {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}
