package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/matiasglessi/portfolio/internal/dateutil"
	"github.com/matiasglessi/portfolio/internal/yamlutil"
)

// yamlFormat recognizes a YAML block fenced by --- lines.
var yamlFormat = frontmatter.NewFormat("---", "---", yamlutil.UnmarshalFrontMatter)

// Front-matter keys with a dedicated field.
const (
	keyTitle       = "title"
	keyDate        = "date"
	keyTags        = "tags"
	keyExcerpt     = "excerpt"
	keyDescription = "description"
	keyLayout      = "layout"
	keyDraft       = "draft"
)

var errMissingFrontMatter = errors.New("missing front matter")

// splitFrontMatter separates the YAML header from the markdown body.
func splitFrontMatter(data []byte) (map[string]any, string, error) {
	meta := map[string]any{}
	body, err := frontmatter.MustParse(bytes.NewReader(data), &meta, yamlFormat)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return nil, "", errMissingFrontMatter
		}
		return nil, "", err
	}
	return meta, string(body), nil
}

// fields consumes known keys from a front-matter map, leaving the rest as
// metadata. Methods return a reason string suitable for a LoadError.
type fields struct {
	meta map[string]any
}

func (f *fields) take(key string) (any, bool) {
	v, ok := f.meta[key]
	delete(f.meta, key)
	return v, ok
}

func (f *fields) requiredString(key string) (string, error) {
	v, _ := f.take(key)
	s := scalarString(v)
	if s == "" {
		return "", fmt.Errorf("missing required field %s", key)
	}
	return s, nil
}

func (f *fields) optionalString(keys ...string) string {
	var out string
	for _, key := range keys {
		v, _ := f.take(key)
		if s := scalarString(v); s != "" && out == "" {
			out = s
		}
	}
	return out
}

func (f *fields) date() (time.Time, error) {
	v, ok := f.take(keyDate)
	if !ok || v == nil || scalarString(v) == "" {
		return time.Time{}, fmt.Errorf("missing required field %s", keyDate)
	}
	return dateutil.ParseDate(v)
}

func (f *fields) tags() ([]string, error) {
	v, ok := f.take(keyTags)
	if !ok || v == nil {
		return nil, nil
	}
	var raw []string
	switch t := v.(type) {
	case string:
		raw = strings.Split(t, ",")
	case []any:
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				s = scalarString(item)
			}
			raw = append(raw, s)
		}
	case []string:
		raw = t
	default:
		return nil, fmt.Errorf("tags must be a list or a comma-separated string, got %T", v)
	}

	tags := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			tags = append(tags, s)
		}
	}
	return tags, nil
}

func (f *fields) draft() (bool, error) {
	v, ok := f.take(keyDraft)
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("draft must be true or false, got %v", v)
	}
	return b, nil
}

func (f *fields) layout() (PageKind, error) {
	v, _ := f.take(keyLayout)
	switch layout := strings.ToLower(scalarString(v)); layout {
	case "", "page":
		return KindGeneric, nil
	case "about":
		return KindAbout, nil
	default:
		return KindGeneric, fmt.Errorf("unknown layout %q", layout)
	}
}

// scalarString renders a YAML scalar as trimmed text; nil and
// collections yield "".
func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case time.Time:
		return t.Format(time.RFC3339)
	case []any, map[string]any:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
