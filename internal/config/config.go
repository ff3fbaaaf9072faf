package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/matiasglessi/portfolio/internal/dateutil"
	"github.com/matiasglessi/portfolio/internal/fileutil"
	"github.com/matiasglessi/portfolio/internal/siteerr"
	"github.com/matiasglessi/portfolio/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrMissingField    = errors.New("required field missing")
	ErrInvalidValue    = errors.New("invalid value")
)

// Field length limits.
const (
	MaxNameLength     = 100
	MaxTextLength     = 500
	MaxEmailLength    = 254 // RFC 5321
	MaxURLLength      = 2048
	MaxLabelLength    = 100
	MaxLanguageLength = 35 // BCP 47
	MaxPrefixLength   = 20
	MaxPeriodLength   = 50
)

// Bounds and defaults.
const (
	DefaultLanguage       = "en"
	DefaultPostsDir       = "posts"
	DefaultWordsPerMinute = 200
	DefaultHighlightStyle = "github"
	MinWordsPerMinute     = 1
	MaxWordsPerMinute     = 2000
)

// appDirName is the directory under the user config dir searched for configs.
const appDirName = "portfolio"

// Config holds everything the generator needs besides the content itself.
type Config struct {
	Name            string       `yaml:"name"`
	Description     string       `yaml:"description"`
	URL             string       `yaml:"url"`
	Language        string       `yaml:"language"`
	Author          AuthorConfig `yaml:"author"`
	Social          []Link       `yaml:"social"`
	Navigation      []NavItem    `yaml:"navigation"`
	PostsDir        string       `yaml:"postsDir"`
	StaticDirs      []string     `yaml:"staticDirs"`
	Stylesheets     []Stylesheet `yaml:"stylesheets"`
	ThemeDir        string       `yaml:"themeDir"` // overrides embedded styles/default.css
	WordsPerMinute  int          `yaml:"wordsPerMinute"`
	HighlightPrefix string       `yaml:"highlightPrefix"`
	HighlightStyle  string       `yaml:"highlightStyle"`
	DateFormat      string       `yaml:"dateFormat"`
	Pages           PagesConfig  `yaml:"pages"`
	Feed            FeedConfig   `yaml:"feed"`
	Sitemap         bool         `yaml:"sitemap"`
	Footer          FooterConfig `yaml:"footer"`
	About           AboutConfig  `yaml:"about"`
}

// Stylesheet is an extra stylesheet link placed before the site styles.
// In YAML it is either a bare href or a mapping with href, integrity and
// crossorigin.
type Stylesheet struct {
	Href        string `yaml:"href"`
	Integrity   string `yaml:"integrity"`
	CrossOrigin string `yaml:"crossorigin"`
}

// UnmarshalYAML accepts the bare href form.
func (s *Stylesheet) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if href, ok := raw.(string); ok {
		*s = Stylesheet{Href: href}
		return nil
	}
	type plain Stylesheet
	var p plain
	if err := unmarshal(&p); err != nil {
		return err
	}
	*s = Stylesheet(p)
	return nil
}

// AuthorConfig identifies the site owner.
type AuthorConfig struct {
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Avatar string `yaml:"avatar"` // site-relative path or URL
}

// Link is a social profile shown in the sidebar.
type Link struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon"`  // icon font class, e.g. "fa fa-github"
	Class string `yaml:"class"` // extra class on the anchor
}

// NavItem is a navigation entry: either a site path or an external URL.
type NavItem struct {
	Title string `yaml:"title"`
	Path  string `yaml:"path"`
	URL   string `yaml:"url"`
}

// PagesConfig enables the optional page kinds.
type PagesConfig struct {
	TagList   bool `yaml:"tagList"`
	TagDetail bool `yaml:"tagDetail"`
}

// FeedConfig controls the Atom feed.
type FeedConfig struct {
	Enabled bool `yaml:"enabled"`
	Limit   int  `yaml:"limit"` // 0 = every post
}

// FooterConfig defines the site footer.
type FooterConfig struct {
	Text string `yaml:"text"`
	Year int    `yaml:"year"` // 0 = year of the newest post
}

// AboutConfig feeds the about page layout.
type AboutConfig struct {
	Experience []Entry `yaml:"experience"`
	Education  []Entry `yaml:"education"`
}

// Entry is one experience or education item.
type Entry struct {
	Role    string `yaml:"role"`
	Company string `yaml:"company"`
	URL     string `yaml:"url"`
	Logo    string `yaml:"logo"`
	Period  string `yaml:"period"`
}

// BasePath returns the path component of URL with leading and trailing
// slashes, e.g. "/" or "/blog/". Call after Validate.
func (c *Config) BasePath() string {
	u, err := url.Parse(c.URL)
	if err != nil || u.Path == "" {
		return "/"
	}
	p := "/" + strings.Trim(u.Path, "/") + "/"
	if p == "//" {
		return "/"
	}
	return p
}

// Origin returns scheme and host of URL without a trailing slash.
func (c *Config) Origin() string {
	u, err := url.Parse(c.URL)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// Validate checks required values, bounds and field lengths.
// Called automatically by LoadConfig, but available for callers that build a
// Config in code.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return missing("name")
	}
	if err := validateFieldLength("name", c.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("description", c.Description, MaxTextLength); err != nil {
		return err
	}
	if err := validateAbsoluteURL("url", c.URL, true); err != nil {
		return err
	}
	if err := validateFieldLength("language", c.Language, MaxLanguageLength); err != nil {
		return err
	}

	if err := validateFieldLength("author.name", c.Author.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("author.email", c.Author.Email, MaxEmailLength); err != nil {
		return err
	}
	if c.Author.Email != "" && !strings.Contains(c.Author.Email, "@") {
		return invalid("author.email", fmt.Sprintf("%q is not an email address", c.Author.Email))
	}
	if err := validateFieldLength("author.avatar", c.Author.Avatar, MaxURLLength); err != nil {
		return err
	}

	for i, link := range c.Social {
		field := fmt.Sprintf("social[%d]", i)
		if strings.TrimSpace(link.Title) == "" {
			return missing(field + ".title")
		}
		if err := validateFieldLength(field+".title", link.Title, MaxLabelLength); err != nil {
			return err
		}
		if link.URL == "" {
			return missing(field + ".url")
		}
		if err := validateFieldLength(field+".url", link.URL, MaxURLLength); err != nil {
			return err
		}
	}

	for i, item := range c.Navigation {
		field := fmt.Sprintf("navigation[%d]", i)
		if strings.TrimSpace(item.Title) == "" {
			return missing(field + ".title")
		}
		switch {
		case item.Path == "" && item.URL == "":
			return invalid(field, "one of path or url is required")
		case item.Path != "" && item.URL != "":
			return invalid(field, "path and url are mutually exclusive")
		case item.URL != "":
			if err := validateAbsoluteURL(field+".url", item.URL, false); err != nil {
				return err
			}
		case !strings.HasPrefix(item.Path, "/"):
			return invalid(field+".path", fmt.Sprintf("%q must start with /", item.Path))
		}
	}

	if strings.ContainsAny(c.PostsDir, `\`) || strings.HasPrefix(c.PostsDir, "/") || strings.Contains(c.PostsDir, "..") {
		return invalid("postsDir", fmt.Sprintf("%q must be a relative path inside the content root", c.PostsDir))
	}

	if err := validateFieldLength("themeDir", c.ThemeDir, MaxURLLength); err != nil {
		return err
	}
	for i, sheet := range c.Stylesheets {
		if err := validateStylesheet(fmt.Sprintf("stylesheets[%d]", i), sheet); err != nil {
			return err
		}
	}

	if c.WordsPerMinute < MinWordsPerMinute || c.WordsPerMinute > MaxWordsPerMinute {
		return invalid("wordsPerMinute", fmt.Sprintf("must be between %d and %d, got %d", MinWordsPerMinute, MaxWordsPerMinute, c.WordsPerMinute))
	}

	if err := validateFieldLength("highlightPrefix", c.HighlightPrefix, MaxPrefixLength); err != nil {
		return err
	}
	if _, ok := styles.Registry[c.HighlightStyle]; !ok {
		return invalid("highlightStyle", fmt.Sprintf("unknown style %q", c.HighlightStyle))
	}

	if _, err := dateutil.ResolveFormat(c.DateFormat); err != nil {
		return &siteerr.ConfigError{Field: "dateFormat", Reason: "invalid format", Err: err}
	}

	if c.Feed.Limit < 0 {
		return invalid("feed.limit", fmt.Sprintf("must not be negative, got %d", c.Feed.Limit))
	}

	if err := validateFieldLength("footer.text", c.Footer.Text, MaxTextLength); err != nil {
		return err
	}
	if c.Footer.Year < 0 || c.Footer.Year > 9999 {
		return invalid("footer.year", fmt.Sprintf("out of range: %d", c.Footer.Year))
	}

	if err := validateEntries("about.experience", c.About.Experience); err != nil {
		return err
	}
	return validateEntries("about.education", c.About.Education)
}

// HighlightStyles lists the chroma styles accepted by highlightStyle.
func HighlightStyles() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}

func validateEntries(field string, entries []Entry) error {
	for i, e := range entries {
		f := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(e.Role) == "" && strings.TrimSpace(e.Company) == "" {
			return invalid(f, "role or company is required")
		}
		if err := validateFieldLength(f+".role", e.Role, MaxLabelLength); err != nil {
			return err
		}
		if err := validateFieldLength(f+".company", e.Company, MaxLabelLength); err != nil {
			return err
		}
		if err := validateFieldLength(f+".url", e.URL, MaxURLLength); err != nil {
			return err
		}
		if err := validateFieldLength(f+".logo", e.Logo, MaxURLLength); err != nil {
			return err
		}
		if err := validateFieldLength(f+".period", e.Period, MaxPeriodLength); err != nil {
			return err
		}
	}
	return nil
}

func validateAbsoluteURL(field, value string, required bool) error {
	if value == "" {
		if required {
			return missing(field)
		}
		return nil
	}
	if err := validateFieldLength(field, value, MaxURLLength); err != nil {
		return err
	}
	u, err := url.Parse(value)
	if err != nil {
		return &siteerr.ConfigError{Field: field, Reason: "unparseable URL", Err: err}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid(field, fmt.Sprintf("%q must be an absolute http or https URL", value))
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return &siteerr.ConfigError{
			Field:  fieldName,
			Reason: fmt.Sprintf("%d chars, max %d", len(value), maxLength),
			Err:    ErrFieldTooLong,
		}
	}
	return nil
}

func missing(field string) error {
	return &siteerr.ConfigError{Field: field, Reason: "required", Err: ErrMissingField}
}

// Subresource integrity digests accepted by browsers.
var integrityPrefixes = []string{"sha256-", "sha384-", "sha512-"}

func validateStylesheet(field string, s Stylesheet) error {
	if strings.TrimSpace(s.Href) == "" {
		return invalid(field+".href", "must not be empty")
	}
	if err := validateFieldLength(field+".href", s.Href, MaxURLLength); err != nil {
		return err
	}
	for _, digest := range strings.Fields(s.Integrity) {
		if !slices.ContainsFunc(integrityPrefixes, func(p string) bool { return strings.HasPrefix(digest, p) }) {
			return invalid(field+".integrity", fmt.Sprintf("%q must start with sha256-, sha384- or sha512-", digest))
		}
	}
	switch s.CrossOrigin {
	case "", "anonymous", "use-credentials":
	default:
		return invalid(field+".crossorigin", fmt.Sprintf("%q must be anonymous or use-credentials", s.CrossOrigin))
	}
	return nil
}

func invalid(field, reason string) error {
	return &siteerr.ConfigError{Field: field, Reason: reason, Err: ErrInvalidValue}
}

// DefaultConfig returns the defaults every loaded file is merged over.
// Name and URL are left empty and must be provided.
func DefaultConfig() *Config {
	return &Config{
		Language:       DefaultLanguage,
		PostsDir:       DefaultPostsDir,
		WordsPerMinute: DefaultWordsPerMinute,
		HighlightStyle: DefaultHighlightStyle,
		DateFormat:     dateutil.DefaultDateFormat,
		Pages:          PagesConfig{TagList: true, TagDetail: true},
		Feed:           FeedConfig{Enabled: true},
		Sitemap:        true,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over DefaultConfig and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, &siteerr.ConfigError{Field: "(file)", Reason: "parse failed", Err: fmt.Errorf("%w: %v", ErrConfigParse, err)}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CandidatePaths lists the files searched for a config name, in order:
// current directory then ~/.config/portfolio/, .yaml before .yml.
func CandidatePaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing candidate for name.
func resolveConfigPath(name string) (string, error) {
	tried := CandidatePaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
