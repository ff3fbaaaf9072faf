// Package pipeline turns markdown bodies into HTML fragments.
//
// Stages, in order:
//   - preprocessing (byte order mark, line endings)
//   - goldmark conversion with GFM, footnotes, ==mark== and heading IDs
//   - raw HTML escaping, so embedded markup is shown rather than executed
//   - chroma highlighting of fenced code through a pluggable Highlighter
//
// The package also derives plain text from markdown for excerpts, word
// counts and reading time, and rewrites site-internal links once the base
// path of the published site is known.
package pipeline
