// Package assets provides the stylesheet published with every site.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - styles compiled into the binary
//	    ├── FilesystemLoader  - styles from a theme directory
//	    └── AssetResolver     - theme first, embedded fallback
//
// The emitter asks the resolver for DefaultStyle and writes it to
// css/styles.css. A theme directory set through the themeDir configuration
// key overrides it with {themeDir}/styles/default.css.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within the
// theme directory.
package assets
