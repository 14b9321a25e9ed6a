// Package config loads Footprint configuration from local and global YAML
// files. Flags win over the local file, which wins over the global file; the
// CLI does the merging.
package config
