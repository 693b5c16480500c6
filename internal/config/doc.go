// Package config provides 12-factor configuration management for the file manager.
//
// Configuration is loaded from environment variables with sensible defaults.
// The --username flag overrides FM_USERNAME.
//
// Configuration Sections:
//   - Session: display name and the home directory that floors `up`
//   - Shell: async task dispatch, colors, prompt
//   - Filesystem: collation locale, stream buffer size, hash and codec choice
//   - Logging: Log level, output format and destination
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Compressing with %s\n", cfg.Filesystem.Compression)
//
// Environment Variables:
//   - FM_USERNAME, FM_HOME
//   - FM_ASYNC, FM_COLOR, FM_PROMPT
//   - FM_LOCALE, FM_BUFFER_SIZE, FM_HASH_ALGORITHM, FM_COMPRESSION
//   - FM_LOG_LEVEL, FM_LOG_DEV, FM_LOG_OUTPUT
package config
