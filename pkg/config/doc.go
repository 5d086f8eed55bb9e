// Package config loads service configuration from the process environment.
//
// Values are read with github.com/caarlos0/env/v11 after an optional `.env`
// file in the working directory has been applied by github.com/joho/godotenv.
// Each configuration type is parsed once and cached for the lifetime of the
// process, so every module may call Load for its own struct without paying
// for repeated parsing.
//
// A struct that implements Validator is checked right after parsing; an
// invalid configuration is never cached.
//
//	type UploadConfig struct {
//		CSVMaxFileSize int64 `env:"CSV_MAX_FILE_SIZE" envDefault:"104857600"`
//	}
//
//	var cfg UploadConfig
//	config.MustLoad(&cfg)
//
// Parse skips the cache and is meant for tests that tweak the environment
// with t.Setenv between calls.
package config
