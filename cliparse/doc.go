// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string (default file:bunutan.db for sqlite)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - BaseURL: prefix for reveal links (default: http://localhost:<port>/reveal)
  - LogLevel: slog level (default: info)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-base-url   Reveal link base URL
	-log-level  debug, info, warn or error
	-env        dotenv file to load (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	BASE_URL      → -base-url
	LOG_LEVEL     → -log-level

The dotenv file is loaded with godotenv before the environment is read. It
never overrides variables that are already set, and a missing file is
ignored.

# Validation

ParseFlags returns an error if:

  - PORT is not a number in 1-65535
  - DATABASE_TYPE is not sqlite or postgres
  - DATABASE_URL is missing for postgres
  - LOG_LEVEL is not a slog level name
*/
package cliparse
