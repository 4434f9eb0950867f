// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (default: database.db for sqlite)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SessionSecret: Secret for signing flash cookies (required)
  - BaseURL: Public base URL used in registration QR codes (default: http://localhost:<port>)
  - EnvFile: dotenv file read before the environment is consulted (default: .env)

# CLI Flags

	-p                Server port
	-d                Database file or URL
	-t                Database type
	--session-secret  Flash cookie signing secret
	--base-url        Public base URL
	--env-file        dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SESSION_SECRET → --session-secret
	BASE_URL       → --base-url

CLI flags take precedence over environment variables, and variables already
present in the environment take precedence over the dotenv file. A missing
dotenv file is not an error.

# Validation

ParseFlags returns an error if:

  - SESSION_SECRET is not provided
  - DATABASE_TYPE is neither sqlite nor postgres
  - postgres is selected without DATABASE_URL
*/
package cliparse
