// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and
environment variables.

# Precedence

CLI flags take priority over environment variables, which take
priority over built-in defaults:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

  - -p / PORT: server port (default 8501)
  - -u / USERS_FILE: credential store path (default users.json)
  - -r / DATA_FILE: record store path (default yoka_data.csv)
  - -session-ttl / SESSION_TTL_MINUTES: idle session lifetime
    in minutes (default 720)

Every setting has a default, so the server starts with no flags at all.
*/
package cliparse
