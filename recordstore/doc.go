// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package recordstore persists registration submissions as an append-only
CSV file.

# File Format

The first row is the fixed 37-column header
(models.RegistrationColumns); every following row is one submission.
encoding/csv handles quoting, so free-text fields with embedded commas,
quotes, or newlines round-trip safely.

# Operations

	store := recordstore.New("yoka_data.csv")
	store.Initialize()          // write the header on first run
	store.Append(rec)           // one row, creates the file if missing
	records, err := store.LoadAll()

Records are immutable once appended and never deleted. LoadAll returns
an empty slice (not an error) when the file does not exist; a corrupt or
unreadable file surfaces as a wrapped error.

A store-level mutex serializes appends within the process. Writers in
other processes are not coordinated.
*/
package recordstore
