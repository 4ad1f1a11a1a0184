// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request/response types and the registration record.

# Registration Record

Registration mirrors the record store's CSV schema: 37 columns covering
identity, parent/guardian details, education, and church affiliation,
plus a server-set timestamp and submitting username. Row and
RegistrationFromRow convert between the struct and a CSV row; the field
order is fixed and must match RegistrationColumns.

# Validation

Validate enforces required-field presence before a record reaches the
store:

	if missing := reg.Validate(); len(missing) > 0 {
		// reject with the missing display names
	}

Required fields: Official Name, Date of Birth, Age, Phone Numbers,
Email, School Name, Program, Current Class, Church Branch, Branch
Pastor. Everything else may be empty; duplicate submissions are allowed.

# Roles

Two roles exist: "admin" (user management, stats) and "user"
(form submission and record viewing).
*/
package models
