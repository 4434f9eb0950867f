// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation, seeding and scoped access to the store.

# Store

A Store holds only the backend type and location. Each call to WithTx opens
a new handle, runs the callback in a transaction and closes the handle
again, so no connection outlives a request:

	err := store.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO Events ...")
		return err
	})

# Schema Creation

Init creates all tables and seeds two demonstration events when Events is
empty. Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes, and the seed is guarded by a row count.

Reset removes the SQLite file (or drops the tables on PostgreSQL) and calls
Init again.

# Tables

  - Colleges: name
  - Students: name, optional college
  - Events: title, type, date, optional college
  - Registrations: student ↔ event link
  - Attendance: Present/Absent per (student, event), UNIQUE on the pair
  - Feedback: 1-5 rating, any number per (student, event)

# Relationships

	Colleges 1──* Students
	Colleges 1──* Events
	Students *──* Events (via Registrations)
	Students *──* Events (via Attendance, at most one row per pair)
	Students *──* Events (via Feedback)

SQLite does not enforce the declared foreign keys (the pragma is left off);
PostgreSQL does.
*/
package db
