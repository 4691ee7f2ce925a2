// Package repository contains the persistence gateway: strictly data access,
// no business logic. PostgreSQL implementations live in the postgres
// subpackage, testify mocks in mocks.
//
// Absent rows surface as sql.ErrNoRows; deletes are idempotent and report no
// error for missing ids.
package repository

import "errors"

// ErrUniqueViolation is returned by create operations when a unique
// constraint (admin username or email) is violated.
var ErrUniqueViolation = errors.New("unique constraint violation")
