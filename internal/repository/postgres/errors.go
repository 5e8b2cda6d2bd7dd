package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error code and constraint names used for error translation.
// Uniqueness is enforced by these constraints, not by application pre-checks:
// the constraint is what keeps concurrent writers from inserting duplicates.
const (
	uniqueViolationCode = "23505"

	participantsEmailConstraint = "participants_email_key"
	enrollmentsPairConstraint   = "enrollments_event_participant_key"
)

// isUniqueViolation reports whether err is a unique violation on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == uniqueViolationCode && pqErr.Constraint == constraint
}
