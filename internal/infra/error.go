package infra

import (
	"errors"

	"wayfarer/internal/pkg/errs"
)

type RepositoryErrorKind string

// Error kinds for the persistence and supplier boundaries.
const (
	KindNotFound       RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure      RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey   RepositoryErrorKind = "DUPLICATE_KEY"
	KindConflict       RepositoryErrorKind = "CONFLICT"
	KindUnavailable    RepositoryErrorKind = "UNAVAILABLE"
	KindExpired        RepositoryErrorKind = "EXPIRED"
	KindRejected       RepositoryErrorKind = "REJECTED"
	KindOutcomeUnknown RepositoryErrorKind = "OUTCOME_UNKNOWN"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func (e RepositoryError) Message() string {
	return e.msg
}

// WrapRepoErr attaches a kind to a low-level error. Kind defaults to
// DB_FAILURE when omitted.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf extracts the kind, or "" when err is not a RepositoryError.
func KindOf(err error) RepositoryErrorKind {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
