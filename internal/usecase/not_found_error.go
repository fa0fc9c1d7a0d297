package usecase

import "errors"

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundReason tells apart why a resource is reported as missing. It is only logged:
// callers see the same message for every reason so existence is never leaked.
type NotFoundReason string

const (
	ReasonMissing   NotFoundReason = "missing"
	ReasonNotOwned  NotFoundReason = "not_owned"
	ReasonWrongType NotFoundReason = "wrong_type"
	ReasonInactive  NotFoundReason = "inactive"
)

const (
	ResourceSubject  = "subject"
	ResourceTemplate = "template"
	ResourceDocument = "document"
)

type NotFoundError struct {
	Resource string
	Reason   NotFoundReason
}

func newNotFound(resource string, reason NotFoundReason) *NotFoundError {
	return &NotFoundError{Resource: resource, Reason: reason}
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotFoundReasonOf extracts the internal reason, or "" when err is not a NotFoundError.
func NotFoundReasonOf(err error) NotFoundReason {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Reason
	}
	return ""
}
