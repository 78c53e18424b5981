package registry

import "github.com/edgekit/iothub/errors"

// IsArgumentEmpty checks whether an operation was rejected because an
// identifier was empty or whitespace-only.
func IsArgumentEmpty(err error) bool {
	return errors.IsCode(err, errors.ErrCodeArgumentEmpty)
}

// IsEmptyResponse checks whether the service returned success without
// the expected body.
func IsEmptyResponse(err error) bool {
	return errors.IsCode(err, errors.ErrCodeEmptyResponse)
}
