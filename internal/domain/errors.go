package domain

import "errors"

// ErrNotFound is returned when a requested page, service slug or asset does
// not exist. Handlers map this to HTTP 404 with a plain-text body.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when hand-authored site data (the service catalog,
// project write-ups) violates one of its invariants. It only surfaces at
// startup; a site that fails validation never starts serving.
var ErrValidation = errors.New("validation error")
