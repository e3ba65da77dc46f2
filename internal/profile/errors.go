package profile

import "errors"

var (
	// ErrNoRecords indicates a profile file parsed cleanly but contained no
	// experience records.
	ErrNoRecords = errors.New("profile: no experience records")

	// ErrDuplicateKey indicates two experience records share a key.
	ErrDuplicateKey = errors.New("profile: duplicate experience key")
)
