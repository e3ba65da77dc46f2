package kit

import "errors"

// ErrEmptyDocument indicates a kit file contained no content at all.
var ErrEmptyDocument = errors.New("kit: empty document")
