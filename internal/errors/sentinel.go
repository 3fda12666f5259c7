package errors

import "errors"

var (
	// ErrMissingIdentifier means the note's front matter has no usable DOI.
	ErrMissingIdentifier = errors.New("DOI not found in front matter")
	// ErrBlockNotFound means the note has no leading front matter block to replace.
	ErrBlockNotFound = errors.New("no front matter block to replace")
)
