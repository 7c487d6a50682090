package modelspec

import "errors"

// Domain errors for specification loading and resolution.
var (
	// ErrParse indicates the specification text could not be parsed into
	// stanzas of key/value pairs.
	ErrParse = errors.New("modelspec: malformed specification")

	// ErrStanzaNotFound indicates a lookup named a stanza the specification
	// does not contain.
	ErrStanzaNotFound = errors.New("modelspec: stanza not found")

	// ErrKeyNotFound indicates a lookup named a key its stanza does not contain.
	ErrKeyNotFound = errors.New("modelspec: key not found")

	// ErrBadReference indicates an extended-mode ${Stanza:key} reference that
	// cannot be resolved.
	ErrBadReference = errors.New("modelspec: unresolvable reference")

	// ErrReferenceCycle indicates extended-mode interpolation entered a cycle.
	ErrReferenceCycle = errors.New("modelspec: interpolation cycle")
)
