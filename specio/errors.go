// Package specio implements the Spectrum and TLSpectrum text file format
// of the module's External Interfaces: a comment-prefixed header line
// followed by C-order data and mask rows. It is the only file-I/O
// surface in the module, kept deliberately thin and separate from the
// numeric core.
package specio

import "errors"

// Sentinel errors for the specio package.
var (
	// ErrBadHeader indicates a header line that doesn't parse as a
	// shape/fold/labels (Spectrum) or n/fold (TLSpectrum) triple.
	ErrBadHeader = errors.New("specio: malformed header line")

	// ErrBadData indicates a data or mask row with the wrong token
	// count, or a token that fails to parse as a float/int.
	ErrBadData = errors.New("specio: malformed data row")

	// ErrTruncated indicates the reader ran out of input before all
	// expected lines were read.
	ErrTruncated = errors.New("specio: truncated input")
)
