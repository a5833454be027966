package simplot

import "errors"

var (
	// ErrInvalidStyle is returned when a format string such as "bo-" cannot
	// be parsed, or a color name is not recognized.
	ErrInvalidStyle = errors.New("simplot: invalid style")

	// ErrLengthMismatch is returned when a plot call supplies x and y
	// sequences of different lengths.
	ErrLengthMismatch = errors.New("simplot: x and y must have the same length")

	// ErrInvalidOption is returned for out-of-range option values, such as
	// a negative line width or an alpha outside [0, 1].
	ErrInvalidOption = errors.New("simplot: invalid option")

	// ErrUnsupportedFormat is returned by SaveFig for file extensions other
	// than .png, .jpg and .jpeg.
	ErrUnsupportedFormat = errors.New("simplot: unsupported image format")
)
