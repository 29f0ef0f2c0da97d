// Package eem provides discovery and loading of fluorescence
// excitation-emission matrix (EEM) sample files.
//
// A sample file is a table whose header row holds excitation
// wavelengths, whose first column holds emission wavelengths, and
// whose body holds intensity readings. Loading transposes the table
// so that rows correspond to excitation and columns to emission,
// then builds the meshgrid coordinate arrays used for contour
// rendering.
package eem

import "errors"

// ErrMalformed reports a sample file that could not be parsed as a
// numeric wavelength table.
var ErrMalformed = errors.New("malformed sample file")
