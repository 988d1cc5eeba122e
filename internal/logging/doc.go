// Package logging provides the structured logging interface used by the
// mpcalc command. Entries are written as JSON through zerolog, each tagged
// with the component that produced it.
//
// The arithmetic core (internal/mpint) never logs; only the application
// and calibration layers do.
package logging
