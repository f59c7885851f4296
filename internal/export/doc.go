// Package export writes lookup table rows as CSV or JSON.
package export
