// Package textutil provides filename sanitization for names taken from
// configuration or remote URLs.
package textutil
