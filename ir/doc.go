// Package ir defines the dynamic value tree shared by the parse and
// encode engines, along with conversions to and from plain Go values.
package ir
