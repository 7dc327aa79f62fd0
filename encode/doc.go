// Package encode renders ir trees as toon text.
package encode
