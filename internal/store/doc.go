// Package store persists generated group parameters as JSON files on disk.
package store
