// Package domain defines the core data models and interfaces shared across
// the app. It contains plain types (group parameters, key pairs, exchange
// results) and contracts (interfaces) only.
package domain
