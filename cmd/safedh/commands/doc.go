// Package commands implements the safedh CLI: group parameter generation,
// inspection, and the two-party key-exchange demonstration.
package commands
