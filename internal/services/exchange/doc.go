// Package exchange orchestrates the full key-exchange demonstration:
// safe-prime group generation, both parties' key pairs, shared-secret
// computation, and key derivation. It returns a result struct and leaves
// all presentation to the caller.
package exchange
