// Package library maps inferred identities to canonical destinations inside
// the media tree and answers read-only filesystem queries about it.
//
// The bracketed folder naming produced here is the compatibility surface the
// media server consumes; change it only in lockstep with that layout
// contract. Scanning is side-effect free: enumeration returns a
// lexicographically sorted list so runs are deterministic and reproducible.
package library
