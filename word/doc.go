// Package word packs an 8-byte-aligned user-space pointer together with
// caller-defined tag and data bits in a single 64-bit machine word.
//
// On the supported targets a user-space pointer carries at most 44
// significant bits: its low 3 bits are zero by alignment and its high 17
// bits are zero by address-space convention. Word reclaims those 20 bits
// for caller metadata without growing beyond one machine word.
package word
