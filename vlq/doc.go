// Package vlq implements a self-delimiting variable-length encoding of
// 64-bit unsigned integers on top of the bits package.
//
// An encoding starts with c zero bits, where c is the length class, then a
// one bit unless c is 8, then the value in a payload whose width depends
// on c, then zero padding to a byte boundary:
//
//	class  values         payload  bytes
//	0      [0, 2^7)        7       1
//	1      [2^7, 2^14)     14      2
//	2      [2^14, 2^20)    20      3
//	3      [2^20, 2^28)    28      4
//	4      [2^28, 2^35)    35      5
//	5      [2^35, 2^42)    42      6
//	6      [2^42, 2^49)    49      7
//	7      [2^49, 2^56)    56      8
//	8      [2^56, 2^64)    64      9
//
// The payload holds the little-endian bytes of the value with the bit
// order of every byte reversed, so the first payload bit is the least
// significant bit of the value. The class, and so the whole length, is
// readable from the leading zeros of the first byte.
//
// Decode reads a value from a buffer that already holds all of it. Reader
// does the same across any number of partial buffers, returning
// ErrInsufficient until the last bit arrives.
package vlq
