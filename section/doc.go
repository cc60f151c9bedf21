// Package section defines the binary layout of the coded stream: the fixed
// 40-byte header and its packed flag word.
//
// A stream is laid out as:
//
//	+--------+---------------------+------------------+
//	| Header | Freq table section  | Coded payload    |
//	| 40 B   | TableSize B, static | remaining bytes  |
//	|        | table mode only     |                  |
//	+--------+---------------------+------------------+
//
// The header records the model configuration (type, alphabet size, rescale
// threshold, precision), the symbol count, and an xxHash64 checksum over
// everything after the header. The blob package produces and consumes this
// layout; this package only knows how to serialize and validate it.
package section
