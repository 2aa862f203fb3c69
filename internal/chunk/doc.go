// Package chunk walks the chunk stream of a PNG container.
//
// A PNG file is an 8-byte signature followed by a sequence of chunks:
//
//	length:u32-BE | type:4 bytes | payload:length bytes | crc:u32-BE
//
// The CRC covers the type tag and the payload. The stream ends with an
// IEND chunk.
//
// # Corrupt Chunks
//
// A chunk whose stored CRC does not match is not fatal. [Walk] reports it
// with valid=false and [Parse] drops it with a warning, so a damaged
// ancillary chunk never prevents decoding. The terminating IEND chunk ends
// the stream whatever its CRC.
//
// Structural damage is fatal: if the buffer runs out while reading a length,
// type tag, payload or CRC, or before IEND is reached, the walk fails with
// an error matching oops.ErrUnexpectedEOF.
//
// # Key Types
//
//   - [Chunk]: one decoded chunk with an owned copy of its payload
//   - [Type]: the 4-byte type tag, with the critical tags as constants
//   - [Writer]: re-emits chunks with freshly computed CRCs
package chunk
