package binary

// crcPolynomial is the bit-reversed CRC-32 polynomial used by PNG (and
// zlib, gzip, Ethernet).
const crcPolynomial = 0xEDB88320

// crcTable is filled once during package initialization and only read
// afterwards, so it is safe for concurrent use.
var crcTable = MakeTable()

// MakeTable builds the 256-entry lookup table for crcPolynomial. It is pure;
// every call returns an identical table.
func MakeTable() [256]uint32 {
	var table [256]uint32
	for n := range table {
		c := uint32(n)
		for k := 0; k < 8; k++ {
			if c&1 != 0 {
				c = crcPolynomial ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		table[n] = c
	}
	return table
}

// UpdateCRC feeds p into a running CRC accumulator. The accumulator is the
// raw register value: start from 0xFFFFFFFF and invert the final result, or
// use CRC32.
func UpdateCRC(crc uint32, p []byte) uint32 {
	for _, b := range p {
		crc = crcTable[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}

// CRC32 computes the CRC-32 of p as stored in PNG chunk trailers.
func CRC32(p []byte) uint32 {
	return UpdateCRC(0xFFFFFFFF, p) ^ 0xFFFFFFFF
}

// ChunkCRC computes the CRC of a chunk, which covers the type tag followed
// by the payload but not the length field.
func ChunkCRC(typ, data []byte) uint32 {
	crc := UpdateCRC(0xFFFFFFFF, typ)
	crc = UpdateCRC(crc, data)
	return crc ^ 0xFFFFFFFF
}
