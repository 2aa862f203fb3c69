package chunk

import "bytes"

// SignatureSize is the length of the PNG file signature and the offset of
// the first chunk.
const SignatureSize = 8

// Signature is the fixed magic at the start of every PNG file.
var Signature = [SignatureSize]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// HasSignature reports whether buf starts with the PNG signature.
func HasSignature(buf []byte) bool {
	return len(buf) >= SignatureSize && bytes.Equal(buf[:SignatureSize], Signature[:])
}

// Type is a chunk type tag.
type Type [4]byte

// Chunk types the decoder interprets.
var (
	TypeIHDR = Type{'I', 'H', 'D', 'R'}
	TypePLTE = Type{'P', 'L', 'T', 'E'}
	TypeIDAT = Type{'I', 'D', 'A', 'T'}
	TypeIEND = Type{'I', 'E', 'N', 'D'}
	TypeTRNS = Type{'t', 'R', 'N', 'S'}
)

func (t Type) String() string {
	return string(t[:])
}

// IsCritical reports whether the ancillary bit (bit 5 of the first byte) is
// clear. Decoders must understand every critical chunk.
func (t Type) IsCritical() bool {
	return t[0]&0x20 == 0
}

// Chunk is one length-prefixed, checksummed unit of the container.
type Chunk struct {
	Length uint32
	Type   Type
	Data   []byte // owned copy of the payload
	CRC    uint32 // as stored in the file
	Offset int    // position of the length field in the file
}

// Find returns the first chunk of the given type, and its index, or -1.
func Find(chunks []Chunk, typ Type) (Chunk, int) {
	for i, c := range chunks {
		if c.Type == typ {
			return c, i
		}
	}
	return Chunk{}, -1
}
