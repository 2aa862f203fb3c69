package binary

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected uint32
	}{
		{"empty", []byte{}, 0x00000000},
		{"check value", []byte("123456789"), 0xCBF43926},
		// The CRC of an empty IEND chunk, present at the end of every PNG.
		{"IEND", []byte("IEND"), 0xAE426082},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CRC32(tt.input))
		})
	}
}

func TestCRC32MatchesIEEE(t *testing.T) {
	data := make([]byte, 1024)
	for i := range data {
		data[i] = byte(i*31 + 7)
	}
	for _, n := range []int{0, 1, 3, 13, 100, 1024} {
		assert.Equal(t, crc32.ChecksumIEEE(data[:n]), CRC32(data[:n]), "length %d", n)
	}
}

func TestMakeTableIdempotent(t *testing.T) {
	first := MakeTable()
	second := MakeTable()
	assert.Equal(t, first, second)
	assert.Equal(t, crcTable, first)
	assert.Equal(t, uint32(0x77073096), first[1])

	ieee := crc32.MakeTable(crc32.IEEE)
	for i := range first {
		assert.Equal(t, ieee[i], first[i])
	}
}

func TestUpdateCRCIncremental(t *testing.T) {
	typ := []byte("IHDR")
	data := []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 2, 0, 0, 0}

	whole := CRC32(append(append([]byte{}, typ...), data...))
	assert.Equal(t, whole, ChunkCRC(typ, data))

	crc := UpdateCRC(0xFFFFFFFF, typ)
	crc = UpdateCRC(crc, data)
	assert.Equal(t, whole, crc^0xFFFFFFFF)
}

func TestCRC32SingleByteMutation(t *testing.T) {
	data := []byte("test data for checksum")
	sum := CRC32(data)

	for i := range data {
		mutated := append([]byte{}, data...)
		mutated[i] ^= 0x01
		assert.NotEqual(t, sum, CRC32(mutated), "mutation at %d not detected", i)
	}
}
