package section

const (
	// Bit masks for the packed Options field
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3), must be zero
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic number (bits 4-15)
	MagicStreamV1Opt = 0xAC10 // MagicStreamV1 is the version 1 magic number for the coded stream format.
)

// Offsets and sizes in the stream layout.
const (
	HeaderSize = 40 // fixed header size in bytes
)
