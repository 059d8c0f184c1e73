package serialization

import (
	"time"

	"github.com/born-ml/nlcg/internal/optim"
	"github.com/born-ml/nlcg/internal/vector"
)

// LibraryVersion is recorded in every checkpoint written by this package.
const LibraryVersion = "0.1.0"

// Format constants.
const (
	MagicBytes      = "NLCG"
	FormatVersion   = 1
	ChecksumSize    = 32 // SHA-256 checksum size (32 bytes)
	ChecksumOffset  = 20 // Checksum offset in the fixed header
	FixedHeaderSize = ChecksumOffset + ChecksumSize
)

// Flags for the .nlcg format.
const (
	FlagHasMetadata uint32 = 1 << 0 // bit 0: custom metadata included
)

// Header represents the JSON header in a .nlcg file.
type Header struct {
	FormatVersion  int               `json:"format_version" yaml:"format_version"`           // Version of the .nlcg format
	LibraryVersion string            `json:"library_version" yaml:"library_version"`         // Version of the library that created this file
	CreatedAt      time.Time         `json:"created_at" yaml:"created_at"`                   // When the file was created
	Strategy       optim.Kind        `json:"strategy" yaml:"strategy"`                       // Beta-update strategy tag
	DType          string            `json:"dtype" yaml:"dtype"`                             // Scalar type (e.g., "float32", "float64")
	Metadata       map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"` // Custom metadata
}

// NewHeader creates a header for the given strategy and scalar type.
func NewHeader(kind optim.Kind, dt vector.DataType) Header {
	return Header{
		FormatVersion:  FormatVersion,
		LibraryVersion: LibraryVersion,
		CreatedAt:      time.Now().UTC(),
		Strategy:       kind,
		DType:          dt.String(),
	}
}

// flags returns the flag bits describing h.
func (h *Header) flags() uint32 {
	var flags uint32
	if len(h.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	return flags
}
