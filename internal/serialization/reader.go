package serialization

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/born-ml/nlcg/internal/optim"
	"github.com/born-ml/nlcg/internal/vector"
)

// Reader reads strategy checkpoints from .nlcg format.
type Reader struct {
	r      io.Reader
	closer io.Closer
	opts   ReaderOptions
	closed bool
}

// ReaderOptions configures the behavior of Reader.
type ReaderOptions struct {
	SkipChecksumValidation bool            // Skip checksum validation (faster but less safe)
	ValidationLevel        ValidationLevel // Validation strictness level
}

// NewReader creates a reader over r with default options (strict validation).
func NewReader(r io.Reader) *Reader {
	return NewReaderWithOptions(r, ReaderOptions{ValidationLevel: ValidationStrict})
}

// NewReaderWithOptions creates a reader over r with custom options.
func NewReaderWithOptions(r io.Reader, opts ReaderOptions) *Reader {
	return &Reader{r: r, opts: opts}
}

// Open opens a .nlcg file with default options.
func Open(path string) (*Reader, error) {
	return OpenWithOptions(path, ReaderOptions{ValidationLevel: ValidationStrict})
}

// OpenWithOptions opens a .nlcg file with custom options.
func OpenWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for checkpoint loading
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	r := NewReaderWithOptions(file, opts)
	r.closer = file
	return r, nil
}

// ReadHeader reads, verifies and validates one checkpoint header.
func (r *Reader) ReadHeader() (Header, error) {
	if r.closed {
		return Header{}, ErrClosed
	}

	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r.r, fixed); err != nil {
		return Header{}, errors.Wrap(err, "failed to read fixed header")
	}

	// 0x00-0x03: magic
	if string(fixed[:4]) != MagicBytes {
		return Header{}, errors.WithStack(ErrInvalidMagic)
	}

	// 0x04-0x07: version
	version := binary.LittleEndian.Uint32(fixed[4:8])
	if version != FormatVersion {
		return Header{}, errors.Wrapf(ErrUnsupportedVersion, "got %d, expected %d", version, FormatVersion)
	}

	// 0x08-0x0B: flags
	flags := binary.LittleEndian.Uint32(fixed[8:12])

	// 0x0C-0x13: header size
	headerSize := binary.LittleEndian.Uint64(fixed[12:20])
	if headerSize > MaxHeaderSize {
		return Header{}, errors.Wrapf(ErrHeaderTooLarge, "%d bytes", headerSize)
	}

	// 0x14-0x33: SHA-256 checksum
	var stored [ChecksumSize]byte
	copy(stored[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r.r, headerJSON); err != nil {
		return Header{}, errors.Wrap(err, "failed to read header JSON")
	}

	if !r.opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(headerJSON), stored); err != nil {
			return Header{}, err
		}
	}

	var h Header
	if err := json.Unmarshal(headerJSON, &h); err != nil {
		return Header{}, errors.Wrap(err, "failed to parse header JSON")
	}

	if r.opts.ValidationLevel == ValidationStrict && (flags&FlagHasMetadata != 0) != (len(h.Metadata) > 0) {
		return Header{}, &ValidationError{
			Type:    "flags_mismatch",
			Field:   "metadata",
			Details: "metadata flag does not match header contents",
		}
	}
	if err := ValidateHeader(&h, r.opts.ValidationLevel); err != nil {
		return Header{}, errors.Wrap(err, "validation failed")
	}
	return h, nil
}

// Close closes the underlying file, if the reader owns one.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Load reads a checkpoint header from the file at path.
func Load(path string) (Header, error) {
	r, err := Open(path)
	if err != nil {
		return Header{}, err
	}
	defer func() { _ = r.Close() }()
	return r.ReadHeader()
}

// Restore returns the strategy recorded in h for the scalar type F.
//
// It fails if h was written for a different scalar type.
func Restore[G optim.DotSubNormer[G, F], P vector.Dotter[G, F], F optim.Float](h Header) (optim.BetaUpdate[G, P, F], error) {
	if want := vector.DataTypeOf[F]().String(); h.DType != want {
		return nil, &ValidationError{
			Type:    "dtype_mismatch",
			Field:   "dtype",
			Details: "checkpoint holds " + h.DType + ", restoring as " + want,
		}
	}
	return optim.New[G, P, F](h.Strategy)
}
