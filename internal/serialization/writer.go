package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Writer writes strategy checkpoints in .nlcg format.
type Writer struct {
	w      io.Writer
	closer io.Closer
	closed bool
}

// NewWriter creates a writer over w. Close does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// NewFileWriter creates a new .nlcg file writer.
func NewFileWriter(path string) (*Writer, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for checkpoint saving
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file")
	}
	return &Writer{w: file, closer: file}, nil
}

// WriteHeader writes a complete checkpoint for h.
//
// Missing FormatVersion, LibraryVersion and CreatedAt are filled in. The
// header is validated strictly before anything is written.
func (w *Writer) WriteHeader(h Header) error {
	if w.closed {
		return ErrClosed
	}

	if h.FormatVersion == 0 {
		h.FormatVersion = FormatVersion
	}
	if h.LibraryVersion == "" {
		h.LibraryVersion = LibraryVersion
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}
	if err := ValidateHeader(&h, ValidationStrict); err != nil {
		return errors.Wrap(err, "invalid header")
	}

	headerJSON, err := json.Marshal(h)
	if err != nil {
		return errors.Wrap(err, "failed to marshal header")
	}
	if len(headerJSON) > MaxHeaderSize {
		return errors.Wrapf(ErrHeaderTooLarge, "%d bytes", len(headerJSON))
	}

	// Assemble the fixed header in memory so the file is written in one call.
	var buf bytes.Buffer
	buf.Grow(FixedHeaderSize + len(headerJSON))
	buf.WriteString(MagicBytes)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(FormatVersion))
	_ = binary.Write(&buf, binary.LittleEndian, h.flags())
	_ = binary.Write(&buf, binary.LittleEndian, uint64(len(headerJSON)))
	checksum := ComputeChecksum(headerJSON)
	buf.Write(checksum[:])
	buf.Write(headerJSON)

	if _, err := w.w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "failed to write checkpoint")
	}
	return nil
}

// Close closes the underlying file, if the writer owns one.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// Save writes h to a new file at path.
func Save(path string, h Header) (err error) {
	w, err := NewFileWriter(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close file")
		}
	}()
	return w.WriteHeader(h)
}
