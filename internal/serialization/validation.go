package serialization

import (
	"fmt"

	"github.com/born-ml/nlcg/internal/vector"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize    = 1024 * 1024 // 1MB - a strategy header is a few hundred bytes
	MaxMetadataCount = 1024        // Maximum number of metadata entries
	MaxMetadataLen   = 4096        // Maximum metadata key or value length
)

// ValidationLevel controls the strictness of validation.
type ValidationLevel int

const (
	// ValidationStrict performs all validation checks (default, recommended for production).
	ValidationStrict ValidationLevel = iota
	// ValidationNormal checks only what is needed to restore the strategy.
	ValidationNormal
	// ValidationNone skips validation (dangerous! Use only with trusted input).
	ValidationNone
)

// ValidateHeader checks a header at the given level.
func ValidateHeader(h *Header, level ValidationLevel) error {
	if level == ValidationNone {
		return nil
	}

	if !h.Strategy.Valid() {
		return &ValidationError{
			Type:    "unknown_strategy",
			Field:   "strategy",
			Details: fmt.Sprintf("kind %d is not a supported strategy", int(h.Strategy)),
		}
	}
	if _, ok := vector.ParseDataType(h.DType); !ok {
		return &ValidationError{
			Type:    "unknown_dtype",
			Field:   "dtype",
			Details: fmt.Sprintf("%q is not float32 or float64", h.DType),
		}
	}

	if level == ValidationNormal {
		return nil
	}

	if h.FormatVersion != FormatVersion {
		return &ValidationError{
			Type:    "version_mismatch",
			Field:   "format_version",
			Details: fmt.Sprintf("header says %d, expected %d", h.FormatVersion, FormatVersion),
		}
	}
	return ValidateMetadata(h.Metadata)
}

// ValidateMetadata checks metadata entry count and key/value sizes.
func ValidateMetadata(metadata map[string]string) error {
	if len(metadata) > MaxMetadataCount {
		return &ValidationError{
			Type:    "too_much_metadata",
			Field:   "metadata",
			Details: fmt.Sprintf("got %d entries, max %d", len(metadata), MaxMetadataCount),
		}
	}
	for k, v := range metadata {
		if k == "" {
			return &ValidationError{
				Type:    "invalid_metadata_key",
				Field:   "metadata",
				Details: "empty key",
			}
		}
		if len(k) > MaxMetadataLen || len(v) > MaxMetadataLen {
			return &ValidationError{
				Type:    "metadata_too_long",
				Field:   "metadata",
				Details: fmt.Sprintf("entry %.32q exceeds %d bytes", k, MaxMetadataLen),
			}
		}
	}
	return nil
}
