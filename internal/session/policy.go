package session

import (
	"fmt"
	"path/filepath"
	"strings"

	app_errors "legalbot/internal/errors"
)

// Policy is the client-side admission policy for attachment candidates.
// Candidates failing the policy never reach the network.
type Policy struct {
	// AllowedExtensions are lowercase extensions without the dot.
	AllowedExtensions []string
	// MaxBytes is the size cap for a candidate.
	MaxBytes int64
}

// DefaultPolicy admits PDF files up to 1 MiB, matching the server's own
// upload limit.
func DefaultPolicy() Policy {
	return Policy{
		AllowedExtensions: []string{"pdf"},
		MaxBytes:          1 << 20,
	}
}

// FileCandidate describes a file the user picked, before validation.
type FileCandidate struct {
	Name      string
	Path      string
	Size      int64
	MediaType string
}

// Check validates a candidate against the policy. On rejection it returns
// the user-facing message alongside the sentinel-wrapped error; on success
// both are zero.
func (p Policy) Check(c FileCandidate) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(c.Name), "."))
	if !p.allowsExtension(ext) {
		return p.unsupportedMessage(), fmt.Errorf("%w: .%s", app_errors.ErrUnsupportedFormat, ext)
	}
	if c.Size > p.MaxBytes {
		return p.tooLargeMessage(c.Size), fmt.Errorf("%w: %d bytes", app_errors.ErrFileTooLarge, c.Size)
	}
	return "", nil
}

func (p Policy) allowsExtension(ext string) bool {
	for _, allowed := range p.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (p Policy) unsupportedMessage() string {
	name := p.formatName()
	return fmt.Sprintf("Only %s files are supported. Please upload a %s file.", name, name)
}

// tooLargeMessage renders the candidate size in MB with two decimals, so the
// user sees how far over the limit the file is.
func (p Policy) tooLargeMessage(size int64) string {
	limitMB := p.MaxBytes / (1 << 20)
	sizeMB := float64(size) / (1 << 20)
	return fmt.Sprintf("File size exceeds maximum allowed size of %dMB. Your file is %.2fMB", limitMB, sizeMB)
}

func (p Policy) formatName() string {
	parts := make([]string, len(p.AllowedExtensions))
	for i, ext := range p.AllowedExtensions {
		parts[i] = strings.ToUpper(ext)
	}
	return strings.Join(parts, " or ")
}
