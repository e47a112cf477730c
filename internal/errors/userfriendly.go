package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/tturner/binwriter/internal/gen"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

type generationHint struct {
	target error
	reason string
	hint   string
	try    string
}

// Ordered so that specific causes win over the wrappers that carry them.
var generationHints = []generationHint{
	{gen.ErrModeConflict, "More than one content mode was selected", "Choose exactly one of --fill, --random, --pattern, --hex, --integers", "binwriter generate -f out.bin -s 1024 --fill 00"},
	{gen.ErrModeMissing, "No content mode was selected", "Choose exactly one of --fill, --random, --pattern, --hex, --integers", "binwriter generate -f out.bin -s 1024 --random"},
	{gen.ErrMissingSize, "Fill, random and pattern output need an explicit size", "Pass --size in bytes", "binwriter generate -f out.bin -s 4096 --fill FF"},
	{gen.ErrNegativeSize, "The requested size is negative", "Size must be zero or more bytes", ""},
	{gen.ErrSizeLimit, "The output would exceed the configured size cap", "Raise max_size in the config file or pass --max-size (0 disables the cap)", ""},
	{gen.ErrInvalidFillByte, "The fill value is not a single hex byte", "Use one or two hex digits such as 00, FF or 0x7f", ""},
	{gen.ErrEmptyPattern, "The pattern contains no bytes", "Give at least one byte of hex, for example --pattern DEADBEEF", ""},
	{gen.ErrOddLength, "Hex text has an odd number of digits", "Every byte needs two hex digits; whitespace is ignored", ""},
	{gen.ErrInvalidDigit, "Hex text contains a character outside 0-9, a-f, A-F", "Remove prefixes such as 0x and separators other than whitespace", ""},
	{gen.ErrMissingIntegers, "The integer list is empty", "Separate values with commas or spaces, for example --integers 1,2,3", ""},
	{gen.ErrInvalidInteger, "An integer could not be parsed", "Use decimal or 0x-prefixed values within the signed 64-bit range", ""},
	{gen.ErrIntegerOutOfRange, "An integer does not fit the requested width", "Values must be non-negative and below 2^(8*width); widen with --width", ""},
	{gen.ErrInvalidIntegerWidth, "Integer width is outside 1-8 bytes", "Pass --width between 1 and 8", ""},
	{gen.ErrInvalidEndianness, "Unknown byte order", "Pass --endianness little or --endianness big", ""},
}

// WrapGenerationError wraps validation and generation errors with user-friendly context
func WrapGenerationError(err error) error {
	if err == nil {
		return nil
	}

	message := "Invalid content specification"
	var genErr *gen.GenerationError
	if stderrors.As(err, &genErr) {
		message = fmt.Sprintf("Content generation failed (%s mode)", genErr.Mode)
	}

	for _, h := range generationHints {
		if stderrors.Is(err, h.target) {
			return UserFriendlyError{
				Message: message,
				Reason:  h.reason,
				Hint:    h.hint,
				Try:     h.try,
				Err:     err,
			}
		}
	}
	return UserFriendlyError{
		Message: message,
		Reason:  "Content could not be produced",
		Err:     err,
	}
}

// WrapOutputError wraps output sink errors with user-friendly context
func WrapOutputError(err error, path string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to write output to %s", path),
		Reason:  extractOutputReason(err),
		Hint:    "No partial file was left behind; the target is only replaced after a complete write",
		Try:     "Write to stdout instead: binwriter generate -f - ...",
		Err:     err,
	}
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "Run 'binwriter profiles --init' to write a default config with example profiles",
		Try:     fmt.Sprintf("binwriter profiles --config %s", configPath),
		Err:     err,
	}
}

func extractOutputReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "permission denied") {
		return "Permission denied - check write access to the target directory"
	}
	if strings.Contains(errStr, "no such file or directory") {
		return "The target directory does not exist"
	}
	if strings.Contains(errStr, "no space left on device") {
		return "The device is full"
	}
	if strings.Contains(errStr, "is a directory") {
		return "The target path is a directory"
	}

	return "Output could not be written"
}
