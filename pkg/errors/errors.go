// Package errors defines the error taxonomy shared by the codecs, the account mapper
// and the dispatch helpers.
//
// Every failure carries a stable code so callers can match with errors.Is against the
// sentinels below regardless of which concrete error type produced it.
package errors

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Error codes.
const (
	ErrCodeMalformedInput       = "MALFORMED_INPUT"
	ErrCodeUnknownDiscriminator = "UNKNOWN_DISCRIMINATOR"
	ErrCodeUnknownVariant       = "UNKNOWN_VARIANT"
	ErrCodeAccountKeyMismatch   = "ACCOUNT_KEY_MISMATCH"
	ErrCodeAccountCountMismatch = "ACCOUNT_COUNT_MISMATCH"
	ErrCodePrivilegeViolation   = "PRIVILEGE_VIOLATION"
	ErrCodeUnknownProgram       = "UNKNOWN_PROGRAM"
	ErrCodeInvalidSchema        = "INVALID_SCHEMA"
	ErrCodeInvalidTable         = "INVALID_TABLE"
	ErrCodeDispatchFailed       = "DISPATCH_FAILED"
	ErrCodeCustom               = "CUSTOM"
)

// Error is the base error type. Two errors match under errors.Is when their codes
// are equal.
type Error struct {
	// Code is a unique error code for this error type.
	Code string

	// Message is a human-readable error message.
	Message string

	// Cause is the underlying error, if any.
	Cause error

	// Details contains additional error context.
	Details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the error matches the target.
func (e *Error) Is(target error) bool {
	return codeOf(target) == e.Code
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetails adds details to the error.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// NewError creates a new Error.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Sentinels for errors.Is matching.
var (
	ErrMalformedInput       = NewError(ErrCodeMalformedInput, "malformed input")
	ErrUnknownDiscriminator = NewError(ErrCodeUnknownDiscriminator, "unknown discriminator")
	ErrUnknownVariant       = NewError(ErrCodeUnknownVariant, "variant not registered")
	ErrAccountKeyMismatch   = NewError(ErrCodeAccountKeyMismatch, "account key mismatch")
	ErrAccountCountMismatch = NewError(ErrCodeAccountCountMismatch, "account count mismatch")
	ErrPrivilegeViolation   = NewError(ErrCodePrivilegeViolation, "privilege violation")
	ErrUnknownProgram       = NewError(ErrCodeUnknownProgram, "unknown program")
	ErrInvalidSchema        = NewError(ErrCodeInvalidSchema, "invalid account schema")
	ErrInvalidTable         = NewError(ErrCodeInvalidTable, "invalid discriminator table")
	ErrDispatchFailed       = NewError(ErrCodeDispatchFailed, "dispatch failed")
)

// coded is implemented by every error type in this package.
type coded interface {
	ErrorCode() string
}

func codeOf(err error) string {
	if c, ok := err.(coded); ok {
		return c.ErrorCode()
	}
	return ""
}

// ErrorCode returns the error code.
func (e *Error) ErrorCode() string { return e.Code }

// MalformedInputError reports a buffer that is too short or structurally invalid for
// the declared discriminator width or payload type.
type MalformedInputError struct {
	// What names the thing being decoded, e.g. "damm instruction AddLiquidity".
	What string

	// Offset is the byte position at which decoding gave up. For account
	// lists it is the index of the offending entry.
	Offset int

	Cause error
}

func (e *MalformedInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s at offset %d: %v", ErrCodeMalformedInput, e.What, e.Offset, e.Cause)
	}
	return fmt.Sprintf("%s: %s at offset %d", ErrCodeMalformedInput, e.What, e.Offset)
}

func (e *MalformedInputError) Unwrap() error     { return e.Cause }
func (e *MalformedInputError) ErrorCode() string { return ErrCodeMalformedInput }
func (e *MalformedInputError) Is(target error) bool {
	return codeOf(target) == ErrCodeMalformedInput
}

// MalformedInput creates a MalformedInputError.
func MalformedInput(what string, offset int, cause error) *MalformedInputError {
	return &MalformedInputError{What: what, Offset: offset, Cause: cause}
}

// UnknownDiscriminatorError reports a discriminator that is absent from a program's
// table. Discriminator holds the raw bytes read from the buffer.
type UnknownDiscriminatorError struct {
	Program       string
	Discriminator []byte
}

func (e *UnknownDiscriminatorError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrCodeUnknownDiscriminator, e.Program, hex.EncodeToString(e.Discriminator))
}

func (e *UnknownDiscriminatorError) ErrorCode() string { return ErrCodeUnknownDiscriminator }
func (e *UnknownDiscriminatorError) Is(target error) bool {
	return codeOf(target) == ErrCodeUnknownDiscriminator
}

// UnknownDiscriminator creates an UnknownDiscriminatorError. The bytes are copied.
func UnknownDiscriminator(program string, disc []byte) *UnknownDiscriminatorError {
	return &UnknownDiscriminatorError{
		Program:       program,
		Discriminator: append([]byte(nil), disc...),
	}
}

// AccountKeyMismatchError reports a live account whose address differs from the one
// baked into a keys struct.
type AccountKeyMismatchError struct {
	Role     string
	Index    int
	Actual   solana.PublicKey
	Expected solana.PublicKey
}

func (e *AccountKeyMismatchError) Error() string {
	return fmt.Sprintf("%s: %s (#%d): actual %s, expected %s",
		ErrCodeAccountKeyMismatch, e.Role, e.Index, e.Actual, e.Expected)
}

func (e *AccountKeyMismatchError) ErrorCode() string { return ErrCodeAccountKeyMismatch }
func (e *AccountKeyMismatchError) Is(target error) bool {
	return codeOf(target) == ErrCodeAccountKeyMismatch
}

// AccountCountMismatchError reports an account list whose length differs from the
// declared role count.
type AccountCountMismatchError struct {
	RoleSet  string
	Actual   int
	Expected int
}

func (e *AccountCountMismatchError) Error() string {
	return fmt.Sprintf("%s: %s: got %d accounts, expected %d",
		ErrCodeAccountCountMismatch, e.RoleSet, e.Actual, e.Expected)
}

func (e *AccountCountMismatchError) ErrorCode() string { return ErrCodeAccountCountMismatch }
func (e *AccountCountMismatchError) Is(target error) bool {
	return codeOf(target) == ErrCodeAccountCountMismatch
}

// PrivilegeKind names the capability a live account was missing.
type PrivilegeKind int

const (
	// NotWritable means a role declared writable was passed read-only.
	NotWritable PrivilegeKind = iota + 1
	// NotSigner means a role declared signer was passed without a signature.
	NotSigner
)

func (k PrivilegeKind) String() string {
	switch k {
	case NotWritable:
		return "NotWritable"
	case NotSigner:
		return "NotSigner"
	default:
		return "Unknown"
	}
}

// ProgramError returns the runtime instruction error key a program would raise for
// this violation.
func (k PrivilegeKind) ProgramError() string {
	switch k {
	case NotWritable:
		return "InvalidAccountData"
	case NotSigner:
		return "MissingRequiredSignature"
	default:
		return "GenericError"
	}
}

// PrivilegeViolationError reports a live account lacking a statically required
// capability.
type PrivilegeViolationError struct {
	Role    string
	Index   int
	Account solana.PublicKey
	Kind    PrivilegeKind
}

func (e *PrivilegeViolationError) Error() string {
	return fmt.Sprintf("%s: %s (#%d, %s): %s (%s)",
		ErrCodePrivilegeViolation, e.Role, e.Index, e.Account, e.Kind, e.Kind.ProgramError())
}

func (e *PrivilegeViolationError) ErrorCode() string { return ErrCodePrivilegeViolation }
func (e *PrivilegeViolationError) Is(target error) bool {
	return codeOf(target) == ErrCodePrivilegeViolation
}

// UnknownProgram creates an error for a program id with no registered binding.
func UnknownProgram(programID solana.PublicKey) *Error {
	return NewError(ErrCodeUnknownProgram, fmt.Sprintf("no binding for program %s", programID)).
		WithDetails(map[string]any{"program_id": programID.String()})
}

// UnknownVariant creates an error for a value whose type is not a case of the envelope.
func UnknownVariant(program, typeName string) *Error {
	return NewError(ErrCodeUnknownVariant, fmt.Sprintf("%s: %s is not a registered case", program, typeName))
}

// InvalidSchema creates an error for a role-set type that cannot be mapped.
func InvalidSchema(typeName, reason string) *Error {
	return NewError(ErrCodeInvalidSchema, fmt.Sprintf("%s: %s", typeName, reason))
}

// InvalidTable creates an error for a discriminator table that cannot be built.
func InvalidTable(program, reason string) *Error {
	return NewError(ErrCodeInvalidTable, fmt.Sprintf("%s: %s", program, reason))
}

// DispatchFailed wraps an error returned by the host invocation primitive.
func DispatchFailed(instruction string, cause error) *Error {
	return NewError(ErrCodeDispatchFailed, fmt.Sprintf("failed to dispatch %s", instruction)).WithCause(cause)
}

// Custom creates a custom error with the given message.
func Custom(message string) *Error {
	return NewError(ErrCodeCustom, message)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
