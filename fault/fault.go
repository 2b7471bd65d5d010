// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type VerificationError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ProcessError("already initialised")
	ErrBitmapOutOfRange          = RecordError("multisig bitmap bit beyond member count")
	ErrDuplicateMember           = InvalidError("multisig member already present")
	ErrDuplicateSignature        = InvalidError("multisig member already signed")
	ErrEmptyArguments            = InvalidError("command requires at least one argument")
	ErrForwardReference          = InvalidError("result refers to a command not yet added")
	ErrInputOutOfRange           = InvalidError("input index beyond input count")
	ErrInvalidAddress            = InvalidError("invalid address")
	ErrInvalidDerivationPath     = InvalidError("invalid derivation path")
	ErrInvalidDigestLength       = LengthError("digest length is invalid")
	ErrInvalidDirectory          = InvalidError("invalid directory")
	ErrInvalidDiscriminant       = RecordError("invalid discriminant")
	ErrInvalidKeyLength          = LengthError("key length is invalid")
	ErrInvalidLoggerChannel      = ProcessError("invalid logger channel")
	ErrInvalidMnemonic           = InvalidError("invalid mnemonic")
	ErrInvalidPrivateKey         = InvalidError("invalid private key")
	ErrInvalidSignatureLength    = LengthError("signature length is invalid")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidThreshold          = InvalidError("invalid threshold")
	ErrInvalidWeight             = InvalidError("invalid weight")
	ErrMalformedMoveCallTarget   = InvalidError("move call target is malformed")
	ErrMalformedTypeTag          = InvalidError("type tag is malformed")
	ErrMemberKeyMismatch         = InvalidError("signature key does not match member key")
	ErrMissingConfigurationTable = InvalidError("configuration must return a table")
	ErrMissingSender             = InvalidError("transaction sender is not set")
	ErrNonCanonicalEncoding      = RecordError("non-canonical encoding")
	ErrNotInitialised            = ProcessError("not initialised")
	ErrNotPlainFileName          = InvalidError("file name must not contain a path")
	ErrNotStructTag              = InvalidError("type tag is not a struct")
	ErrObjectMismatch            = RecordError("resolved object does not match requested id")
	ErrObjectNotFound            = NotFoundError("object not found")
	ErrPrivateKeyPrefix          = InvalidError("private key prefix is not suiprivkey")
	ErrSignatureCountMismatch    = RecordError("multisig signature count does not match bitmap")
	ErrSignatureMismatch         = VerificationError("signature does not match")
	ErrThresholdNotMet           = VerificationError("multisig threshold not met")
	ErrTooFewMembers             = LengthError("too few multisig members")
	ErrTooManyItems              = LengthError("too many items")
	ErrTooManyMembers            = LengthError("too many multisig members")
	ErrTrailingBytes             = RecordError("trailing bytes after value")
	ErrTruncatedInput            = LengthError("truncated input")
	ErrUnresolvedInput           = InvalidError("input is not resolved")
	ErrUnsupportedScheme         = InvalidError("unsupported signature scheme")
	ErrValueOutOfRange           = InvalidError("value out of range")
	ErrVarintOverflow            = RecordError("varint overflow")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string      { return string(e) }
func (e LengthError) Error() string       { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e RecordError) Error() string       { return string(e) }
func (e VerificationError) Error() string { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool       { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool       { _, ok := e.(RecordError); return ok }
func IsErrVerification(e error) bool { _, ok := e.(VerificationError); return ok }

// IsErrStructural - true for any failure caused by malformed input
// rather than by a signature that did not match
func IsErrStructural(e error) bool {
	return nil != e && !IsErrVerification(e)
}
