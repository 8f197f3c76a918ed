// File: random.go
// Title: Random String Generation Utilities
// Description: Implements random string generation for identifiers and
//              tokens. Character-set draws use crypto/rand; UUID-shaped
//              identifiers come from the google/uuid generator.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation with secure random generation

package stringx

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	"github.com/icapri/utilities-sub001/core/errors"
)

// Character sets for random string generation
const (
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersLowercase + LettersUppercase
	Digits           = "0123456789"
	Alphanumeric     = Letters + Digits

	// Safe characters for URLs and filenames
	URLSafe = Alphanumeric + "-_"

	// Excludes visually ambiguous characters like 0, O, l, 1
	HumanReadable = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// RandomString generates a cryptographically secure random string of the
// given length drawn from charset. An empty charset defaults to
// Alphanumeric; a non-positive length yields the empty string.
func RandomString(length int, charset string) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if charset == "" {
		charset = Alphanumeric
	}

	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(charset)))

	for i := 0; i < length; i++ {
		index, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", errors.OperationFailed(errors.ModuleStringx, "random_string", err)
		}
		result[i] = charset[index.Int64()]
	}

	return string(result), nil
}

// RandomAlphanumeric generates a random alphanumeric string of the given length
func RandomAlphanumeric(length int) (string, error) {
	return RandomString(length, Alphanumeric)
}

// RandomHex generates a random hexadecimal string of the given length
func RandomHex(length int) (string, error) {
	return RandomString(length, "0123456789abcdef")
}

// RandomURLSafe generates a random URL- and filename-safe string of the
// given length
func RandomURLSafe(length int) (string, error) {
	return RandomString(length, URLSafe)
}

// RandomUUID generates a random version 4 UUID string
func RandomUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.OperationFailed(errors.ModuleStringx, "random_uuid", err)
	}
	return id.String(), nil
}
