/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package status

import (
	"strconv"
)

// Code represents a status code
type Code uint32

const (
	// OK is returned on success.
	OK Code = 0

	// Unknown represents status codes that are uncategorized or unknown to the SDK
	Unknown Code = 1

	// ConfigurationError is returned when a channel cannot be created from the
	// client configuration, e.g. the name fails the configured name checker
	ConfigurationError Code = 2

	// DuplicateEntry is returned when a name or id is already registered and
	// replacement was not requested
	DuplicateEntry Code = 3

	// NotFound is returned when a named target is not registered on the channel
	NotFound Code = 4

	// InvalidEndpoint is returned when an endpoint has no name, carries the wrong
	// capability or is not connected
	InvalidEndpoint Code = 5

	// TypeMismatch is returned when a target endpoint has a capability other
	// than the one requested
	TypeMismatch Code = 6

	// TargetsInvalid is returned when the targets handed to resolution are malformed
	TargetsInvalid Code = 7

	// InvalidArgument is returned when a required argument is missing or empty
	InvalidArgument Code = 8
)

// CodeName maps the codes in this packages to human-readable strings
var CodeName = map[int32]string{
	0: "OK",
	1: "UNKNOWN",
	2: "CONFIGURATION_ERROR",
	3: "DUPLICATE_ENTRY",
	4: "NOT_FOUND",
	5: "INVALID_ENDPOINT",
	6: "TYPE_MISMATCH",
	7: "TARGETS_INVALID",
	8: "INVALID_ARGUMENT",
}

// ToInt32 cast to int32
func (c Code) ToInt32() int32 {
	return int32(c)
}

// String representation of the code
func (c Code) String() string {
	if s, ok := CodeName[c.ToInt32()]; ok {
		return s
	}
	return strconv.Itoa(int(c))
}

// ToChannelStatusCode casts a raw code to a channel status code
func ToChannelStatusCode(c int32) Code {
	return Code(c)
}
