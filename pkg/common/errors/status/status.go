/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package status defines metadata for errors returned by the channel context.
// This information may be used by callers to make decisions about how to
// handle certain error conditions.
package status

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status provides additional information about an unsuccessful operation.
// Essentially, this object contains metadata about an error.
type Status struct {
	// Group status group
	Group Group
	// Code status code
	Code int32
	// Message status message
	Message string
	// Details any additional status details
	Details []interface{}
}

// Group of status to help users infer status codes from various components
type Group int32

const (
	// UnknownStatus unknown status group
	UnknownStatus Group = iota

	// ClientStatus is a generic client status
	ClientStatus

	// ChannelStatus is returned by the channel registries, target resolution
	// and channel header construction
	ChannelStatus
)

// GroupName maps the groups in this packages to human-readable strings
var GroupName = map[int32]string{
	0: "Unknown",
	1: "Client Status",
	2: "Channel Status",
}

func (g Group) String() string {
	if s, ok := GroupName[int32(g)]; ok {
		return s
	}
	return UnknownStatus.String()
}

// FromError returns a Status representing err if available,
// otherwise it returns nil, false.
func FromError(err error) (s *Status, ok bool) {
	if err == nil {
		return &Status{Code: int32(OK)}, true
	}
	if s, ok := err.(*Status); ok {
		return s, true
	}
	unwrappedErr := errors.Cause(err)
	if s, ok := unwrappedErr.(*Status); ok {
		return s, true
	}

	return nil, false
}

// CodeOf returns the status code carried by err, OK for a nil error and
// Unknown for errors that carry no status.
func CodeOf(err error) Code {
	s, ok := FromError(err)
	if !ok {
		return Unknown
	}
	return ToChannelStatusCode(s.Code)
}

// Is reports whether err carries the given channel status code.
func Is(err error, code Code) bool {
	s, ok := FromError(err)
	if !ok || err == nil {
		return false
	}
	return s.Group == ChannelStatus && ToChannelStatusCode(s.Code) == code
}

func (s *Status) Error() string {
	return fmt.Sprintf("%s Code: (%d) %s. Description: %s", s.Group.String(), s.Code, s.codeString(), s.Message)
}

func (s *Status) codeString() string {
	switch s.Group {
	case ClientStatus, ChannelStatus:
		return ToChannelStatusCode(s.Code).String()
	default:
		return Unknown.String()
	}
}

// New returns a Status with the given parameters
func New(group Group, code int32, msg string, details []interface{}) *Status {
	return &Status{Group: group, Code: code, Message: msg, Details: details}
}

// Errorf returns a channel Status with the given code and a formatted message
func Errorf(code Code, format string, args ...interface{}) *Status {
	return New(ChannelStatus, code.ToInt32(), fmt.Sprintf(format, args...), nil)
}
