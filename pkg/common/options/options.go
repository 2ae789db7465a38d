/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package options holds the functional option plumbing shared by packages
// whose parameters are set through setter interfaces.
package options

// Params represents a construct that holds
// a set of parameters. An option only applies to the Params
// that implement its setter interface.
type Params interface{}

// Opt is an option that is applied to Params
type Opt func(opts Params)

// Apply applies the given options to the given Params, in order
func Apply(params Params, opts []Opt) {
	for _, opt := range opts {
		if opt != nil {
			opt(params)
		}
	}
}
