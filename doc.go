/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package fabriccommon provides the client-side channel context shared by
// Hyperledger Fabric request senders.
//
// Packages for end developer usage
//
// pkg/fab/channel: The channel facade. It holds the MSPs, endorsers and
// committers of a channel, resolves request targets and builds channel headers.
//
// pkg/context: The client context a channel is created with. It supplies
// configuration, the TLS client certificate hash and the metrics provider.
//
// pkg/fab/comm: gRPC endorser and committer endpoints.
//
// Basic workflow
//
//  1) Load configuration with config.FromFile or config.FromRaw
//  2) Create a client context with context.NewClient
//  3) Create a channel with channel.New
//  4) Dial endpoints with comm.Dial and add them to the channel
//  5) Resolve targets and build headers from the channel collaborators
//  6) Close the channel
package fabriccommon
