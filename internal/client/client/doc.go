// Package client talks to the VoiceArchive server.
//
// The Client interface is the transport-agnostic contract used by the CLI
// services. GRPCClient implements it over the generated Archive gRPC
// client: it injects the access token into every call, refreshes an
// expired token once and retries, and maps gRPC status codes to the
// sentinel errors in this package.
//
// Uploader pushes a batch of recordings: every local audio file goes to
// object storage through a presigned PUT first, then the batch is sent in a
// single PushRecordings call.
package client
