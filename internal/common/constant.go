// Package common contains shared constants and sentinel errors used across
// VoiceArchive components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// Keys of the durable local store.
const (
	KeyRecordings  = "recordings"
	KeySession     = "session"
	KeyCredentials = "credentials"
)
