package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ImageKeyPrefix is the top-level object prefix for uploaded images.
const ImageKeyPrefix = "images"
