// Package client talks to the RainyDay backend.
//
// GRPCClient owns the connection, attaches the access token to every call,
// refreshes an expired token once and retries, and maps gRPC status codes
// onto sentinel errors:
//
//	InvalidArgument        -> ErrInvalidArgument (wrapping *raincheck.ValidationError when the server sent field details)
//	NotFound               -> common.ErrorNotFound
//	AlreadyExists          -> common.ErrorAlreadyExists
//	Aborted                -> common.ErrVersionConflict
//	Unauthenticated        -> ErrUnauthorized
//	Unavailable, Deadline  -> ErrUnavailable
//
// InitDatabase and RunMigrations prepare the local SQLite file that keeps
// the saved session between runs.
package client
