// Package codec implements the text encoders and digests exposed as tools:
// standard and URL-safe Base64, URI component escaping, and hash digests.
//
// All functions are pure and safe for concurrent use.
package codec
