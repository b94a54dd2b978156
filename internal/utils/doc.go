// Package utils provides general-purpose helper utilities
// used across different parts of the application:
// JSON response writing, response hashing for entity tags,
// trace id generation, and the resty-based HTTP client.
package utils
