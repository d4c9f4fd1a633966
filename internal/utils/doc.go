// Package utils provides general-purpose helpers shared by the adapters and
// services: the resty HTTP client wrapper, bearer-token and JWT claim
// parsing, and item identifier generation.
package utils
