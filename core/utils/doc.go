// Package utils provides common utility functions for the blog API.
// It includes helpers for converting raw row values from the store into
// typed fields, and the shared timestamp layout used across all resources.
package utils
