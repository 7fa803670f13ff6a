package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., jsonstore) inside this directory.

import "errors"

// ErrMalformedPartition is returned when a stored partition cannot be decoded.
// The whole read fails; valid records are never recovered from a corrupt partition.
var ErrMalformedPartition = errors.New("malformed blog partition")
