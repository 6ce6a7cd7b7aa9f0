package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrDocGeneratorMissing is returned when the markdown generator is not
	// installed under lib/forge-chronicles
	ErrDocGeneratorMissing = errors.New("forge-chronicles not installed. Please run 'forge install 0xPolygon/forge-chronicles'")
)

// DuplicateContractError is returned when an address is already present in a
// network's deployment history.
type DuplicateContractError struct {
	Address string
}

func (e *DuplicateContractError) Error() string {
	return fmt.Sprintf("contract %s already found in deployment logs", e.Address)
}

// ArtifactNotFoundError is returned when no compiled artifact exists for a
// contract in the foundry out directory.
type ArtifactNotFoundError struct {
	Contract string
}

func (e *ArtifactNotFoundError) Error() string {
	return fmt.Sprintf("smart contract '%s' not found in foundry 'out' directory", e.Contract)
}

// UnsupportedTypeError is returned when a constructor argument has a type the
// serializer does not handle. Array and fixed-array parameters are a declared
// gap, not a silent fallback.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("found constructor argument of unsupported type %s, not implemented", e.Type)
}

// MalformedLogError is returned when an on-disk deployment log fails to parse.
type MalformedLogError struct {
	Path string
	Err  error
}

func (e *MalformedLogError) Error() string {
	return fmt.Sprintf("deployment log %s is not well-formatted: %v", e.Path, e.Err)
}

func (e *MalformedLogError) Unwrap() error {
	return e.Err
}
