package rjvm

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidCount is returned when the variable count received on the
	// wire is negative.
	ErrInvalidCount = errors.New("rjvm: negative variable count")

	// ErrIndexOutOfRange is returned by iload and istore for an index at
	// or beyond the end of the variable array.
	ErrIndexOutOfRange = errors.New("rjvm: variable index out of range")
)

// VarArray is the fixed-length array of 32-bit signed variables attached
// to a session. Its length never changes after creation. Indices arrive
// on the wire as single bytes, so only the first 256 slots are
// addressable by instructions.
type VarArray struct {
	v []int32
}

// NewVarArray returns a VarArray of n variables, all zero.
func NewVarArray(n int32) (*VarArray, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}
	return &VarArray{v: make([]int32, n)}, nil
}

// Get returns variable i.
func (a *VarArray) Get(i byte) (int32, error) {
	if int(i) >= len(a.v) {
		return 0, ErrIndexOutOfRange
	}
	return a.v[i], nil
}

// Set overwrites variable i with v.
func (a *VarArray) Set(i byte, v int32) error {
	if int(i) >= len(a.v) {
		return ErrIndexOutOfRange
	}
	a.v[i] = v
	return nil
}

// Len returns the number of variables.
func (a *VarArray) Len() int32 {
	return int32(len(a.v))
}

// Dump writes each variable to w as an 8-digit zero-padded lowercase hex
// line, in index order.
func (a *VarArray) Dump(w io.Writer) error {
	for _, v := range a.v {
		if _, err := fmt.Fprintf(w, "%08x\n", uint32(v)); err != nil {
			return err
		}
	}
	return nil
}
