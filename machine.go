package rjvm

import (
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	// ErrDivideByZero is returned by idiv and irem with a zero divisor.
	ErrDivideByZero = errors.New("rjvm: division by zero")

	// ErrDivOverflow is returned by idiv and irem dividing the most
	// negative 32-bit integer by -1.
	ErrDivOverflow = errors.New("rjvm: integer division overflow")
)

// chunkSize is how many program bytes the endpoints move per socket
// operation.
const chunkSize = 100

// Machine executes a stream of instructions against one operand stack and
// one variable array. Every successfully executed instruction writes its
// mnemonic as a line to the trace writer.
type Machine struct {
	stack Stack
	vars  *VarArray
	trace io.Writer

	// pending holds an opcode byte whose argument byte has not arrived
	// yet, when an instruction straddles a chunk boundary.
	pending []byte
}

// NewMachine returns a Machine with nvars zeroed variables, tracing to
// trace.
func NewMachine(nvars int32, trace io.Writer) (*Machine, error) {
	vars, err := NewVarArray(nvars)
	if err != nil {
		return nil, err
	}
	return &Machine{vars: vars, trace: trace}, nil
}

// Vars returns the machine's variable array.
func (m *Machine) Vars() *VarArray {
	return m.vars
}

// Feed decodes and executes the instructions in chunk. Instructions may
// straddle chunk boundaries; the trailing opcode of a split instruction
// is carried over to the next call. Execution stops at the first failing
// instruction and its error is returned.
func (m *Machine) Feed(chunk []byte) error {
	buf := chunk
	if len(m.pending) > 0 {
		buf = append(m.pending, chunk...)
		m.pending = nil
	}
	pos := 0
	for pos < len(buf) {
		in, n := decodeOne(buf, pos)
		if n == 0 {
			// The argument byte is in the next chunk.
			m.pending = append([]byte(nil), buf[pos:]...)
			return nil
		}
		pos += n
		if in.info == nil {
			continue // not an opcode
		}
		if err := m.exec(in); err != nil {
			return err
		}
		fmt.Fprintf(m.trace, "%s\n", in.info.name)
	}
	return nil
}

// Run feeds r to the machine in chunks until EOF. A final instruction cut
// short by the end of input is discarded as a malformed tail.
func (m *Machine) Run(r io.Reader) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if ferr := m.Feed(buf[:n]); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			m.pending = nil
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// exec applies one decoded instruction to the stack and variables.
func (m *Machine) exec(in instr) error {
	switch in.code {
	case opBipush:
		m.stack.Push(int32(int8(in.arg)))
	case opIload:
		v, err := m.vars.Get(in.arg)
		if err != nil {
			return err
		}
		m.stack.Push(v)
	case opIstore:
		v, err := m.stack.Pop()
		if err != nil {
			return err
		}
		return m.vars.Set(in.arg, v)
	case opDup:
		v, err := m.stack.Top()
		if err != nil {
			return err
		}
		m.stack.Push(v)
	case opIneg:
		v, err := m.stack.Pop()
		if err != nil {
			return err
		}
		m.stack.Push(-v)
	default:
		top, err := m.stack.Pop()
		if err != nil {
			return err
		}
		lower, err := m.stack.Pop()
		if err != nil {
			return err
		}
		v, err := binaryOp(in.code, lower, top)
		if err != nil {
			return err
		}
		m.stack.Push(v)
	}
	return nil
}

// binaryOp computes lower OP top with two's-complement wraparound. The
// operand order matters for the non-commutative operations.
func binaryOp(code byte, lower, top int32) (int32, error) {
	switch code {
	case opIadd:
		return lower + top, nil
	case opIsub:
		return lower - top, nil
	case opImul:
		return lower * top, nil
	case opIdiv, opIrem:
		if top == 0 {
			return 0, ErrDivideByZero
		}
		if lower == math.MinInt32 && top == -1 {
			return 0, ErrDivOverflow
		}
		if code == opIdiv {
			return lower / top, nil
		}
		return lower % top, nil
	case opIand:
		return lower & top, nil
	case opIor:
		return lower | top, nil
	case opIxor:
		return lower ^ top, nil
	}
	panic("rjvm: not a binary opcode")
}
