package rjvm

import (
	"bufio"
	"bytes"
	"fmt"
	"hash/maphash"
	"io"
	"strconv"
	"strings"

	"github.com/aristanetworks/gomap"
)

// mnemonics maps mnemonic text to its opcode byte. Lookups are
// case-insensitive, so the table uses fold-insensitive equality and
// hashing instead of the builtin map.
var mnemonics = func() *gomap.Map[string, byte] {
	m := gomap.NewHint[string, byte](len(opTable), equalFold, hashFold)
	for code, info := range opTable {
		m.Set(info.name, code)
	}
	return m
}()

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

func hashFold(seed maphash.Seed, s string) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteString(strings.ToLower(s))
	return h.Sum64()
}

// SyntaxError is the error Assemble returns for a line it cannot parse.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("rjvm: line %d: %s", e.Line, e.Msg)
}

// Assemble translates an assembly listing into program bytes. The syntax
// is one instruction per line: a mnemonic, optionally followed by its
// argument, with ";" starting a comment. Mnemonics are matched
// case-insensitively; arguments accept the bases strconv.ParseInt does
// ("10", "0x0a"). A ".byte <v>" line emits a raw byte, which is how
// Disassemble output for bytes outside the instruction set round-trips.
func Assemble(r io.Reader) ([]byte, error) {
	var out bytes.Buffer
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 2 {
			return nil, &SyntaxError{lineno, "too many operands"}
		}
		mnem := fields[0]
		var arg string
		if len(fields) == 2 {
			arg = fields[1]
		}

		if equalFold(mnem, ".byte") {
			if arg == "" {
				return nil, &SyntaxError{lineno, ".byte needs a value"}
			}
			v, err := strconv.ParseUint(arg, 0, 8)
			if err != nil {
				return nil, &SyntaxError{lineno, "bad byte value " + strconv.Quote(arg)}
			}
			out.WriteByte(byte(v))
			continue
		}

		code, ok := mnemonics.Get(mnem)
		if !ok {
			return nil, &SyntaxError{lineno, "unknown mnemonic " + strconv.Quote(mnem)}
		}
		switch opTable[code].arg {
		case argNone:
			if arg != "" {
				return nil, &SyntaxError{lineno, mnem + " takes no operand"}
			}
			out.WriteByte(code)
		case argImm:
			if arg == "" {
				return nil, &SyntaxError{lineno, mnem + " needs an immediate operand"}
			}
			v, err := strconv.ParseInt(arg, 0, 8)
			if err != nil {
				return nil, &SyntaxError{lineno, "bad immediate " + strconv.Quote(arg)}
			}
			out.WriteByte(code)
			out.WriteByte(byte(v))
		case argIndex:
			if arg == "" {
				return nil, &SyntaxError{lineno, mnem + " needs a variable index"}
			}
			v, err := strconv.ParseUint(arg, 0, 8)
			if err != nil {
				return nil, &SyntaxError{lineno, "bad variable index " + strconv.Quote(arg)}
			}
			out.WriteByte(code)
			out.WriteByte(byte(v))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
