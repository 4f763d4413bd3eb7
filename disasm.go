package rjvm

import (
	"fmt"
	"strings"
)

// Disassemble renders program bytes as an assembly listing that Assemble
// turns back into the same bytes. Bytes outside the instruction set
// appear as ".byte" directives, as does a trailing opcode whose argument
// byte is missing.
func Disassemble(program []byte) string {
	var b strings.Builder
	pos := 0
	for pos < len(program) {
		in, n := decodeOne(program, pos)
		if n == 0 {
			fmt.Fprintf(&b, ".byte 0x%02x ; truncated %s\n",
				program[pos], opTable[program[pos]].name)
			break
		}
		pos += n
		switch {
		case in.info == nil:
			fmt.Fprintf(&b, ".byte 0x%02x\n", in.code)
		case in.info.arg == argImm:
			fmt.Fprintf(&b, "%s %d\n", in.info.name, int8(in.arg))
		case in.info.arg == argIndex:
			fmt.Fprintf(&b, "%s %d\n", in.info.name, in.arg)
		default:
			fmt.Fprintf(&b, "%s\n", in.info.name)
		}
	}
	return b.String()
}
