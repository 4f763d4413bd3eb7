// Package rjvm is a two-party evaluator for a small stack-machine bytecode.
//
// A client streams a program over a single TCP connection to a server. The
// server executes the program against an operand stack of 32-bit signed
// integers and a fixed-length array of 32-bit variables, printing a trace
// line per executed instruction, and finally sends the variable array back.
// The client prints the returned variables.
//
// # Instruction set
//
// Every instruction is one opcode byte; bipush, iload and istore are
// followed by a single inline argument byte.
//
//	0x10 bipush <imm>   push the sign-extended immediate byte
//	0x15 iload <idx>    push variable idx
//	0x36 istore <idx>   pop into variable idx
//	0x59 dup            duplicate the top of the stack
//	0x60 iadd           pop two, push lower + top
//	0x64 isub           pop two, push lower - top
//	0x68 imul           pop two, push lower * top
//	0x6c idiv           pop two, push lower / top
//	0x70 irem           pop two, push lower % top
//	0x74 ineg           pop one, push its two's-complement negation
//	0x7e iand           pop two, push lower & top
//	0x80 ior            pop two, push lower | top
//	0x82 ixor           pop two, push lower ^ top
//
// Arithmetic is two's-complement with wraparound. Bytes that are not part
// of the instruction set are skipped without consuming an argument byte.
//
// # Wire protocol
//
// The client sends a 4-byte big-endian variable count followed by the raw
// program bytes, then half-closes its write side to mark the end of the
// program. The server replies with exactly count big-endian int32 values,
// the final contents of the variable array, and closes the connection.
//
// # Tools
//
// cmd/rjvm runs the server and client. cmd/rjvm-asm assembles the textual
// form accepted by Assemble into program bytes, and cmd/rjvm-dis renders
// program bytes back into that form.
package rjvm
