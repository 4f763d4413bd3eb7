package rjvm

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
)

// ErrShortRead is returned when the peer closes the connection before all
// expected bytes have arrived.
var ErrShortRead = errors.New("rjvm: connection closed before expected data")

// shortRead converts an end-of-stream error from a framed read into
// ErrShortRead.
func shortRead(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrShortRead
	}
	return err
}

// Server accepts a single connection, executes the streamed program and
// replies with the final variables.
type Server struct {
	Port string

	// Trace receives the bytecode trace and the variables dump.
	Trace io.Writer
}

// ListenAndServe binds the configured port, serves exactly one session
// and returns.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", net.JoinHostPort("", s.Port))
	if err != nil {
		return err
	}
	defer ln.Close()
	return s.Serve(ln)
}

// Serve accepts a single connection on ln, runs the session on it and
// returns. An error from the executed program is reported only after the
// dump has been printed and the reply sent.
func (s *Server) Serve(ln net.Listener) error {
	conn, err := ln.Accept()
	if err != nil {
		return err
	}
	defer conn.Close()
	return s.serve(conn)
}

// serve runs one session on an established connection.
func (s *Server) serve(conn net.Conn) error {
	r := bufio.NewReader(conn)

	var nvars int32
	if err := binary.Read(r, binary.BigEndian, &nvars); err != nil {
		return shortRead(err)
	}

	m, err := NewMachine(nvars, s.Trace)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.Trace, "Bytecode trace")
	execErr := m.Run(r)
	if execErr != nil {
		// Let the client finish writing the program so that it can
		// still read the reply.
		io.Copy(io.Discard, r)
	}
	fmt.Fprintln(s.Trace)

	fmt.Fprintln(s.Trace, "Variables dump")
	if err := m.Vars().Dump(s.Trace); err != nil {
		return err
	}

	if err := writeVars(conn, m.Vars()); err != nil {
		return err
	}
	return execErr
}

// writeVars sends every variable as a big-endian int32, in index order.
func writeVars(w io.Writer, a *VarArray) error {
	for _, v := range a.v {
		if err := binary.Write(w, binary.BigEndian, v); err != nil {
			return err
		}
	}
	return nil
}
