// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command jamconform is a minimal conformance-fuzz harness: it reads
// length-prefixed fuzzwire.Message frames from stdin and echoes each
// decoded message's re-encoding to stdout, framed the same way. All
// codec behavior lives in the fuzzwire/codec/types/statekey/pvm
// packages; this binary supplies only the outer transport-level length
// prefix, which the envelope itself deliberately omits.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/luxfi/jamcodec/codec"
	"github.com/luxfi/jamcodec/config"
	"github.com/luxfi/jamcodec/fuzzwire"
	"github.com/luxfi/log"
)

// maxFrameBytes bounds a single frame body: the fuzz-conformance transport
// carries untrusted input, so an attacker-controlled length prefix must
// never drive an allocation before the bytes behind it are known to exist.
const maxFrameBytes = 64 << 20

func main() {
	preset := flag.String("preset", "tiny", "parameter preset: tiny or production")
	flag.Parse()

	logger := log.NewLogger("jamconform")

	cfg, err := config.ByName(*preset)
	if err != nil {
		logger.Error("invalid preset", "preset", *preset, "error", err)
		os.Exit(1)
	}

	logger.Info("jamconform starting", "preset", *preset)
	if err := run(os.Stdin, os.Stdout, cfg); err != nil && err != io.EOF {
		logger.Error("jamconform failed", "error", err)
		os.Exit(1)
	}
	logger.Info("jamconform stopped")
}

// run reads frames until EOF, decoding and re-encoding each one in turn.
// A frame is a natural-encoded length prefix followed by that many bytes
// of fuzzwire.Message payload.
func run(r io.Reader, w io.Writer, cfg config.Params) error {
	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)
	defer writer.Flush()

	for {
		frame, err := readFrame(reader)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		msg, _, err := fuzzwire.DecodeMessage(frame, cfg)
		if err != nil {
			return err
		}

		out := fuzzwire.EncodeMessage(msg, cfg)
		if err := writeFrame(writer, out); err != nil {
			return err
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}
}

func readFrame(r *bufio.Reader) ([]byte, error) {
	lead, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if err := r.UnreadByte(); err != nil {
		return nil, err
	}
	prefixLen := natPrefixLen(lead)
	prefix := make([]byte, prefixLen)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return nil, err
	}
	n, _, err := codec.DecodeNat(prefix)
	if err != nil {
		return nil, err
	}
	if n > maxFrameBytes {
		return nil, fmt.Errorf("jamconform: frame length %d exceeds %d byte limit", n, maxFrameBytes)
	}
	body := make([]byte, n)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	return body, nil
}

// natPrefixLen returns how many bytes EncodeNat's leading byte implies in
// total, mirroring DecodeNat's own leading-bit count without consuming
// the stream ahead of time.
func natPrefixLen(lead byte) int {
	n := 0
	for i := 7; i >= 0; i-- {
		if lead&(1<<uint(i)) == 0 {
			break
		}
		n++
	}
	switch {
	case n == 0:
		return 1
	case n == 8:
		return 9
	default:
		return 1 + n
	}
}

func writeFrame(w io.Writer, payload []byte) error {
	if _, err := w.Write(codec.EncodeNat(uint64(len(payload)))); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}
