package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/protowire/wire"
)

func main() {
	var (
		inFile  = flag.String("in", "", "Path to serialized message file")
		hexStr  = flag.String("hex", "", "Inline hex-encoded message (spaces ignored)")
		deep    = flag.Bool("deep", false, "Try to parse length-delimited fields as sub-messages")
		verbose = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *inFile == "" && *hexStr == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -in <file> [-deep]")
		fmt.Fprintln(os.Stderr, "       inspect -hex '08 96 01' [-deep]")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		wire.SetLogger(logger)
	}

	data, err := load(*inFile, *hexStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := inspect(os.Stdout, data, 0, *deep); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func load(inFile, hexStr string) ([]byte, error) {
	if inFile != "" {
		data, err := os.ReadFile(inFile)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return data, nil
	}
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' {
			return -1
		}
		return r
	}, hexStr)
	data, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return data, nil
}

// inspect walks the top-level fields of data and prints one line per
// field. With deep enabled, length-delimited payloads that parse cleanly
// as messages are rendered as nested fields instead of raw bytes.
func inspect(out io.Writer, data []byte, depth int, deep bool) error {
	indent := strings.Repeat("  ", depth)
	r := wire.NewReader(data)
	for r.Len() > 0 {
		off := r.Pos()
		id, wt, err := r.Tag()
		if err != nil {
			return err
		}
		switch wt {
		case wire.WireVarint:
			v, err := r.Uint64()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s%04d  field %d  varint  %d\n", indent, off, id, v)
		case wire.WireFixed64:
			v, err := r.Fixed64()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s%04d  field %d  fixed64  0x%016X\n", indent, off, id, v)
		case wire.WireBytes:
			b, err := r.Bytes()
			if err != nil {
				return err
			}
			if deep && len(b) > 0 && isMessage(b) {
				fmt.Fprintf(out, "%s%04d  field %d  message  %d bytes\n", indent, off, id, len(b))
				if err := inspect(out, b, depth+1, deep); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "%s%04d  field %d  bytes  %s\n", indent, off, id, preview(b))
			}
		case wire.WireFixed32:
			v, err := r.Fixed32()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s%04d  field %d  fixed32  0x%08X\n", indent, off, id, v)
		default:
			return fmt.Errorf("field %d: unsupported wire type %d at offset %d", id, wt, off)
		}
	}
	return nil
}

// isMessage reports whether b parses fully as a sequence of fields.
func isMessage(b []byte) bool {
	r := wire.NewReader(b)
	for r.Len() > 0 {
		id, wt, err := r.Tag()
		if err != nil || id == 0 {
			return false
		}
		if err := r.Skip(wt); err != nil {
			return false
		}
	}
	return true
}

// preview renders a byte payload: quoted when printable, hex otherwise.
func preview(b []byte) string {
	const max = 48
	truncated := false
	if len(b) > max {
		b = b[:max]
		truncated = true
	}
	s := string(b)
	printable := true
	for _, r := range s {
		if r < 0x20 || r == 0xFFFD {
			printable = false
			break
		}
	}
	var rendered string
	if printable && len(b) > 0 {
		rendered = strconv.Quote(s)
	} else {
		rendered = hex.EncodeToString(b)
	}
	if truncated {
		rendered += "..."
	}
	return rendered
}
