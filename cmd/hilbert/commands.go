package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/arloliu/hilbert/curve"
	"github.com/arloliu/hilbert/endian"
	"github.com/arloliu/hilbert/format"
	"github.com/arloliu/hilbert/snapshot"
	"github.com/arloliu/hilbert/trace"
)

type command struct {
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

// shape holds the curve flags shared by most subcommands.
type shape struct {
	dims    int
	bits    int
	workers int
}

func (c *command) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)

	return fs
}

func (s *shape) register(fs *flag.FlagSet) {
	fs.IntVar(&s.dims, "dims", 2, "number of dimensions")
	fs.IntVar(&s.bits, "bits", 3, "bits per axis (1-8)")
	fs.IntVar(&s.workers, "workers", 1, "goroutines per batch, 0 selects GOMAXPROCS")
}

func (s *shape) codec(opts ...curve.CodecOption) (*curve.Codec, error) {
	return curve.NewCodec(s.dims, s.bits, append([]curve.CodecOption{curve.WithWorkers(s.workers)}, opts...)...)
}

func (c *command) encode(args []string) error {
	var s shape
	fs := c.flagSet("encode")
	s.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	codec, err := s.codec()
	if err != nil {
		return err
	}

	values := fs.Args()
	if len(values) == 0 || len(values)%s.dims != 0 {
		return fmt.Errorf("want a multiple of %d coordinates, got %d", s.dims, len(values))
	}

	points := make([]curve.Point, 0, len(values)/s.dims)
	for i := 0; i < len(values); i += s.dims {
		p := make(curve.Point, s.dims)
		for d := range p {
			v, err := strconv.ParseUint(values[i+d], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid coordinate %q: %w", values[i+d], err)
			}
			p[d] = uint32(v)
		}
		points = append(points, p)
	}

	indices, err := codec.Encode(points)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(c.stdout)
	for _, idx := range indices {
		fmt.Fprintln(w, idx)
	}

	return w.Flush()
}

func (c *command) decode(args []string) error {
	var s shape
	fs := c.flagSet("decode")
	s.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	codec, err := s.codec()
	if err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("no curve indices given")
	}

	indices := make([]uint64, fs.NArg())
	for i, arg := range fs.Args() {
		indices[i], err = strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid curve index %q: %w", arg, err)
		}
	}

	points, err := codec.Decode(indices)
	if err != nil {
		return err
	}

	return snapshot.WritePointsCSV(c.stdout, points)
}

func (c *command) curve(args []string) error {
	var s shape
	var out string
	fs := c.flagSet("curve")
	s.register(fs)
	fs.StringVar(&out, "o", "", "output file, stdout when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	codec, err := s.codec()
	if err != nil {
		return err
	}
	path, err := codec.Path()
	if err != nil {
		return err
	}

	if out == "" {
		return snapshot.WritePointsCSV(c.stdout, path)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := snapshot.WritePointsCSV(f, path); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	c.logger.Printf("wrote %d points to %s", len(path), out)

	return nil
}

func (c *command) animate(args []string) error {
	var s shape
	var dir string
	fs := c.flagSet("animate")
	s.register(fs)
	fs.StringVar(&dir, "dir", snapshot.DefaultDir, "snapshot directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := snapshot.Clear(dir); err != nil {
		return err
	}

	sink := snapshot.NewDirSink(dir)
	codec, err := s.codec(curve.WithObserver(sink))
	if err != nil {
		return err
	}
	if _, err := codec.Path(); err != nil {
		return err
	}
	if err := sink.Err(); err != nil {
		return err
	}
	c.logger.Printf("wrote %d step files to %s", codec.IndexBits(), dir)

	return nil
}

func (c *command) clean(args []string) error {
	var dir string
	fs := c.flagSet("clean")
	fs.StringVar(&dir, "dir", snapshot.DefaultDir, "snapshot directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return snapshot.Clear(dir)
}

func (c *command) trace(args []string) error {
	var s shape
	var out, compression string
	var bigEndian bool
	fs := c.flagSet("trace")
	s.register(fs)
	fs.StringVar(&out, "o", "", "output file (required)")
	fs.StringVar(&compression, "compression", "zstd", "payload compression: none, zstd, s2 or lz4")
	fs.BoolVar(&bigEndian, "big-endian", false, "write big-endian fields")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if out == "" {
		return errors.New("-o is required")
	}
	ct, ok := format.ParseCompression(compression)
	if !ok {
		return fmt.Errorf("unknown compression %q", compression)
	}

	opts := []trace.EncoderOption{trace.WithCompression(ct)}
	if bigEndian {
		opts = append(opts, trace.WithBigEndian())
	}

	data, err := trace.Record(s.dims, s.bits, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	c.logger.Printf("wrote %d byte trace to %s", len(data), out)

	return nil
}

func (c *command) inspect(args []string) error {
	fs := c.flagSet("inspect")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("want exactly one trace file")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	dec, err := trace.NewDecoder(data)
	if err != nil {
		return err
	}

	h := dec.Header()
	w := bufio.NewWriter(c.stdout)
	fmt.Fprintf(w, "dims:        %d\n", dec.Dims())
	fmt.Fprintf(w, "bits:        %d\n", dec.Bits())
	fmt.Fprintf(w, "steps:       %d\n", dec.Len())
	fmt.Fprintf(w, "points:      %d\n", dec.PointCount())
	fmt.Fprintf(w, "compression: %s\n", h.Flag.Compression())
	fmt.Fprintf(w, "endian:      %s\n", endian.Name(h.Flag.Engine()))
	fmt.Fprintf(w, "payload:     %d bytes (%d stored)\n", h.PayloadSize, h.CompressedSize)
	fmt.Fprintf(w, "checksum:    %016x\n", h.Checksum)
	for i, step := range dec.Steps() {
		fmt.Fprintf(w, "step %2d:     %s\n", i+1, step)
	}

	return w.Flush()
}
