package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"gopkg.in/yaml.v3"

	"github.com/henderiw/spanmap/pkg/span"
	"github.com/henderiw/spanmap/pkg/spanmap"
)

var (
	ErrNoSpanFile  = errors.New("no span file given")
	ErrUnknownOp   = errors.New("unknown span operation")
	ErrEmptyValue  = errors.New("span has no value")
	ErrInvalidSpan = errors.New("invalid span")
)

const (
	opInsert = "insert"
	opRemove = "remove"
)

// File is the layout of a span file.
type File struct {
	Spans []SpanEntry `yaml:"spans"`
}

// SpanEntry applies op for value over the span written in interval
// notation, e.g. "[0, 10)" or "(-inf, 5]". An empty op means insert.
type SpanEntry struct {
	Range string `yaml:"range"`
	Value string `yaml:"value"`
	Op    string `yaml:"op,omitempty"`
}

func newLogger(w io.Writer) logr.Logger {
	if !verbose {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		fmt.Fprintln(w, prefix, args)
	}, funcr.Options{})
}

func loadFile(path string, log logr.Logger) (*spanmap.Map[int, string], error) {
	if path == "" {
		return nil, ErrNoSpanFile
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open span file: %w", err)
	}
	defer f.Close()

	return load(f, log)
}

func load(r io.Reader, log logr.Logger) (*spanmap.Map[int, string], error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode span file: %w", err)
	}

	m := spanmap.New[int, string]()
	var errm error
	for i, e := range file.Spans {
		s, err := span.ParseInt(e.Range)
		if err != nil {
			errm = errors.Join(errm, fmt.Errorf("spans[%d]: %w: %w", i, ErrInvalidSpan, err))
			continue
		}
		if e.Value == "" {
			errm = errors.Join(errm, fmt.Errorf("spans[%d] %s: %w", i, s, ErrEmptyValue))
			continue
		}
		switch e.Op {
		case "", opInsert:
			m.InsertSpan(s, e.Value)
		case opRemove:
			m.RemoveSpan(s, e.Value)
		default:
			errm = errors.Join(errm, fmt.Errorf("spans[%d] %s: %w %q", i, s, ErrUnknownOp, e.Op))
			continue
		}
		log.Info("applied", "op", e.Op, "span", s.String(), "value", e.Value, "cells", m.Len())
	}
	if errm != nil {
		return nil, errm
	}
	return m, nil
}
