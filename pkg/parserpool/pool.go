// Package parserpool provides a pool of gnparser instances for
// concurrent scientific name parsing. Parsing is computation, not I/O,
// so this is a pure package.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool hands out gnparser instances for concurrent parsing of
// accepted names. All parsers in a pool share one nomenclatural code.
type Pool interface {
	// Parse parses a scientific name string. Safe for concurrent use;
	// blocks when all parsers are busy.
	Parse(name string) parsed.Parsed

	// Close shuts the pool down. The pool must not be used afterwards.
	Close()
}

type pool struct {
	ch chan gnparser.GNparser
}

// New creates a parser pool of the given size for the given
// nomenclatural code. A size of 0 defaults to runtime.NumCPU().
func New(code nomcode.Code, size int) Pool {
	if size == 0 {
		size = runtime.NumCPU()
	}
	cfg := gnparser.NewConfig(gnparser.OptCode(code))
	return &pool{ch: gnparser.NewPool(cfg, size)}
}

// CodeFromString converts a config value to a nomenclatural code.
// Zoological is the default; survey data is overwhelmingly animals.
func CodeFromString(s string) nomcode.Code {
	switch s {
	case "botanical":
		return nomcode.Botanical
	default:
		return nomcode.Zoological
	}
}

func (p *pool) Parse(name string) parsed.Parsed {
	prs := <-p.ch
	res := prs.ParseName(name)
	p.ch <- prs
	return res
}

func (p *pool) Close() {
	if p.ch == nil {
		return
	}
	close(p.ch)
	for range p.ch {
	}
	p.ch = nil
}
