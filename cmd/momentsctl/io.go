package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/grahamgower/moments/specio"
	"github.com/grahamgower/moments/spectrum"
	"github.com/grahamgower/moments/twolocus"
)

func openIn(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func createOut(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func readSpectrumFile(path string) (*spectrum.Spectrum, error) {
	f, err := openIn(path)
	if err != nil {
		return nil, fmt.Errorf("readSpectrumFile: %w", err)
	}
	defer f.Close()
	return specio.ReadSpectrum(f)
}

func writeSpectrumFile(path string, sp *spectrum.Spectrum) error {
	f, err := createOut(path)
	if err != nil {
		return fmt.Errorf("writeSpectrumFile: %w", err)
	}
	defer f.Close()
	return specio.WriteSpectrum(f, sp)
}

func readTLSpectrumFile(path string) (*twolocus.TLSpectrum, error) {
	f, err := openIn(path)
	if err != nil {
		return nil, fmt.Errorf("readTLSpectrumFile: %w", err)
	}
	defer f.Close()
	return specio.ReadTLSpectrum(f)
}

func writeTLSpectrumFile(path string, tl *twolocus.TLSpectrum) error {
	f, err := createOut(path)
	if err != nil {
		return fmt.Errorf("writeTLSpectrumFile: %w", err)
	}
	defer f.Close()
	return specio.WriteTLSpectrum(f, tl)
}

// parseFloats splits a comma-separated flag value into a []float64,
// returning nil for an empty string so callers can distinguish "not set"
// from "explicitly empty".
func parseFloats(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parseFloats: token %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parseInts: token %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}
