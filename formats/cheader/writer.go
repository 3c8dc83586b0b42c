// SPDX-License-Identifier: EPL-2.0

package cheader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	ErrInvalidIdentifier = errors.New("invalid C identifier")
	ErrInvalidPerLine    = errors.New("values per line must be positive")
)

const (
	DefaultArrayName  = "sampleData"
	DefaultLengthName = "SAMPLE_LEN"
	DefaultPerLine    = 16
)

// Options controls the generated declarations.
type Options struct {
	// Source is named in the leading comment, usually the input file name.
	Source string
	// ArrayName is the identifier of the uint8_t array.
	ArrayName string
	// LengthName is the identifier of the int length constant.
	LengthName string
	// PerLine is the number of values written on each line.
	PerLine int
}

// DefaultOptions returns the stock layout for data converted from source.
func DefaultOptions(source string) Options {
	return Options{
		Source:     source,
		ArrayName:  DefaultArrayName,
		LengthName: DefaultLengthName,
		PerLine:    DefaultPerLine,
	}
}

// Validate checks that the identifiers are usable in C source.
func (o Options) Validate() error {
	if !IsIdentifier(o.ArrayName) {
		return fmt.Errorf("%w: array name %q", ErrInvalidIdentifier, o.ArrayName)
	}
	if !IsIdentifier(o.LengthName) {
		return fmt.Errorf("%w: length name %q", ErrInvalidIdentifier, o.LengthName)
	}
	if o.PerLine < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPerLine, o.PerLine)
	}

	return nil
}

// IsIdentifier reports whether s is a valid C identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

// Write emits data as a const uint8_t array followed by an int constant
// holding its length:
//
//	// Converted from <source>
//	const uint8_t sampleData[] = {
//	  v0,v1,...,v15,
//	  v16,...
//	};
//	const int SAMPLE_LEN = <n>;
//
// Every value is followed by a comma. The output depends only on data and
// opts.
func Write(w io.Writer, data []uint8, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "// Converted from %s\n", opts.Source)
	fmt.Fprintf(bw, "const uint8_t %s[] = {\n", opts.ArrayName)

	// 3 digits and a comma per value, plus indent and newline
	line := make([]byte, 0, opts.PerLine*4+3)
	for start := 0; start < len(data); start += opts.PerLine {
		end := min(start+opts.PerLine, len(data))

		line = append(line[:0], ' ', ' ')
		for _, v := range data[start:end] {
			line = strconv.AppendUint(line, uint64(v), 10)
			line = append(line, ',')
		}
		line = append(line, '\n')

		bw.Write(line)
	}

	bw.WriteString("};\n")
	fmt.Fprintf(bw, "const int %s = %d;\n", opts.LengthName, len(data))

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFile writes the header to path. The file is only created once
// everything is ready to be written and is removed again if writing fails.
func WriteFile(path string, data []uint8, opts Options) (err error) {
	if err := opts.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return Write(f, data, opts)
}
