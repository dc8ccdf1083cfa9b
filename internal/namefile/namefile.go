// Package namefile writes names to a plain text file, one per line.
package namefile

import (
	"bufio"
	"iter"
	"os"
)

// WriteNames writes each name in seq followed by a newline to the file
// at path, which is created or truncated, and returns how many names
// it wrote.
//
// When seq fails before producing its first name we return the error
// without touching path. A later failure leaves a partially written
// file behind. The file is always closed before returning.
func WriteNames(seq iter.Seq2[string, error], path string) (int, error) {
	next, stop := iter.Pull2(seq)
	defer stop()

	name, err, more := next()
	if more && err != nil {
		return 0, err
	}

	fp, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}
	count, err := writeAll(fp, name, more, next)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return count, err
}

// writeAll writes the first name, if any, and then drains next.
func writeAll(fp *os.File, name string, more bool, next func() (string, error, bool)) (int, error) {
	w := bufio.NewWriter(fp)
	var count int
	for more {
		if _, err := w.WriteString(name); err != nil {
			return count, err
		}
		if err := w.WriteByte('\n'); err != nil {
			return count, err
		}
		count++
		var err error
		name, err, more = next()
		if more && err != nil {
			// keep what we wrote so far on disk
			if ferr := w.Flush(); ferr != nil {
				return count, ferr
			}
			return count, err
		}
	}
	return count, w.Flush()
}
