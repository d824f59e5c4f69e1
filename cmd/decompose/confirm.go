package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"
)

var _ = fmt.Print

var errSkipped = errors.New("file already exists, skipping")

// confirmer decides whether an output file may be written. Prompts are
// serialized so that concurrent jobs never interleave their questions.
type confirmer struct {
	policy overwrite_policy
	mutex  sync.Mutex
	in     *bufio.Reader
	out    io.Writer
}

func new_confirmer(policy overwrite_policy, in io.Reader, out io.Writer) *confirmer {
	return &confirmer{policy: policy, in: bufio.NewReader(in), out: out}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// confirm returns nil if path may be written and errSkipped otherwise
func (c *confirmer) confirm(path string) error {
	if c.policy == overwrite_existing || !exists(path) {
		return nil
	}
	if c.policy == skip_existing {
		return errSkipped
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for {
		if _, err := fmt.Fprintf(c.out, "%s: file exists, overwrite? [y/N] ", path); err != nil {
			return err
		}
		line, err := c.in.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			if errors.Is(err, io.EOF) {
				// no more input, treat as a no
				fmt.Fprintln(c.out, "N")
				return errSkipped
			}
			return err
		}
		switch strings.TrimRight(line, "\r\n") {
		case "y", "Y":
			return nil
		case "", "n", "N":
			return errSkipped
		}
	}
}
