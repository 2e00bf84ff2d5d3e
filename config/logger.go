package config

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger returns a logger prefixed with the program name and session id.
// Output goes to LogFile when set, appending, and to fallback otherwise.
// The returned close function releases the file.
func (c Config) Logger(program, session string, fallback io.Writer) (*log.Logger, func() error, error) {
	out := fallback
	closeFn := func() error { return nil }

	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	prefix := fmt.Sprintf("%s[%s] ", program, session)
	return log.New(out, prefix, log.LstdFlags|log.Lmsgprefix), closeFn, nil
}
