package listener

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

type pipe struct {
	io.Reader
	io.Writer
}

func TestCRLFReadWriter_Read(t *testing.T) {
	tests := map[string]struct {
		in  string
		exp string
	}{
		"telnet line":   {in: "look\r\n", exp: "look\n"},
		"pty line":      {in: "look\r", exp: "look\n"},
		"plain line":    {in: "look\n", exp: "look\n"},
		"several lines": {in: "hold up\r\nbark\rquit\n", exp: "hold up\nbark\nquit\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rw := newCRLFReadWriter(pipe{Reader: strings.NewReader(tt.in)})

			got, err := io.ReadAll(rw)

			testutil.AssertEqual(t, "error", err, nil)
			testutil.AssertEqual(t, "read", string(got), tt.exp)
		})
	}
}

func TestCRLFReadWriter_Write(t *testing.T) {
	var out bytes.Buffer
	rw := newCRLFReadWriter(pipe{Writer: &out})

	n, err := rw.Write([]byte("Welcome\n> "))

	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "n", n, 10)
	testutil.AssertEqual(t, "written", out.String(), "Welcome\r\n> ")
}
