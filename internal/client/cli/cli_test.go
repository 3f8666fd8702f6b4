package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/learnsync/internal/client/iocli"
)

// console подменяет терминал: ответы выдаются по очереди, вывод копится
type console struct {
	out       strings.Builder
	inputs    []string
	passwords []string
}

func (c *console) mock() *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			c.out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(&c.out, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			return c.out.Write(p)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			if len(c.inputs) == 0 {
				return "", io.EOF
			}
			v := c.inputs[0]
			c.inputs = c.inputs[1:]
			return v, nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			if len(c.passwords) == 0 {
				return "", io.EOF
			}
			v := c.passwords[0]
			c.passwords = c.passwords[1:]
			return v, nil
		},
	}
}

func (c *console) String() string {
	return c.out.String()
}

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCli(con *console, s Services) *Cli {
	return New(con.mock(), s, ServeOptions{}, setupTestLogger())
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	con := &console{}
	err := newTestCli(con, Services{}).Run(context.Background(), "teleport", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: teleport")
}

func TestCli_Run_UsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		wantErr string
	}{
		{name: "course без id", command: "course", wantErr: "usage: learnsync course"},
		{name: "progress без модуля", command: "progress", args: []string{"c1"}, wantErr: "usage: learnsync progress"},
		{name: "complete без индекса", command: "complete", args: []string{"c1", "m1", "video"}, wantErr: "usage: learnsync complete"},
		{name: "complete с нечисловым индексом", command: "complete", args: []string{"c1", "m1", "video", "x"}, wantErr: "invalid item index"},
		{name: "cache без подкоманды", command: "cache", wantErr: "usage: learnsync cache"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			con := &console{}
			err := newTestCli(con, Services{}).Run(context.Background(), tt.command, tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPrintUsage(t *testing.T) {
	con := &console{}
	PrintUsage(con.mock())

	out := con.String()
	assert.Contains(t, out, "LearnSync Client")
	assert.Contains(t, out, "complete <course> <module> <type> <index>")
	assert.Contains(t, out, "LEARNSYNC_DEVICE_SECRET")
}
