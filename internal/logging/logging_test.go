package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name      string
		logger    func(out, err *bytes.Buffer) Logger
		wantOut   string
		wantErrIn string
	}{
		{
			name: "quiet",
			logger: func(out, err *bytes.Buffer) Logger {
				return Logger{Out: out, Err: err}
			},
			wantOut:   "",
			wantErrIn: "[warn] careful",
		},
		{
			name: "verbose",
			logger: func(out, err *bytes.Buffer) Logger {
				return Logger{Verbose: true, Out: out, Err: err}
			},
			wantOut:   "[info] hello 1\n",
			wantErrIn: "[warn] careful",
		},
		{
			name: "debug",
			logger: func(out, err *bytes.Buffer) Logger {
				return Logger{Debug: true, Out: out, Err: err}
			},
			wantOut:   "[info] hello 1\n[debug] details\n",
			wantErrIn: "[warn] careful",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			l := tt.logger(&out, &errOut)

			l.Infof("hello %d", 1)
			l.Debugf("details")
			l.Warnf("careful")

			assert.Equal(t, tt.wantOut, out.String())
			assert.Contains(t, errOut.String(), tt.wantErrIn)
		})
	}
}

func TestLogger_ErrorfAndReturn(t *testing.T) {
	color.NoColor = true
	var out, errOut bytes.Buffer
	l := Logger{Out: &out, Err: &errOut}

	base := errors.New("boom")
	err := l.ErrorfAndReturn("loading storage: %w", base)

	assert.ErrorIs(t, err, base)
	assert.Empty(t, errOut.String())

	l.Debug = true
	_ = l.ErrorfAndReturn("again")
	assert.Contains(t, errOut.String(), "[error] again")
}
