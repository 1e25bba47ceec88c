package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quotelookup/internal/widget"
)

type recordingSubmitter struct {
	queries   []string
	deadlines []bool
}

func (r *recordingSubmitter) Submit(ctx context.Context, raw string) widget.State {
	r.queries = append(r.queries, raw)
	_, ok := ctx.Deadline()
	r.deadlines = append(r.deadlines, ok)
	if strings.TrimSpace(raw) == "" {
		return widget.ShowingError
	}
	return widget.ShowingStock
}

func TestRunInteractive_SubmitsEachLine(t *testing.T) {
	var out bytes.Buffer
	s := &recordingSubmitter{}

	err := runInteractive(t.Context(), s, strings.NewReader("AAPL\n\nbtc\n"), &out, time.Second)

	require.NoError(t, err)
	require.Equal(t, []string{"AAPL", "", "btc"}, s.queries)
	require.Equal(t, []bool{true, true, true}, s.deadlines)
	require.Equal(t, 4, strings.Count(out.String(), "> "))
}

func TestRunInteractive_Quit(t *testing.T) {
	s := &recordingSubmitter{}
	err := runInteractive(t.Context(), s, strings.NewReader("TSLA\nquit\nMSFT\n"), &bytes.Buffer{}, 0)

	require.NoError(t, err)
	require.Equal(t, []string{"TSLA"}, s.queries)
	require.Equal(t, []bool{false}, s.deadlines)
}

func TestRunOnce(t *testing.T) {
	s := &recordingSubmitter{}
	require.Equal(t, widget.ShowingStock, runOnce(t.Context(), s, "GOOGL", time.Second))
	require.Equal(t, widget.ShowingError, runOnce(t.Context(), s, "  ", time.Second))
}

func TestOneShot_FailedLookupIsAnError(t *testing.T) {
	s := &recordingSubmitter{}
	require.NoError(t, oneShot(t.Context(), s, "AAPL", time.Second))
	require.ErrorIs(t, oneShot(t.Context(), s, "", time.Second), errLookupFailed)
	require.Equal(t, []string{"AAPL", ""}, s.queries)
}

func TestRootCmd_RejectsExtraArgs(t *testing.T) {
	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"AAPL", "TSLA"})
	cmd.SetErr(&bytes.Buffer{})
	require.Error(t, cmd.Execute())
}

func TestRootCmd_UnknownProvider(t *testing.T) {
	t.Chdir(t.TempDir())
	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"--provider", "bloomberg", "--chart-dir", t.TempDir(), "AAPL"})
	cmd.SetErr(&bytes.Buffer{})
	require.ErrorContains(t, cmd.Execute(), "unknown stock provider")
}
