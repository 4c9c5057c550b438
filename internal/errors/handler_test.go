package errors

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/okay-you-very-pro/oyvp/internal/colors"
	"github.com/okay-you-very-pro/oyvp/internal/logging"
	"github.com/okay-you-very-pro/oyvp/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCLIHandler() (*CLIHandler, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut, logs bytes.Buffer
	h := NewCLIHandler(&out, &errOut)
	h.log = logging.NewWithWriter(&logs, logging.Config{Level: "debug"})
	return h, &out, &errOut, &logs
}

func TestCLIHandlerRoutesByKind(t *testing.T) {
	colors.SetQuiet(false)
	h, out, errOut, logs := newTestCLIHandler()

	h.Error("e1")
	h.Warning("w1")
	h.Info("i1")
	h.Success("s1")

	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "e1")
	assert.Contains(t, errOut.String(), "Warning:")
	assert.Contains(t, errOut.String(), "w1")
	assert.NotContains(t, errOut.String(), "i1")

	assert.Contains(t, out.String(), "i1")
	assert.Contains(t, out.String(), "s1")
	assert.NotContains(t, out.String(), "e1")

	for _, msg := range []string{"e1", "w1", "i1", "s1"} {
		assert.Contains(t, logs.String(), msg)
	}
}

func TestCLIHandlerQuietKeepsProblems(t *testing.T) {
	colors.SetQuiet(true)
	defer colors.SetQuiet(false)
	h, out, errOut, logs := newTestCLIHandler()

	h.Info("hidden")
	h.Success("also hidden")
	h.Warning("shown")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "shown")
	assert.Contains(t, logs.String(), "hidden", "quiet still logs")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestCLIHandlerLogsWriteFailure(t *testing.T) {
	var logs bytes.Buffer
	h := NewCLIHandler(failingWriter{}, failingWriter{})
	h.log = logging.NewWithWriter(&logs, logging.Config{Level: "debug"})

	assert.NotPanics(t, func() { h.Error("disk full") })
	assert.Contains(t, logs.String(), "failed to print notice")
}

func TestDeliverRoutesByType(t *testing.T) {
	h := NewTUIHandler(nil)
	for _, n := range []Notice{
		{Type: MessageTypeError, Text: "e"},
		{Type: MessageTypeWarning, Text: "w"},
		{Type: MessageTypeInfo, Text: "i"},
		{Type: MessageTypeSuccess, Text: "s"},
		{Type: MessageType(42), Text: "other"},
	} {
		Deliver(h, n)
	}

	all := h.GetAll()
	require.Len(t, all, 5)
	assert.Equal(t, []MessageType{MessageTypeError, MessageTypeWarning, MessageTypeInfo, MessageTypeSuccess, MessageTypeInfo},
		[]MessageType{all[0].Type, all[1].Type, all[2].Type, all[3].Type, all[4].Type})
}

func TestTUIHandlerStoresMessages(t *testing.T) {
	var seen []Message
	h := NewTUIHandler(func(msg Message) { seen = append(seen, msg) })
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	_, ok := h.GetLatest()
	assert.False(t, ok)

	h.Info("first")
	h.Error("second")

	latest, ok := h.GetLatest()
	require.True(t, ok)
	assert.Equal(t, "second", latest.Text)
	assert.Equal(t, MessageTypeError, latest.Type)
	assert.Equal(t, fixed, latest.Timestamp)
	assert.Len(t, seen, 2)

	all := h.GetAll()
	require.Len(t, all, 2)
	all[0].Text = "mutated"
	assert.Equal(t, "first", h.GetAll()[0].Text)

	h.Clear()
	assert.Empty(t, h.GetAll())
}

func TestTUIHandlerKeepsBoundedHistory(t *testing.T) {
	h := NewTUIHandler(nil)
	h.limit = 3
	for _, text := range []string{"a", "b", "c", "d", "e"} {
		h.Warning(text)
	}

	all := h.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Text)
	assert.Equal(t, "e", all[2].Text)
}

func TestTUIHandlerCallbackMayReenter(t *testing.T) {
	var h *TUIHandler
	h = NewTUIHandler(func(Message) {
		_, _ = h.GetLatest()
	})
	assert.NotPanics(t, func() { h.Success("ok") })
}

func TestMessageTypeString(t *testing.T) {
	assert.Equal(t, "error", MessageTypeError.String())
	assert.Equal(t, "warning", MessageTypeWarning.String())
	assert.Equal(t, "info", MessageTypeInfo.String())
	assert.Equal(t, "success", MessageTypeSuccess.String())
	assert.Equal(t, "unknown", MessageType(42).String())
}

func TestLoadNotice(t *testing.T) {
	tests := []struct {
		name   string
		result settings.LoadResult
		want   bool
	}{
		{name: "loaded", result: settings.LoadResult{Outcome: settings.Loaded}},
		{name: "first run", result: settings.LoadResult{Outcome: settings.Defaulted}},
		{name: "broken file", result: settings.LoadResult{Outcome: settings.DefaultedOnError, Path: "/x/config.toml", Err: os.ErrInvalid}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := LoadNotice(tt.result)
			require.Equal(t, tt.want, ok)
			if !ok {
				return
			}
			assert.Equal(t, MessageTypeWarning, n.Type)
			assert.Contains(t, n.Text, "/x/config.toml")
			assert.Contains(t, n.Text, "using defaults")
		})
	}
}

func TestSaveNotice(t *testing.T) {
	_, ok := SaveNotice(settings.SaveResult{Outcome: settings.Saved})
	assert.False(t, ok)

	n, ok := SaveNotice(settings.SaveResult{Outcome: settings.SaveFailed, Path: "/ro/config.toml", Err: os.ErrPermission})
	require.True(t, ok)
	assert.Equal(t, MessageTypeError, n.Type)
	assert.Contains(t, n.Text, "/ro/config.toml")
}

func TestReportLoad(t *testing.T) {
	h := NewTUIHandler(nil)
	assert.False(t, ReportLoad(h, settings.LoadResult{Outcome: settings.Defaulted}))
	assert.Empty(t, h.GetAll())

	assert.True(t, ReportLoad(h, settings.LoadResult{Outcome: settings.DefaultedOnError, Path: "/x/config.toml", Err: os.ErrInvalid}))
	latest, ok := h.GetLatest()
	require.True(t, ok)
	assert.Equal(t, MessageTypeWarning, latest.Type)
}

func TestReportSave(t *testing.T) {
	h := NewTUIHandler(nil)
	assert.False(t, ReportSave(h, settings.SaveResult{Outcome: settings.Saved}))
	assert.Empty(t, h.GetAll())

	assert.True(t, ReportSave(h, settings.SaveResult{Outcome: settings.SaveFailed, Path: "/ro/config.toml", Err: os.ErrPermission}))
	latest, ok := h.GetLatest()
	require.True(t, ok)
	assert.Equal(t, MessageTypeError, latest.Type)
	assert.Contains(t, latest.Text, "/ro/config.toml")
}
