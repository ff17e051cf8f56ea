package obs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRecord struct{ tick int }

func (f fakeRecord) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("tick", f.tick))
}

func TestTickLogsOnlyOnInterval(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Tick(logger, "run-a", 10, 10, fakeRecord{tick: 10})
	Tick(logger, "run-a", 10, 15, fakeRecord{tick: 15})

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "run-a"))
}

func TestTickDisabledWhenEveryIsZero(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Tick(logger, "run-b", 0, 10, fakeRecord{tick: 10})

	assert.Empty(t, buf.String())
}
