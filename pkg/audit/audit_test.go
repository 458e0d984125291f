package audit

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLogger(w io.Writer) *Logger {
	l := NewLogger()
	l.SetWriter(w)
	l.hostname = "host-1"
	l.pid = 42
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return l
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	fixedLogger(&buf).Log(RiskConfirmEvent{
		UserID:   "alice",
		ClientIP: "192.168.1.1",
		RiskID:   "0190a0b0-0000-7000-8000-000000000001",
		Success:  true,
	})

	want := `<86>1 2024-05-01T12:00:00.000Z host-1 accrisk 42 risk-confirm ` +
		`[action@32473 operation="confirm" result="success"]` +
		`[auth@32473 user="alice"]` +
		`[client@32473 ip="192.168.1.1"]` +
		`[subject@32473 risk="0190a0b0-0000-7000-8000-000000000001"] ` +
		"alice confirmed account risk 0190a0b0-0000-7000-8000-000000000001\n"
	assert.Equal(t, want, buf.String())
}

func TestLoggerEmptyStructuredData(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf)
	l.hostname = ""
	l.Log(bareEvent{})

	assert.True(t, strings.Contains(buf.String(), " - accrisk 42 bare - hello"), buf.String())
}

type bareEvent struct{}

func (bareEvent) MessageID() string                            { return "bare" }
func (bareEvent) Message() string                              { return "hello" }
func (bareEvent) Severity() Severity                           { return SeverityNotice }
func (bareEvent) Facility() int                                { return FacilityAuth }
func (bareEvent) StructuredData() map[string]map[string]string { return nil }

func TestEscapeSDValue(t *testing.T) {
	assert.Equal(t, `"a\"b\\c\]d"`, escapeSDValue(`a"b\c]d`))
}

func TestEvents(t *testing.T) {
	tests := []struct {
		name      string
		event     Event
		wantMsg   string
		wantSev   Severity
		wantMsgID string
	}{
		{
			name:      "confirm failure",
			event:     RiskConfirmEvent{UserID: "alice", RiskID: "r-1", ErrorMessage: "account risk not found"},
			wantMsg:   "alice tried to confirm account risk r-1: account risk not found",
			wantSev:   SeverityWarning,
			wantMsgID: "risk-confirm",
		},
		{
			name:      "delete by asset",
			event:     RiskDeleteEvent{UserID: "alice", AssetID: "a-1", Deleted: 3, Success: true},
			wantMsg:   "alice deleted account risks of asset a-1 (3 rows)",
			wantSev:   SeverityInfo,
			wantMsgID: "risk-delete",
		},
		{
			name:      "partial seed",
			event:     RiskSeedEvent{UserID: "cli", OrgID: "org", Requested: 100, Inserted: 50, ErrorMessage: "batch 1"},
			wantMsg:   "cli generated 50 of 100 synthetic account risks in org: batch 1",
			wantSev:   SeverityWarning,
			wantMsgID: "risk-seed",
		},
		{
			name:      "automation saved",
			event:     AutomationSaveEvent{UserID: "cli", AutomationID: "id-1", Name: "nightly", Success: true},
			wantMsg:   "cli saved check automation nightly (id-1)",
			wantSev:   SeverityInfo,
			wantMsgID: "automation",
		},
		{
			name:      "anonymous authn failure",
			event:     AuthenticateEvent{ClientIP: "10.0.0.1", ErrorMessage: "token expired"},
			wantMsg:   "anonymous failed to authenticate: token expired",
			wantSev:   SeverityWarning,
			wantMsgID: "authn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.event.Message())
			assert.Equal(t, tt.wantSev, tt.event.Severity())
			assert.Equal(t, tt.wantMsgID, tt.event.MessageID())
		})
	}
}

func TestLogDisabled(t *testing.T) {
	var buf bytes.Buffer
	prevLogger := DefaultLogger
	DefaultLogger = fixedLogger(&buf)
	defer func() {
		DefaultLogger = prevLogger
		SetEnabled(true)
	}()

	SetEnabled(false)
	Log(RiskConfirmEvent{RiskID: "r-1", Success: true})
	assert.Empty(t, buf.String())
}

func TestSetEnabledConcurrentWithLog(t *testing.T) {
	prevLogger := DefaultLogger
	DefaultLogger = fixedLogger(io.Discard)
	defer func() {
		DefaultLogger = prevLogger
		SetEnabled(true)
	}()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(on bool) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				SetEnabled(on)
			}
		}(i%2 == 0)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Log(RiskDeleteEvent{RiskID: "r-1", Success: true})
			}
		}()
	}
	wg.Wait()

	SetEnabled(false)
	assert.False(t, IsEnabled())
	SetEnabled(true)
	assert.True(t, IsEnabled())
}
