package board

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"rtctime/core"
	"rtctime/host/serial"
)

var allowTimeOfDay = cmp.AllowUnexported(core.TimeOfDay{})

// MockPort is a test implementation of serial.Port
type MockPort struct {
	in      *bytes.Buffer
	out     bytes.Buffer
	closed   bool
	flushes  int
	flushErr error
}

func NewMockPort(input string) *MockPort {
	return &MockPort{in: bytes.NewBufferString(input)}
}

func (m *MockPort) Read(b []byte) (int, error)  { return m.in.Read(b) }
func (m *MockPort) Write(b []byte) (int, error) { return m.out.Write(b) }

func (m *MockPort) Close() error {
	m.closed = true
	return nil
}

func (m *MockPort) Flush() error {
	m.flushes++
	return m.flushErr
}

func TestBoardReadsReadings(t *testing.T) {
	port := NewMockPort("12:30:10\r\n[RTC] synced to 12:30:00\n\n12:30:11\n")
	b := New()
	b.Attach(port)

	var got []core.TimeOfDay
	for {
		tod, err := b.NextReading()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("NextReading failed: %v", err)
		}
		got = append(got, tod)
	}

	want := []core.TimeOfDay{
		core.NewTimeOfDay(12, 30, 10),
		core.NewTimeOfDay(12, 30, 11),
	}
	if diff := cmp.Diff(want, got, allowTimeOfDay); diff != "" {
		t.Errorf("readings mismatch (-want +got):\n%s", diff)
	}
	if b.SkippedLines() != 1 {
		t.Errorf("Expected 1 skipped line, got %d", b.SkippedLines())
	}
}

func TestLineReaderResumesAfterTimeout(t *testing.T) {
	in := bytes.NewBufferString("07:3")
	lines := NewLineReader(in)

	if _, err := lines.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("Expected io.EOF on partial line, got %v", err)
	}

	in.WriteString("0:45\n")
	got, err := lines.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if !got.MatchesExact(7, 30, 45) {
		t.Errorf("Expected 07:30:45, got %s", got)
	}
}

func TestBoardSync(t *testing.T) {
	port := NewMockPort("")
	b := New()
	b.Attach(port)

	if err := b.Sync(core.NewTimeOfDay(9, 5, 3)); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if got := port.out.String(); got != "sync 09:05:03\n" {
		t.Errorf("Expected sync line, got %q", got)
	}

	err := b.Sync(core.NewTimeOfDay(0, 75, 70))
	if !errors.Is(err, core.ErrInvalidTime) {
		t.Errorf("Expected ErrInvalidTime for 00:75:70, got %v", err)
	}
}

func TestBoardNotConnected(t *testing.T) {
	b := New()
	if _, err := b.NextReading(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Expected ErrNotConnected, got %v", err)
	}
	if err := b.Sync(core.TimeOfDay{}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Expected ErrNotConnected, got %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("Close on unconnected board failed: %v", err)
	}
}

func TestBoardClose(t *testing.T) {
	port := NewMockPort("")
	b := New()
	b.Attach(port)

	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !port.closed || b.IsConnected() {
		t.Error("Expected port closed and board disconnected")
	}
}

func TestDrift(t *testing.T) {
	testCases := []struct {
		name          string
		host, reading core.TimeOfDay
		want          int64
	}{
		{"in sync", core.NewTimeOfDay(12, 0, 0), core.NewTimeOfDay(12, 0, 0), 0},
		{"board ahead", core.NewTimeOfDay(12, 0, 0), core.NewTimeOfDay(12, 0, 5), 5},
		{"board behind", core.NewTimeOfDay(12, 1, 0), core.NewTimeOfDay(12, 0, 30), -30},
		{"board past midnight", core.NewTimeOfDay(23, 59, 59), core.NewTimeOfDay(0, 0, 1), 2},
		{"host past midnight", core.NewTimeOfDay(0, 0, 1), core.NewTimeOfDay(23, 59, 59), -2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Drift(tc.host, tc.reading); got != tc.want {
				t.Errorf("Drift = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestConnectWithConfigFlushFailureClosesPort(t *testing.T) {
	port := NewMockPort("")
	port.flushErr = errors.New("flush failed")
	openPort = func(cfg *serial.Config) (serial.Port, error) { return port, nil }
	defer func() { openPort = serial.Open }()

	b := New()
	err := b.ConnectWithConfig(serial.DefaultConfig("/dev/ttyUSB0"))
	if !errors.Is(err, port.flushErr) {
		t.Fatalf("Expected flush error, got %v", err)
	}
	if !port.closed {
		t.Error("Expected port to be closed after flush failure")
	}
	if b.IsConnected() {
		t.Error("Expected board to be disconnected after flush failure")
	}
}

func TestConnectWithConfigAttachesPort(t *testing.T) {
	port := NewMockPort("06:00:00\n")
	openPort = func(cfg *serial.Config) (serial.Port, error) { return port, nil }
	defer func() { openPort = serial.Open }()

	b := New()
	if err := b.ConnectWithConfig(serial.DefaultConfig("/dev/ttyUSB0")); err != nil {
		t.Fatalf("ConnectWithConfig failed: %v", err)
	}
	if !b.IsConnected() || port.flushes != 1 {
		t.Errorf("Expected connected board with one flush, got connected=%v flushes=%d", b.IsConnected(), port.flushes)
	}
	if got, err := b.NextReading(); err != nil || !got.MatchesExact(6, 0, 0) {
		t.Errorf("Expected 06:00:00, got %s (%v)", got, err)
	}
}
