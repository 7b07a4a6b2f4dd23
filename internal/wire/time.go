package wire

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Timestamp — момент времени, на проводе передаётся целым числом секунд Unix.
type Timestamp struct {
	time.Time
}

// FromEpochSeconds возвращает момент времени в UTC для n секунд от начала эпохи.
// Преобразование точное для всего диапазона int64.
func FromEpochSeconds(n int64) Timestamp {
	return Timestamp{Time: time.Unix(n, 0).UTC()}
}

// NewTimestamp приводит t к UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// EpochSeconds возвращает число секунд от начала эпохи.
func (t Timestamp) EpochSeconds() int64 {
	return t.Unix()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Nanosecond() != 0 {
		return nil, fmt.Errorf("timestamp %s has sub-second precision: %w", t.Format(time.RFC3339Nano), ErrUnrepresentable)
	}

	return strconv.AppendInt(nil, t.Unix(), 10), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if isNull(bytes.TrimSpace(data)) {
		return nil
	}

	n, err := parseSeconds(data, "integer epoch seconds")
	if err != nil {
		return err
	}
	*t = FromEpochSeconds(n)

	return nil
}

// Seconds — длительность, на проводе передаётся целым числом секунд.
type Seconds time.Duration

const (
	maxSeconds = math.MaxInt64 / int64(time.Second)
	minSeconds = math.MinInt64 / int64(time.Second)
)

// FromSeconds возвращает длительность n секунд. Значения вне диапазона time.Duration
// (около 292 лет) не представимы.
func FromSeconds(n int64) (Seconds, error) {
	if n > maxSeconds || n < minSeconds {
		return 0, fmt.Errorf("%d seconds overflow time.Duration: %w", n, ErrUnrepresentable)
	}

	return Seconds(time.Duration(n) * time.Second), nil
}

// Duration возвращает значение как time.Duration.
func (s Seconds) Duration() time.Duration {
	return time.Duration(s)
}

// Int64 возвращает число целых секунд.
func (s Seconds) Int64() int64 {
	return int64(time.Duration(s) / time.Second)
}

func (s Seconds) String() string {
	return time.Duration(s).String()
}

func (s Seconds) MarshalJSON() ([]byte, error) {
	if time.Duration(s)%time.Second != 0 {
		return nil, fmt.Errorf("duration %s is not a whole number of seconds: %w", time.Duration(s), ErrUnrepresentable)
	}

	return strconv.AppendInt(nil, s.Int64(), 10), nil
}

func (s *Seconds) UnmarshalJSON(data []byte) error {
	if isNull(bytes.TrimSpace(data)) {
		return nil
	}

	n, err := parseSeconds(data, "integer seconds")
	if err != nil {
		return err
	}

	d, err := FromSeconds(n)
	if err != nil {
		return &DecodeError{Kind: KindTypeMismatch, Expected: "seconds within time.Duration range", Actual: "number " + strconv.FormatInt(n, 10)}
	}
	*s = d

	return nil
}

func parseSeconds(data []byte, expected string) (int64, error) {
	raw := bytes.TrimSpace(data)

	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		mismatch := typeMismatch(expected, raw)
		if mismatch.Actual == "number" {
			mismatch.Actual = "number " + string(raw)
		}
		return 0, mismatch
	}

	return n, nil
}
