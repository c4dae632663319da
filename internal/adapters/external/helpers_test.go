package external

import (
	"context"
	"sync"
	"time"

	"forecastapi.app/internal/ports"
)

type testWeatherProvider struct {
	name     string
	current  *ports.CurrentWeatherData
	forecast *ports.ForecastData
	err      error
	delay    time.Duration

	mu    sync.Mutex
	calls int
}

func (p *testWeatherProvider) GetCurrentWeather(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	if err := p.call(ctx); err != nil {
		return nil, err
	}
	return p.current, nil
}

func (p *testWeatherProvider) GetForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	if err := p.call(ctx); err != nil {
		return nil, err
	}
	return p.forecast, nil
}

func (p *testWeatherProvider) GetProviderName() string {
	return p.name
}

func (p *testWeatherProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *testWeatherProvider) call(ctx context.Context) error {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return p.err
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	entry := logEntry{level: level, message: message, fields: make(map[string]interface{}, len(fields))}
	for _, field := range fields {
		entry.fields[field.Key] = field.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func (l *testLogger) levelEntries(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []logEntry
	for _, entry := range l.entries {
		if entry.level == level {
			out = append(out, entry)
		}
	}
	return out
}

func mustUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
