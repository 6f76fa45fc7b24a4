package game

import (
	"log/slog"
	"runtime"
)

// frameMonitor warns when the actual tick rate drops below target
type frameMonitor struct {
	threshold float64 // TPS below which a drop is reported
	warmup    int     // ticks ignored after start
	cooldown  int     // minimum ticks between warnings

	tick     int
	lastWarn int
}

func newFrameMonitor(tps int) *frameMonitor {
	cooldown := 10 * tps
	return &frameMonitor{
		threshold: float64(tps) * 55 / 60,
		warmup:    3 * tps,
		cooldown:  cooldown,
		lastWarn:  -cooldown,
	}
}

// observe records one tick and reports whether a drop was logged
func (m *frameMonitor) observe(actual float64, shots, asteroids int) bool {
	m.tick++
	if m.tick < m.warmup || actual >= m.threshold || m.tick-m.lastWarn < m.cooldown {
		return false
	}
	m.lastWarn = m.tick

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	Logger().Warn("frame rate drop",
		slog.Float64("tps", actual),
		slog.Int("tick", m.tick),
		slog.Int("shots", shots),
		slog.Int("asteroids", asteroids),
		slog.Uint64("heap_kb", ms.HeapAlloc/1024),
		slog.Uint64("num_gc", uint64(ms.NumGC)))
	return true
}
