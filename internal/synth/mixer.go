package synth

import "sync"

// maxSources caps simultaneous tones; the oldest is dropped first.
const maxSources = 32

// mixer mixes multiple tones into a single 16-bit mono PCM stream.
// It never runs dry: with nothing to play it produces silence.
type mixer struct {
	mu      sync.Mutex
	sources []source
}

// Add starts a source on the next sample.
func (m *mixer) Add(s source) {
	m.mu.Lock()
	if len(m.sources) >= maxSources {
		m.sources = m.sources[1:]
	}
	m.sources = append(m.sources, s)
	m.mu.Unlock()
}

// Active returns the number of sources still playing.
func (m *mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sources)
}

// Read implements io.Reader for oto.Player.
func (m *mixer) Read(p []byte) (int, error) {
	samples := len(p) / 2

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := 0; i < samples; i++ {
		var sum float64
		for idx := 0; idx < len(m.sources); idx++ {
			val, done := m.sources[idx].Sample()
			sum += val
			if done {
				m.sources = append(m.sources[:idx], m.sources[idx+1:]...)
				idx--
			}
		}
		sum = min(max(sum, -1), 1)
		v := int16(sum * 32767)
		p[2*i] = byte(v)
		p[2*i+1] = byte(v >> 8)
	}
	return samples * 2, nil
}
