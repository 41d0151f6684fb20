package timer

// Snapshot is the persistable state of a timer.
type Snapshot struct {
	Name      string  `cbor:"1,keyasint,omitempty"`
	Mode      Mode    `cbor:"2,keyasint"`
	Seconds   float64 `cbor:"3,keyasint"`
	Running   bool    `cbor:"4,keyasint"`
	Ascending bool    `cbor:"5,keyasint,omitempty"`
}

func (t *Timer) Snapshot() Snapshot {
	return Snapshot{
		Name:      t.name,
		Mode:      t.mode,
		Seconds:   t.seconds.Value(),
		Running:   t.running,
		Ascending: t.ascending,
	}
}

// Restore rebuilds a timer from snap on h and starts it if it was running.
// opts are applied after the snapshot's own settings.
func Restore(snap Snapshot, h Host, opts ...Option) *Timer {
	base := []Option{WithName(snap.Name)}
	if snap.Ascending {
		base = append(base, WithAscending())
	}
	t := New(snap.Seconds, snap.Mode, h, append(base, opts...)...)
	if snap.Running {
		t.Start()
	}
	return t
}
