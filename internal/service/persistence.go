package service

// Persistence reports the outcome of a best-effort write or read against
// the history database. The primary result of an operation is valid
// regardless of this outcome.
type Persistence struct {
	// Err is the storage error, if any.
	Err error

	// Attempted is false when the operation had nothing to store.
	Attempted bool
}

func attempted(err error) Persistence {
	return Persistence{Attempted: true, Err: err}
}

// Persisted reports whether the storage step ran and succeeded.
func (p Persistence) Persisted() bool {
	return p.Attempted && p.Err == nil
}

// Degraded reports whether the storage step ran and failed.
func (p Persistence) Degraded() bool {
	return p.Attempted && p.Err != nil
}
