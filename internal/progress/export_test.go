package progress

import "time"

// SetNow overrides the service clock for tests.
func SetNow(s *Service, now func() time.Time) {
	s.now = now
}
