package reading

import "github.com/readerline/readerline/internal/library"

// sessionReadyMsg carries the outcome of acquiring a session.
type sessionReadyMsg struct {
	acq *library.Acquisition
	err error
}
