package trace

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultLogFile is the action log written next to the working directory.
	DefaultLogFile = "process_log.txt"

	openedEvent = "Process Manager initialized."
	closedEvent = "Process Manager terminated."
)

// actionFormatter renders "[<ctime timestamp>] <event>" lines.
type actionFormatter struct{}

func (actionFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("[%s] %s\n", e.Time.Format(time.ANSIC), e.Message)), nil
}

// FileLog is an append-only action log. It writes through a dedicated
// logrus logger so the action log never mixes with diagnostic output.
type FileLog struct {
	logger *logrus.Logger
	closer io.Closer
}

// OpenFileLog opens (or creates) path in append mode and records the opening
// event. A non-empty session is appended to the opening record.
func OpenFileLog(path, session string) (*FileLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open action log %q: %w", path, err)
	}
	fl := newFileLog(f, f)
	fl.open(session)
	return fl, nil
}

// NewWriterLog builds a FileLog over an arbitrary writer. Close does not close w.
func NewWriterLog(w io.Writer, session string) *FileLog {
	fl := newFileLog(w, nil)
	fl.open(session)
	return fl
}

func newFileLog(w io.Writer, c io.Closer) *FileLog {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(actionFormatter{})
	logger.SetLevel(logrus.InfoLevel)
	return &FileLog{logger: logger, closer: c}
}

func (fl *FileLog) open(session string) {
	if session == "" {
		fl.Record(openedEvent)
		return
	}
	fl.Record(fmt.Sprintf("%s Session %s", openedEvent, session))
}

// Record appends one action line.
func (fl *FileLog) Record(event string) {
	fl.logger.Info(event)
}

// Close records the closing event and releases the underlying file.
func (fl *FileLog) Close() error {
	fl.Record(closedEvent)
	if fl.closer == nil {
		return nil
	}
	return fl.closer.Close()
}
