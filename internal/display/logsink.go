package display

import "log"

// LogSink writes formatted rows to the process log for headless runs.
type LogSink struct{}

func NewLogSink() *LogSink { return &LogSink{} }

func (s *LogSink) PublishRow(row Row) {
	log.Printf("[ROW] %s", FormatRow(row))
}

func (s *LogSink) PublishStatus(status string) {
	log.Printf("[STATUS] %s", status)
}
