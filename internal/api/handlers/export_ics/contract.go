package export_ics

import "context"

type AppointmentsService interface {
	ExportICS(ctx context.Context, id int64) (string, error)
	ExportFeed(ctx context.Context) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
