package logger

import "go.uber.org/zap"

// New builds the process logger used by main and the async workers.
// Request logging stays on gin's own middleware.
func New(debug bool) *zap.Logger {
	if debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop()
		}
		return l
	}

	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
