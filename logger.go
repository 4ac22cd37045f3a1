// logger.go
package translationaccuracy

import (
	"os"

	"github.com/baditaflorin/l"
)

// NewDefaultLogger creates an l.Logger with the module's default
// configuration. Useful for sharing one logger between a Comparator (via
// WithLogger) and the rest of an application.
func NewDefaultLogger() (l.Logger, error) {
	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:      os.Stdout,
		JsonFormat:  false,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
}
