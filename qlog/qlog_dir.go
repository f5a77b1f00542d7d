package qlog

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/udpftp/udpftp/internal/utils"
	"github.com/udpftp/udpftp/logging"
)

// QlogDir contains the value of the QLOGDIR environment variable.
// If it is the empty string ("") no qlog output is written.
var QlogDir string

func init() {
	QlogDir = os.Getenv("QLOGDIR")
	if QlogDir != "" {
		if _, err := os.Stat(QlogDir); os.IsNotExist(err) {
			if err := os.MkdirAll(QlogDir, 0o755); err != nil {
				log.Fatalf("failed to create qlog dir %s: %v", QlogDir, err)
			}
		}
	}
}

// DefaultTracer creates a qlog file in the qlog directory specified by the QLOGDIR environment variable.
// File names are <connection ID>_<perspective>.qlog.
// Returns nil if QLOGDIR is not set.
func DefaultTracer(ctx context.Context, p logging.Perspective, connID logging.ConnectionID) *logging.ConnectionTracer {
	return DirTracer(QlogDir)(ctx, p, connID)
}

// DirTracer is like DefaultTracer, but writes to dir instead of QLOGDIR.
// The directory must exist.
func DirTracer(dir string) func(context.Context, logging.Perspective, logging.ConnectionID) *logging.ConnectionTracer {
	return func(_ context.Context, p logging.Perspective, connID logging.ConnectionID) *logging.ConnectionTracer {
		if dir == "" {
			return nil
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.qlog", connID, p))
		f, err := os.Create(path)
		if err != nil {
			log.Printf("Failed to create qlog file %s: %s", path, err.Error())
			return nil
		}
		return NewConnectionTracer(utils.NewBufferedWriteCloser(bufio.NewWriter(f), f), p, connID)
	}
}
