package ports

import (
	"context"
	"io"

	"github.com/lezer-parser/lezer/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and waits for it to complete. Output is
	// streamed to the given writers as it is produced; a non-zero exit is
	// returned as an error carrying the exit code.
	Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
