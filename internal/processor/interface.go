package processor

import (
	"context"
	"io"

	"github.com/nguyentantai21042004/scribe/internal/session"
)

// Processor turns an uploaded audio file into a transcribed session.
type Processor interface {
	Process(ctx context.Context, filename string, src io.Reader) (session.Session, error)
}
