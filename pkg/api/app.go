package api

import (
	"context"

	"github.com/atomo10/atomo/pkg/database"
	"github.com/atomo10/atomo/pkg/lines"
	"github.com/atomo10/atomo/pkg/metrics"
	"github.com/atomo10/atomo/pkg/ocr"
)

// Application holds the handles every request shares. It is built once in the CLI and passed down.
type Application struct {
	Lines   *lines.Repository
	OCR     ocr.Parser
	Metrics *metrics.Collector

	Health func(ctx context.Context) *database.Health
}
