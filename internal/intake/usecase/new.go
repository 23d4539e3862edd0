package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-intake/internal/intake"
	"task-intake/pkg/datemath"
	pkgLog "task-intake/pkg/log"
	"task-intake/pkg/taskparse"
)

// Config holds the tunables for the intake UseCase.
type Config struct {
	MaxInputLength int
	CacheSize      int
	CacheTTL       time.Duration
	// Now supplies the reference instant when a request carries none. Defaults to time.Now.
	Now func() time.Time
}

type implUseCase struct {
	l         pkgLog.Logger
	parser    *taskparse.Parser
	formatter *taskparse.Formatter
	cal       *datemath.Calendar
	cache     *expirable.LRU[string, taskparse.ParseResult]
	maxLength int
	now       func() time.Time
}

// New creates a new intake UseCase instance.
func New(
	l pkgLog.Logger,
	parser *taskparse.Parser,
	formatter *taskparse.Formatter,
	cal *datemath.Calendar,
	cfg Config,
) intake.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:         l,
		parser:    parser,
		formatter: formatter,
		cal:       cal,
		cache:     expirable.NewLRU[string, taskparse.ParseResult](cfg.CacheSize, nil, cfg.CacheTTL),
		maxLength: cfg.MaxInputLength,
		now:       now,
	}
}
