package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/advent/internal/app/template"
	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/ports"
	"github.com/aalvaropc/advent/internal/puzzle"
)

type SolveDays struct {
	inputs   ports.InputLoader
	catalog  ports.SolverCatalog
	parallel bool
	log      *slog.Logger
	now      func() time.Time
}

type SolveOption func(*SolveDays)

// WithParallel solves the requested days concurrently.
func WithParallel(enabled bool) SolveOption {
	return func(uc *SolveDays) { uc.parallel = enabled }
}

func WithLogger(log *slog.Logger) SolveOption {
	return func(uc *SolveDays) {
		if log != nil {
			uc.log = log
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) SolveOption {
	return func(uc *SolveDays) { uc.now = now }
}

func NewSolveDays(il ports.InputLoader, sc ports.SolverCatalog, opts ...SolveOption) *SolveDays {
	uc := &SolveDays{
		inputs:  il,
		catalog: sc,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute solves every requested day (all registered days when days is empty).
// Results come back in ascending day order. The first failure aborts the run and
// no partial results are returned.
func (uc *SolveDays) Execute(ctx context.Context, days []int) (domain.RunResult, error) {
	run := domain.RunResult{StartedAt: uc.now()}

	days, err := resolveDays(uc.catalog, days)
	if err != nil {
		run.EndedAt = uc.now()
		return run, err
	}

	uc.log.Info("solve.start", "days", days, "parallel", uc.parallel)

	results := make([]domain.DayResult, len(days))
	g, gctx := errgroup.WithContext(ctx)
	if uc.parallel {
		g.SetLimit(runtime.GOMAXPROCS(0))
	} else {
		g.SetLimit(1)
	}

	for i, day := range days {
		i, day := i, day
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, path, err := uc.inputs.LoadInput(day)
			if err != nil {
				return err
			}
			res, err := uc.solve(day, data, path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	err = g.Wait()
	run.EndedAt = uc.now()
	if err != nil {
		return run, err
	}
	run.Days = results
	return run, nil
}

// ExecuteInput solves one day against an explicit input file.
func (uc *SolveDays) ExecuteInput(ctx context.Context, day int, path string) (domain.RunResult, error) {
	run := domain.RunResult{StartedAt: uc.now()}
	if err := ctx.Err(); err != nil {
		run.EndedAt = uc.now()
		return run, err
	}

	data, err := uc.inputs.LoadFile(path)
	if err != nil {
		run.EndedAt = uc.now()
		return run, err
	}

	res, err := uc.solve(day, data, path)
	run.EndedAt = uc.now()
	if err != nil {
		return run, err
	}
	run.Days = []domain.DayResult{res}
	return run, nil
}

func (uc *SolveDays) solve(day int, data []byte, path string) (domain.DayResult, error) {
	solver, err := uc.catalog.Solver(day)
	if err != nil {
		return domain.DayResult{}, err
	}

	start := uc.now()
	parts, err := solveSafely(solver, data)
	if err != nil {
		uc.log.Error("day.failed", "day", day, "path", path, "error", err.Error())
		return domain.DayResult{}, fmt.Errorf("day %d (%s): %w", day, path, err)
	}

	for i := range parts {
		msg, err := template.RenderAnswer(parts[i])
		if err != nil {
			return domain.DayResult{}, fmt.Errorf("day %d part %d: %w", day, parts[i].Part, err)
		}
		parts[i].Message = msg
	}

	res := domain.DayResult{
		Info:      solver.Info(),
		InputPath: path,
		Parts:     parts,
		Elapsed:   uc.now().Sub(start),
	}
	uc.log.Info("day.solved", "day", day, "parts", len(parts), "elapsed", res.Elapsed.String())
	return res, nil
}

// solveSafely turns a solver panic into an error so one bad day cannot crash a run.
func solveSafely(s puzzle.Solver, data []byte) (parts []domain.PartAnswer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &domain.OpError{
				Op:   "usecase.solve",
				Kind: domain.KindExecution,
				Err:  fmt.Errorf("panic: %v", r),
			}
		}
	}()
	return s.Solve(data)
}
