// Package driver fans binding out across independent compilation units.
// Grounded on the teacher's internal/driver/parallel.go: an errgroup-based
// worker pool over a fixed file list, each worker writing into its own
// pre-sized result slot so no mutex is needed. Concurrency lives here, at
// the outer driver, and nowhere inside a single Binder (spec.md §5: "a
// Binder instance is not safe for concurrent use by multiple goroutines
// binding into the same scope... independent compilation units may be
// bound concurrently").
package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/binder"
	"github.com/winging/slang/internal/boundtree"
	"github.com/winging/slang/internal/compilation"
	"github.com/winging/slang/internal/config"
	"github.com/winging/slang/internal/diag"
	"github.com/winging/slang/internal/source"
	"github.com/winging/slang/internal/symbols"
	"github.com/winging/slang/internal/types"
)

// Unit is one independent compilation unit: a syntax tree, the string
// interner its identifiers resolve through, the root scope the binder
// queries for name resolution, and the top-level statement list that makes
// up its body. Units never share a Scope with each other, so binding them
// concurrently never requires synchronizing a Binder against itself.
type Unit struct {
	Name    string
	AST     compilation.ASTBuilder
	Strings *source.Interner
	Scope   symbols.Scope
	Body    []ast.StmtID
}

// Result is one Unit's bound output.
type Result struct {
	Name  string
	Root  *boundtree.Stmt
	Diags *diag.Bag
}

// Status reports one unit's progress, mirroring the teacher's
// buildpipeline.Status shape (queued/working/done/error) narrowed to the
// one stage this driver has: binding.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusBinding Status = "binding"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for one named unit, grounded on the teacher's
// buildpipeline.Event — trimmed to the fields a single-stage driver needs.
type Event struct {
	Unit   string
	Status Status
}

// BindUnits binds each unit on its own Compilation/Binder pair, fanning out
// across opts.Jobs goroutines (0 meaning GOMAXPROCS, mirroring the
// teacher's TokenizeDir/ParseDir jobs parameter). Results are written into
// pre-sized slots keyed by each unit's index, so no result-slice mutex is
// needed — the same device the teacher's parallel.go uses. The first
// worker error (typically ctx cancellation) aborts the remaining unbound
// workers and is returned; finished slots are still valid.
// sharedTypes is the one type interner every unit in a build shares, so a
// symbol declared against one unit's scope (e.g. a package-level type)
// compares equal by TypeID against every other unit's references to it —
// spec.md §3's canonicalization is scoped to a whole program, not to a
// single file. Each unit still gets its own diagnostic bag (see
// compilation.NewWithTypes); only the type universe is shared.
func BindUnits(ctx context.Context, units []Unit, sharedTypes *types.Interner, opts config.BindOptions) ([]Result, error) {
	if len(units) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(units))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(units)))

	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = bindOne(u, sharedTypes, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// BindUnitsWithEvents behaves like BindUnits but also reports per-unit
// progress on events, which this function closes once every unit has
// reported its terminal status. Intended for a caller driving a progress
// UI (internal/ui) alongside the bind; callers that don't need progress
// should call BindUnits directly instead of draining a channel for no
// reason.
func BindUnitsWithEvents(ctx context.Context, units []Unit, sharedTypes *types.Interner, opts config.BindOptions, events chan<- Event) ([]Result, error) {
	defer close(events)
	if len(units) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(units))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(units)))

	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			events <- Event{Unit: u.Name, Status: StatusBinding}
			result := bindOne(u, sharedTypes, opts)
			results[i] = result
			if result.Diags.HasErrors() {
				events <- Event{Unit: u.Name, Status: StatusError}
			} else {
				events <- Event{Unit: u.Name, Status: StatusDone}
			}
			return nil
		})
	}

	err := g.Wait()
	return results, err
}

func bindOne(u Unit, sharedTypes *types.Interner, opts config.BindOptions) Result {
	comp := compilation.NewWithTypes(sharedTypes, opts.MaxDiagnostics)
	b := binder.New(comp, u.AST, u.Strings, u.Scope)

	children := make([]*boundtree.Stmt, 0, len(u.Body))
	for _, stmtID := range u.Body {
		children = append(children, b.BindStmt(stmtID))
	}
	root := &boundtree.Stmt{
		Kind: boundtree.StmtList,
		Data: boundtree.StatementListData{Children: children},
	}
	comp.Diags.Sort()
	comp.Diags.Dedup()
	return Result{Name: u.Name, Root: root, Diags: comp.Diags}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
