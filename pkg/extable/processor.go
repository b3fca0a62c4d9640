package extable

import (
	"github.com/ukaji3/extable-go/pkg/extable/query"
	"github.com/ukaji3/extable-go/pkg/extable/store"
)

// State is the lifecycle state of a Processor.
type State int

const (
	// StateUninitialized is the zero state, before any load was attempted.
	StateUninitialized State = iota
	// StateReady means the workbook loaded and queries are served.
	StateReady
	// StateFailed means the load failed; queries report ErrUninitialized.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Processor owns the tables of one workbook. The workbook is read exactly
// once, in NewProcessor; there is no reload. A Processor is safe for
// concurrent use after construction.
type Processor struct {
	path   string
	state  State
	err    error
	engine *query.Engine
}

// NewProcessor loads, segments and indexes the workbook at path. A load
// failure does not return an error: the Processor is returned in
// StateFailed and every query reports ErrUninitialized.
func NewProcessor(path string, opts Options) *Processor {
	log := opts.logger()
	p := &Processor{path: path}

	wb, err := Load(path, opts)
	if err != nil {
		log.Error("Failed to initialize Excel processor: %v", err)
		p.state = StateFailed
		p.err = err
		return p
	}

	s := store.Build(Segment(wb), log)
	p.engine = query.NewEngine(s)
	p.state = StateReady
	log.Info("Excel processor initialized successfully (%d tables from %s)", s.Len(), wb.BookName)
	return p
}

// Path returns the workbook path the Processor was built from.
func (p *Processor) Path() string { return p.path }

// State returns the lifecycle state.
func (p *Processor) State() State { return p.state }

// Err returns the load error of a failed Processor.
func (p *Processor) Err() error { return p.err }

// Ready reports whether queries can be served.
func (p *Processor) Ready() bool {
	return p != nil && p.state == StateReady
}

// ListTables returns every table name in load order.
func (p *Processor) ListTables() ([]string, error) {
	if !p.Ready() {
		return nil, ErrUninitialized
	}
	return p.engine.ListTables(), nil
}

// RowLabels returns the row labels of a table.
func (p *Processor) RowLabels(table string) ([]string, error) {
	if !p.Ready() {
		return nil, ErrUninitialized
	}
	return p.engine.RowLabels(table)
}

// RowSum returns the sum of the numeric cells of a row.
func (p *Processor) RowSum(table, row string) (float64, error) {
	if !p.Ready() {
		return 0, ErrUninitialized
	}
	return p.engine.RowSum(table, row)
}

// Describe returns the shape of a table.
func (p *Processor) Describe(table string) (*query.TableSummary, error) {
	if !p.Ready() {
		return nil, ErrUninitialized
	}
	return p.engine.Describe(table)
}
