package stub

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/jumppad-labs/hdltarget/design"
	"github.com/jumppad-labs/hdltarget/errors"
)

const (
	blockStep = 4
	subStep   = 2
)

// RenderStatement writes the statement tree rooted at stmt to w, indenting
// the first line by indent spaces. Statements with no rendering rule are
// written as a diagnostic line, the rest of the tree is still written and
// an unsupported construct error is returned for each of them. A nil stmt
// is written as an empty statement.
func RenderStatement(w io.Writer, stmt design.Statement, indent int) error {
	r := &renderer{w: w}
	r.statement(stmt, indent)

	return stderrors.Join(r.errs...)
}

type renderer struct {
	w    io.Writer
	errs []error
}

func (r *renderer) line(indent int, format string, args ...interface{}) {
	fmt.Fprintf(r.w, "%*s%s\n", indent, "", fmt.Sprintf(format, args...))
}

func (r *renderer) statement(stmt design.Statement, ind int) {
	if stmt == nil {
		r.line(ind, ";")
		return
	}

	switch stmt.Type() {
	case design.StatementAssign:
		r.line(ind, "? = ?;")
		return

	case design.StatementBlock:
		if b, ok := stmt.(design.Block); ok {
			r.block(b, ind)
			return
		}

	case design.StatementCondit:
		if c, ok := stmt.(design.Condit); ok {
			r.condit(c, ind)
			return
		}

	case design.StatementDelay:
		if d, ok := stmt.(design.Delay); ok {
			r.line(ind, "#%d", d.DelayValue())
			r.statement(d.Sub(), ind+subStep)
			return
		}

	case design.StatementNoop:
		r.line(ind, "/* noop */;")
		return

	case design.StatementSTask:
		if t, ok := stmt.(design.SysTask); ok {
			r.line(ind, "%s(...);", t.TaskName())
			return
		}

	case design.StatementWait:
		if wt, ok := stmt.(design.Wait); ok {
			r.line(ind, "@(...)")
			r.statement(wt.Sub(), ind+subStep)
			return
		}

	case design.StatementWhile:
		if wh, ok := stmt.(design.While); ok {
			r.line(ind, "while (<?>)")
			r.statement(wh.Sub(), ind+subStep)
			return
		}
	}

	r.unknown(stmt, ind)
}

func (r *renderer) block(b design.Block, ind int) {
	r.line(ind, "begin")
	for i := uint(0); i < b.Count(); i++ {
		r.statement(b.Stmt(i), ind+blockStep)
	}
	r.line(ind, "end")
}

func (r *renderer) condit(c design.Condit, ind int) {
	r.line(ind, "if (...)")

	// statement(nil) writes the empty statement for a missing true branch
	r.statement(c.True(), ind+blockStep)

	if f := c.False(); f != nil {
		r.line(ind, "else")
		r.statement(f, ind+blockStep)
	}
}

func (r *renderer) unknown(stmt design.Statement, ind int) {
	code := uint(stmt.Type())

	r.line(ind, "unknown statement type (%d)", code)
	r.errs = append(r.errs, errors.NewUnsupportedError("", fmt.Sprintf("statement type (%d)", code)))
}
