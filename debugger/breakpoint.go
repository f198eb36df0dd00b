// Copyright © 2024 The DDB authors

package debugger

import "github.com/google/go-dap"

// Breakpoint is a source location the backend should stop at. It is a
// plain value: the session's breakpoint manager owns identity,
// insertion and removal.
type Breakpoint struct {
	File string
	Line int
	// Condition is a backend-evaluated boolean expression; empty means
	// stop unconditionally.
	Condition string
}

// ProtocolBreakpoint projects the breakpoint into a DAP record under
// the identity the breakpoint manager assigned.
func (bp Breakpoint) ProtocolBreakpoint(id int) dap.Breakpoint {
	return dap.Breakpoint{
		Id:       id,
		Verified: true,
		Source: &dap.Source{
			Name: bp.File,
			Path: bp.File,
		},
		Line: bp.Line,
	}
}
