// Copyright © 2024 The DDB authors

// Package debugger holds the variable-object model that bridges a
// GDB/MI backend and a DAP client: construction from parsed -var-create
// records, incremental merging of -var-update change records, compound
// classification, and projection into DAP variable records. Reference
// allocation, child fetching, and the MI transport belong to the
// session driver, not to this package.
package debugger

import (
	"github.com/USC-NSL-DDB/DDB/mi"
	"github.com/google/go-dap"
)

// unknownValue is displayed for a variable the backend has not yet
// evaluated.
const unknownValue = "<unknown>"

// elidedValue is the backend's placeholder for a compound value whose
// contents were not expanded inline.
const elidedValue = "{...}"

// VariableObject tracks one backend variable object across update
// cycles. Name, Exp, ThreadID, Frozen, NumChild and Ref are fixed at
// construction; ApplyChanges refreshes the rest. Instances are not safe
// for concurrent mutation; the session driver serializes updates.
type VariableObject struct {
	// Name is the backend-internal handle, unique per session.
	Name string
	// Exp is the user-facing expression the object was created from.
	Exp string
	// NumChild is the child count declared at creation. Zero does not
	// imply scalar; see IsCompound.
	NumChild int
	Type     string
	// Value is the last evaluated text. HasValue is false until the
	// backend reports one; that state renders as unknownValue, never as
	// an empty string.
	Value    string
	HasValue bool
	ThreadID int
	// Frozen reports whether backend re-evaluation is suspended for
	// this object.
	Frozen bool
	// Dynamic reports whether a pretty-printer provides this value's
	// children.
	Dynamic     bool
	DisplayHint string
	// HasMore is the backend's paging signal: children exist beyond
	// NumChild. Collapsed to a boolean even when the backend sends a
	// count; pagination counts are the session driver's concern.
	HasMore bool
	// Ref is the DAP variablesReference. The owning driver assigns it
	// exactly once, and only for compound objects, before the object is
	// exposed to the client. Zero means not expandable.
	Ref int
}

// NewVariableObject builds a variable object from a parsed -var-create
// result record. Optional fields degrade to zero values when absent.
// numchild must parse as a decimal because it drives compound
// classification, so a missing or malformed count is an error rather
// than a silent zero. name and exp are required by the MI contract but
// an omission is stored as-is, surfacing at first use instead of here.
func NewVariableObject(rec mi.Record) (*VariableObject, error) {
	numchild, err := rec.ChildCount("numchild")
	if err != nil {
		return nil, err
	}
	v := &VariableObject{
		NumChild: numchild,
		ThreadID: rec.Int("thread-id"),
		Frozen:   rec.Flag("frozen"),
		Dynamic:  rec.Flag("dynamic"),
		HasMore:  rec.Flag("has_more"),
	}
	v.Name, _ = rec.Field("name")
	v.Exp, _ = rec.Field("exp")
	v.Type, _ = rec.Field("type")
	v.DisplayHint, _ = rec.Field("displayhint")
	v.Value, v.HasValue = rec.Field("value")
	return v, nil
}

// ApplyChanges merges a -var-update change record into the object.
// Value, Dynamic, DisplayHint and HasMore are taken from the record
// unconditionally: an update means the backend considers them current,
// so an absent field clears the stored one. Type is replaced only when
// the record carries a truthy type_changed flag, because updates omit
// new_type whenever the type did not change. Malformed records degrade
// to the same absent handling; ApplyChanges never fails.
func (v *VariableObject) ApplyChanges(rec mi.Record) {
	v.Value, v.HasValue = rec.Field("value")
	v.Dynamic = rec.Flag("dynamic")
	v.DisplayHint, _ = rec.Field("displayhint")
	v.HasMore = rec.Flag("has_more")
	if rec.Flag("type_changed") {
		v.Type, _ = rec.Field("new_type")
	}
}

// IsCompound reports whether the object can be expanded into children.
// A declared child count is sufficient but not necessary: the backend
// elides unexpanded compound values as "{...}", and dynamic
// pretty-printers may declare numchild 0 while exposing children
// lazily, signalled only by an array or map display hint.
func (v *VariableObject) IsCompound() bool {
	return v.NumChild > 0 ||
		v.Value == elidedValue ||
		(v.Dynamic && (v.DisplayHint == "array" || v.DisplayHint == "map"))
}

// ProtocolVariable projects the object into a DAP variable record. The
// client sees the source expression as the name and the backend handle
// as the evaluate name, so hover and watch requests round-trip to the
// same variable object. Indexed and named child counts are left unset;
// the session driver populates them when it pages children.
func (v *VariableObject) ProtocolVariable() dap.Variable {
	value := v.Value
	if !v.HasValue {
		value = unknownValue
	}
	return dap.Variable{
		Name:               v.Exp,
		EvaluateName:       v.Name,
		Value:              value,
		Type:               v.Type,
		VariablesReference: v.Ref,
	}
}

// ExtendedVariable asks the evaluation dispatcher to fetch variable
// material that needs arguments beyond a bare handle. It is a typed
// carrier only: Options passes through to the backend command builder
// unvalidated. The one key current dispatchers use is "arg", an opaque
// evaluation context such as a stack-frame selector.
type ExtendedVariable struct {
	// Name is the variable-object handle the options apply to.
	Name    string
	Options map[string]any
}

// NewExtendedVariable returns a request descriptor for name with the
// given option bag.
func NewExtendedVariable(name string, options map[string]any) *ExtendedVariable {
	return &ExtendedVariable{Name: name, Options: options}
}
