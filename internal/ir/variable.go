package ir

// Variable is a typed mutable slot read and written by Get/Set values.
// It is the one escape from the graph-as-definition model: passes that
// cannot express a dataflow fact as value children route it through a
// variable instead.
type Variable struct {
	Index VariableID
	Type  Type
}
