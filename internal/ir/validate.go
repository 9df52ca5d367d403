package ir

import (
	"errors"
	"fmt"
)

// Validate checks procedure-wide structural invariants and returns all
// violations joined together, or nil.
//
// The mutation API treats these invariants as programmer contracts and
// panics at the point of misuse; Validate is the after-the-fact
// diagnostic for pass debugging, snapshot loading and tests.
func Validate(p *Procedure) error {
	if p == nil {
		return nil
	}
	var errs []error

	if err := validateEdgeDuality(p); err != nil {
		errs = append(errs, err)
	}
	if err := validateTerminals(p); err != nil {
		errs = append(errs, err)
	}
	if err := validateValueIDs(p); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// validateEdgeDuality checks A.successors ∋ B ⇔ B.predecessors ∋ A,
// and that predecessor lists carry no duplicates.
func validateEdgeDuality(p *Procedure) error {
	var errs []error
	for _, block := range p.blocks {
		for _, succ := range block.Successors() {
			if !hasPredecessor(p.Block(succ.Block), block.Index()) {
				errs = append(errs, fmt.Errorf(
					"block%d lists successor block%d, but block%d does not list block%d as predecessor",
					block.Index(), succ.Block, succ.Block, block.Index()))
			}
		}
		for i, pred := range block.Predecessors() {
			if !hasSuccessor(p.Block(pred), block.Index()) {
				errs = append(errs, fmt.Errorf(
					"block%d lists predecessor block%d, but block%d does not list block%d as successor",
					block.Index(), pred, pred, block.Index()))
			}
			for _, other := range block.Predecessors()[:i] {
				if other == pred {
					errs = append(errs, fmt.Errorf("block%d lists predecessor block%d twice", block.Index(), pred))
				}
			}
		}
	}
	return errors.Join(errs...)
}

// validateTerminals checks that every non-empty block ends in a
// terminal, that no terminal appears before the end, and that the
// successor-list shape matches the terminal's opcode.
func validateTerminals(p *Procedure) error {
	var errs []error
	for _, block := range p.blocks {
		values := block.Values()
		if len(values) == 0 {
			if len(block.Successors()) != 0 {
				errs = append(errs, fmt.Errorf("empty block%d has successors", block.Index()))
			}
			continue
		}

		last := p.Value(values[len(values)-1])
		if !last.Opcode().IsTerminal() {
			errs = append(errs, fmt.Errorf("block%d does not end in a terminal (ends in %s)",
				block.Index(), last.Kind))
		} else if want := last.Opcode().NumSuccessors(); len(block.Successors()) != want {
			errs = append(errs, fmt.Errorf("block%d ends in %s but has %d successors, want %d",
				block.Index(), last.Kind, len(block.Successors()), want))
		}

		for _, value := range values[:len(values)-1] {
			if p.Value(value).Opcode().IsTerminal() {
				errs = append(errs, fmt.Errorf("block%d has terminal v%d before the end", block.Index(), value))
			}
		}
	}
	return errors.Join(errs...)
}

// validateValueIDs checks that block contents and value children refer
// to registered values and blocks.
func validateValueIDs(p *Procedure) error {
	var errs []error
	numValues := ValueID(p.NumValues())
	numBlocks := BlockID(p.NumBlocks())

	for _, block := range p.blocks {
		for _, value := range block.Values() {
			if value < 0 || value >= numValues {
				errs = append(errs, fmt.Errorf("block%d holds unregistered value id v%d", block.Index(), value))
			}
		}
		for _, succ := range block.Successors() {
			if succ.Block < 0 || succ.Block >= numBlocks {
				errs = append(errs, fmt.Errorf("block%d targets unregistered block id %d", block.Index(), succ.Block))
			}
		}
		for _, pred := range block.Predecessors() {
			if pred < 0 || pred >= numBlocks {
				errs = append(errs, fmt.Errorf("block%d lists unregistered predecessor id %d", block.Index(), pred))
			}
		}
	}

	p.EachValue(func(id ValueID, v *Value) {
		for _, child := range v.Children {
			if child < 0 || child >= numValues {
				errs = append(errs, fmt.Errorf("v%d has unregistered child id v%d", id, child))
			}
		}
		if v.Opcode() == Get || v.Opcode() == Set {
			if v.Variable < 0 || int(v.Variable) >= p.NumVariables() {
				errs = append(errs, fmt.Errorf("v%d references unregistered variable id %d", id, v.Variable))
			}
		}
	})
	return errors.Join(errs...)
}

func hasPredecessor(b *BasicBlock, pred BlockID) bool {
	for _, p := range b.Predecessors() {
		if p == pred {
			return true
		}
	}
	return false
}

func hasSuccessor(b *BasicBlock, succ BlockID) bool {
	for _, s := range b.Successors() {
		if s.Block == succ {
			return true
		}
	}
	return false
}
