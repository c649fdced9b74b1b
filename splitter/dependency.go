package splitter

import "errors"

// CycleError is returned by VerifyAcyclic when the dependency graph formed
// by Entity.Dependencies edges is not a DAG (spec.md §3 invariant 5).
var CycleError = errors.New("splitter: dependency cycle detected")

// VerifyAcyclic walks every entity reachable from root and confirms the
// non-owning Dependencies edges form a DAG, exactly the way the teacher's
// TopologicalSort (sqlparser/sqldocument/topological_sort.go) walks
// Create.DependsOn edges: a visiting/visited pair of bool slices keyed by a
// once-assigned index, rather than recursion depth or timestamps.
func VerifyAcyclic(root *Entity) error {
	index := make(map[*Entity]int)
	var all []*Entity
	var collect func(e *Entity)
	collect = func(e *Entity) {
		if e == nil {
			return
		}
		if _, ok := index[e]; ok {
			return
		}
		index[e] = len(all)
		all = append(all, e)
		for _, c := range e.Children {
			collect(c)
		}
	}
	collect(root)

	// Dependency targets are drawn from the same tree, but collect them too
	// in case a future caller calls VerifyAcyclic on a detached sub-entity
	// whose dependency targets sit outside it.
	for i := 0; i < len(all); i++ {
		for _, dep := range all[i].Dependencies {
			collect(dep)
		}
	}

	visiting := make([]bool, len(all))
	visited := make([]bool, len(all))

	var visit func(i int) error
	visit = func(i int) error {
		if visited[i] {
			return nil
		}
		if visiting[i] {
			return CycleError
		}
		visiting[i] = true
		for _, dep := range all[i].Dependencies {
			if err := visit(index[dep]); err != nil {
				return err
			}
		}
		visiting[i] = false
		visited[i] = true
		return nil
	}

	for i := range all {
		if err := visit(i); err != nil {
			return err
		}
	}
	return nil
}
