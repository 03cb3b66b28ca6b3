// Package graph computes the entity generation order from the declared
// parent relationships. The order is recomputed on every run rather than
// hardcoded, so adding an entity type only requires declaring its parents.
package graph

import "fmt"

// Dependencies maps each node to the nodes it depends on. A node with no
// dependencies maps to nil.
type Dependencies map[string][]string

// Order returns nodes sorted so every node appears after all of its
// dependencies. Ties are broken by the position in names, which makes the
// result deterministic across runs; names must list every node exactly once.
// A dependency cycle or an edge to an undeclared node is an error.
func Order(names []string, deps Dependencies) ([]string, error) {
	if len(names) != len(deps) {
		return nil, fmt.Errorf("dependency graph lists %d nodes but %d were named", len(deps), len(names))
	}

	visited := make(map[string]bool, len(names))
	walking := make(map[string]bool, len(names))
	order := make([]string, 0, len(names))

	var visit func(string) error
	visit = func(name string) error {
		if walking[name] {
			return fmt.Errorf("dependency cycle through %q", name)
		}
		if visited[name] {
			return nil
		}
		parents, ok := deps[name]
		if !ok {
			return fmt.Errorf("dependency on undeclared node %q", name)
		}

		walking[name] = true
		for _, parent := range parents {
			if parent == name {
				continue
			}
			if err := visit(parent); err != nil {
				return err
			}
		}
		walking[name] = false

		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
