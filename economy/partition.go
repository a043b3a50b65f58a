package economy

import (
	"sort"

	"github.com/satisgraphery/valuate/recipe"
)

// SeparateEconomies splits recipes into independent economies. Each recipe
// links every part it touches into a clique, so strongly connected
// components of the resulting (symmetric) part graph coincide with its
// connected components: maximal sets of mutually reachable parts. One
// economy is emitted per component, containing every recipe touching any
// of its parts; since a recipe's parts all land in the same component,
// every recipe belongs to exactly one economy.
//
// Economies are ordered by their lexicographically smallest part, so the
// output is deterministic for a given recipe set.
func SeparateEconomies(recipes map[string]recipe.Recipe) []map[string]recipe.Recipe {
	// 1. Collect all parts and build the clique adjacency plus a
	//    part -> touching-recipes index.
	adjacency := make(map[string]map[string]bool)
	partRecipes := make(map[string][]string)
	names := sortedRecipeNames(recipes)
	var name, part, other string
	for _, name = range names {
		r := recipes[name]
		touched := make([]string, 0, len(r.Inputs)+len(r.Outputs))
		for part = range r.Inputs {
			touched = append(touched, part)
		}
		for part = range r.Outputs {
			touched = append(touched, part)
		}
		for _, part = range touched {
			if adjacency[part] == nil {
				adjacency[part] = make(map[string]bool)
			}
			for _, other = range touched {
				adjacency[part][other] = true
			}
			partRecipes[part] = append(partRecipes[part], name)
		}
	}

	// 2. Freeze the part universe into a stable index.
	parts := make([]string, 0, len(adjacency))
	for part = range adjacency {
		parts = append(parts, part)
	}
	sort.Strings(parts)
	partIndex := make(map[string]int, len(parts))
	for i, p := range parts {
		partIndex[p] = i
	}
	neighbors := make([][]int, len(parts))
	for i, p := range parts {
		for other = range adjacency[p] {
			neighbors[i] = append(neighbors[i], partIndex[other])
		}
		sort.Ints(neighbors[i])
	}

	// 3. Tarjan over the part graph.
	components := stronglyConnected(neighbors)

	// 4. Map each component back to its recipe set.
	result := make([]map[string]recipe.Recipe, 0, len(components))
	for _, component := range components {
		economy := make(map[string]recipe.Recipe)
		for _, p := range component {
			for _, name = range partRecipes[parts[p]] {
				economy[name] = recipes[name]
			}
		}
		result = append(result, economy)
	}

	// 5. Order economies by their smallest part for reproducible output.
	smallest := make([]string, len(components))
	for i, component := range components {
		low := parts[component[0]]
		for _, p := range component[1:] {
			if parts[p] < low {
				low = parts[p]
			}
		}
		smallest[i] = low
	}
	sort.Sort(&economyOrder{keys: smallest, economies: result})

	return result
}

// tarjanFrame is one explicit-stack activation record of strongconnect.
type tarjanFrame struct {
	vertex int
	next   int // index of the next neighbor to examine
}

// stronglyConnected runs Tarjan's algorithm (index/lowlink/stack
// formulation) with an explicit DFS stack, so deep part chains cannot
// overflow the goroutine stack. Vertices are visited in ascending order.
//
// Time: O(V + E). Memory: O(V).
func stronglyConnected(neighbors [][]int) [][]int {
	n := len(neighbors)
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for v := 0; v < n; v++ {
		index[v] = -1
	}

	var (
		counter    int
		stack      []int
		frames     []tarjanFrame
		components [][]int
	)

	discover := func(v int) {
		index[v] = counter
		lowlink[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true
		frames = append(frames, tarjanFrame{vertex: v})
	}

	for root := 0; root < n; root++ {
		if index[root] != -1 {
			continue
		}
		discover(root)

		for len(frames) > 0 {
			frame := &frames[len(frames)-1]
			v := frame.vertex

			// Advance to the next unexplored neighbor, if any.
			if frame.next < len(neighbors[v]) {
				w := neighbors[v][frame.next]
				frame.next++
				if index[w] == -1 {
					discover(w)
				} else if onStack[w] {
					lowlink[v] = minInt(lowlink[v], index[w])
				}

				continue
			}

			// All neighbors done: pop a component if v is a root,
			// then propagate lowlink to the parent frame.
			if lowlink[v] == index[v] {
				var component []int
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					component = append(component, w)
					if w == v {
						break
					}
				}
				components = append(components, component)
			}
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := frames[len(frames)-1].vertex
				lowlink[parent] = minInt(lowlink[parent], lowlink[v])
			}
		}
	}

	return components
}

// economyOrder sorts economies and their ordering keys in lockstep.
type economyOrder struct {
	keys      []string
	economies []map[string]recipe.Recipe
}

func (o *economyOrder) Len() int           { return len(o.keys) }
func (o *economyOrder) Less(i, j int) bool { return o.keys[i] < o.keys[j] }
func (o *economyOrder) Swap(i, j int) {
	o.keys[i], o.keys[j] = o.keys[j], o.keys[i]
	o.economies[i], o.economies[j] = o.economies[j], o.economies[i]
}

// sortedRecipeNames returns the recipe names in lexicographic order.
func sortedRecipeNames(recipes map[string]recipe.Recipe) []string {
	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
