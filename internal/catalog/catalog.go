package catalog

// Catalog is an immutable index over a set of component definitions.
// It is safe for concurrent reads.
type Catalog struct {
	defs  []ComponentDefinition
	byID  map[string]int
	byCat map[Category][]int
	byRol map[NarrativeRole][]int
}

// New indexes defs in the given order. Later duplicates of an id are ignored.
func New(defs []ComponentDefinition) *Catalog {
	c := &Catalog{
		byID:  make(map[string]int, len(defs)),
		byCat: make(map[Category][]int),
		byRol: make(map[NarrativeRole][]int),
	}
	for _, d := range defs {
		if _, dup := c.byID[d.ID]; dup {
			continue
		}
		i := len(c.defs)
		c.defs = append(c.defs, d)
		c.byID[d.ID] = i
		c.byCat[d.Category] = append(c.byCat[d.Category], i)
		c.byRol[d.AI.NarrativeRole] = append(c.byRol[d.AI.NarrativeRole], i)
	}
	return c
}

// Get looks up a definition by id.
func (c *Catalog) Get(id string) (ComponentDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return ComponentDefinition{}, false
	}
	return c.defs[i], true
}

// ByCategory returns the definitions in a category, in definition order.
func (c *Catalog) ByCategory(cat Category) []ComponentDefinition {
	return c.pick(c.byCat[cat])
}

// ByNarrativeRole returns the definitions serving a role, in definition order.
func (c *Catalog) ByNarrativeRole(role NarrativeRole) []ComponentDefinition {
	return c.pick(c.byRol[role])
}

// AllIDs returns every component id in definition order.
func (c *Catalog) AllIDs() []string {
	ids := make([]string, len(c.defs))
	for i, d := range c.defs {
		ids[i] = d.ID
	}
	return ids
}

// All returns a copy of every definition in definition order.
func (c *Catalog) All() []ComponentDefinition {
	out := make([]ComponentDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Len returns the number of definitions.
func (c *Catalog) Len() int { return len(c.defs) }

func (c *Catalog) pick(idx []int) []ComponentDefinition {
	out := make([]ComponentDefinition, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.defs[i])
	}
	return out
}

var defaultCatalog = New(definitions)

// Default returns the built-in catalog.
func Default() *Catalog { return defaultCatalog }

// Get looks up a built-in definition by id.
func Get(id string) (ComponentDefinition, bool) { return defaultCatalog.Get(id) }

// ByCategory returns built-in definitions in a category.
func ByCategory(cat Category) []ComponentDefinition { return defaultCatalog.ByCategory(cat) }

// ByNarrativeRole returns built-in definitions serving a role.
func ByNarrativeRole(role NarrativeRole) []ComponentDefinition {
	return defaultCatalog.ByNarrativeRole(role)
}

// AllIDs returns every built-in component id.
func AllIDs() []string { return defaultCatalog.AllIDs() }
