package latex

import (
	"strconv"
	"strings"
)

// secnumdepth is the deepest numbered section level
const secnumdepth = 4

type counter struct {
	value  int
	parent string // section command which resets the counter
}

// counters keep section and theorem numbers while the tree is built
type counters struct {
	sections [7]int
	top      int // shallowest section level used in the document
	values   map[string]*counter
}

func newCounters() *counters {
	return &counters{values: map[string]*counter{}}
}

// section steps section counter at a given depth and returns the number of
// the new section, empty if sections of this depth are not numbered
func (c *counters) section(depth int) string {
	if depth <= 0 || depth >= len(c.sections) {
		return ""
	}

	if c.top == 0 || depth < c.top {
		c.top = depth
	}

	c.sections[depth]++
	for d := depth + 1; d < len(c.sections); d++ {
		c.sections[d] = 0
	}

	for _, v := range c.values {
		if SectionDepth(v.parent) >= depth {
			v.value = 0
		}
	}

	if depth > secnumdepth {
		return ""
	}

	return c.sectionNumber(depth)
}

func (c *counters) sectionNumber(depth int) string {
	from := c.top
	if from == 0 || from > depth {
		from = depth
	}

	parts := make([]string, 0, depth-from+1)
	for d := from; d <= depth; d++ {
		parts = append(parts, strconv.Itoa(c.sections[d]))
	}

	return strings.Join(parts, ".")
}

// step increments named counter, parent is a section command which resets it
// and prefixes the number
func (c *counters) step(name, parent string) string {
	v, ok := c.values[name]
	if !ok {
		v = &counter{parent: parent}
		c.values[name] = v
	}

	v.value++

	number := strconv.Itoa(v.value)
	if depth := SectionDepth(v.parent); depth > 0 {
		number = c.sectionNumber(depth) + "." + number
	}

	return number
}
