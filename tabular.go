package latex

// tabulate splits children of a tabular environment into rows of cells. Cells
// are separated by &, rows by \\ and \hline becomes a rule between rows.
func (b *builder) tabulate(env *Node) {
	var rows, cells, pending []*Node

	addCell := func(force bool) {
		if !force && blank(pending) {
			for _, n := range pending {
				b.tree.remove(n)
			}

			pending = nil
			return
		}

		cell := b.tree.node(CellKind)
		for _, n := range pending {
			attach(cell, n)
		}

		cells = append(cells, cell)
		pending = nil
	}

	addRow := func() {
		addCell(len(cells) > 0)

		if len(cells) == 0 {
			return
		}

		row := b.tree.node(RowKind)
		for _, cell := range cells {
			attach(row, cell)
		}

		rows = append(rows, row)
		cells = nil
	}

	for _, child := range env.Children {
		switch {
		case child.Kind == AlignKind:
			addCell(true)
			b.tree.remove(child)
		case isNewline(child):
			addRow()
			b.tree.remove(child)
		case isRule(child):
			addRow()

			rule := b.tree.node(RuleKind)
			rule.Name = child.Name
			rule.Source = child.Source
			rule.Line = child.Line

			rows = append(rows, rule)
			b.tree.remove(child)
		default:
			pending = append(pending, child)
		}
	}

	addRow()

	env.Children = nil
	for _, row := range rows {
		attach(env, row)
	}
}
