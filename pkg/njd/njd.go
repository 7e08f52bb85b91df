package njd

// NJD is the mutable node vector owned by the pipeline driver from
// tokenization until label synthesis (spec §3 "Lifetime and ownership").
// Passes receive it and mutate Nodes in place; NJD itself never copies a
// Node.
type NJD struct {
	Nodes []*Node
}

// New returns an empty node vector.
func New() *NJD {
	return &NJD{}
}

// Append adds nodes built from one dictionary row (spec §4.1) to the end
// of the vector, preserving row order.
func (n *NJD) Append(nodes ...*Node) {
	n.Nodes = append(n.Nodes, nodes...)
}

// AppendFromRow decodes and appends one tokenizer row.
func (n *NJD) AppendFromRow(surface string, fields []string) error {
	nodes, err := NewNodesFromRow(surface, fields)
	if err != nil {
		return err
	}
	n.Append(nodes...)
	return nil
}

// RemoveSilentNodes drops every node whose pron is empty (spec §3
// invariant, §4.2 responsibility 3). It must run before label synthesis.
func (n *NJD) RemoveSilentNodes() {
	kept := n.Nodes[:0]
	for _, node := range n.Nodes {
		if node.IsSilent() {
			continue
		}
		kept = append(kept, node)
	}
	n.Nodes = kept
}

// MoraCount returns the total Mora count across all nodes.
func (n *NJD) MoraCount() int {
	total := 0
	for _, node := range n.Nodes {
		total += len(node.Pron)
	}
	return total
}

// String reconstructs the concatenation of every node's surface (spec
// §8 "idempotence" property and the barry_payne unknown-word scenario).
func (n *NJD) String() string {
	s := ""
	for _, node := range n.Nodes {
		s += node.Surface
	}
	return s
}
