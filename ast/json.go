package ast

import "github.com/segmentio/encoding/json"

// dump is the generic JSON shape every node serializes to: enough to
// reconstruct the tree's shape and spans without hand-writing a
// marshaler per node type. Field-specific data (Variable.Name,
// BinaryExpression.Operator, ...) is not part of this generic dump;
// callers that need it should walk the typed tree directly.
type dump struct {
	Kind     string `json:"kind"`
	Span     Span   `json:"span"`
	Children []dump `json:"children,omitempty"`
}

func toDump(n Node) dump {
	if n == nil {
		return dump{Kind: "nil"}
	}
	kids := n.Children()
	d := dump{Kind: n.Kind().String(), Span: n.Span()}
	if len(kids) > 0 {
		d.Children = make([]dump, len(kids))
		for i, k := range kids {
			d.Children[i] = toDump(k)
		}
	}
	return d
}

// ToJSON renders a node's shape (kind, span, and children recursively)
// as indented JSON.
func ToJSON(n Node) ([]byte, error) {
	return json.MarshalIndent(toDump(n), "", "  ")
}
