package logic

import (
	"encoding/json"
	"fmt"
)

// wireNode is the tagged-object form of a Node, e.g.
//
//	{"type":"Variable","name":"x","metavar":false,"bound":false}
//	{"type":"LogicalBinary","name":"implies","left":{...},"right":{...}}
type wireNode struct {
	Type      string      `json:"type"`
	Name      string      `json:"name,omitempty"`
	Metavar   *bool       `json:"metavar,omitempty"`
	Bound     *bool       `json:"bound,omitempty"`
	Symbol    *wireNode   `json:"symbol,omitempty"`
	Arguments []*wireNode `json:"arguments,omitempty"`
	Elements  []*wireNode `json:"elements,omitempty"`
	Variable  *wireNode   `json:"variable,omitempty"`
	Formula   *wireNode   `json:"formula,omitempty"`
	Left      *wireNode   `json:"left,omitempty"`
	Right     *wireNode   `json:"right,omitempty"`
}

// MarshalNode encodes n in the tagged-object JSON form.
func MarshalNode(n Node) ([]byte, error) {
	w, err := toWire(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalNode decodes a node from its tagged-object JSON form.
func UnmarshalNode(data []byte) (Node, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("UnmarshalNode: %w", err)
	}
	return fromWire(&w)
}

// JSONNode wraps a Node so it can sit inside JSON-encoded structs.
type JSONNode struct {
	Node Node
}

// MarshalJSON implements json.Marshaler.
func (j JSONNode) MarshalJSON() ([]byte, error) {
	return MarshalNode(j.Node)
}

// UnmarshalJSON implements json.Unmarshaler.
func (j *JSONNode) UnmarshalJSON(data []byte) error {
	n, err := UnmarshalNode(data)
	if err != nil {
		return err
	}
	j.Node = n
	return nil
}

// NodeList is a JSON-encodable sequence of nodes.
type NodeList []Node

// MarshalJSON encodes a nil list as [].
func (l NodeList) MarshalJSON() ([]byte, error) {
	ws, err := toWireList(l)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		ws = []*wireNode{}
	}
	return json.Marshal(ws)
}

func (l *NodeList) UnmarshalJSON(data []byte) error {
	var ws []*wireNode
	if err := json.Unmarshal(data, &ws); err != nil {
		return fmt.Errorf("NodeList: %w", err)
	}
	nodes, err := fromWireList(ws)
	if err != nil {
		return err
	}
	*l = nodes
	return nil
}

func toWire(n Node) (*wireNode, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", ErrMalformedNode)
	}
	w := &wireNode{Type: n.Kind().String()}
	var err error
	switch t := n.(type) {
	case *Variable:
		metavar, bound := t.Metavar, t.Bound
		w.Name, w.Metavar, w.Bound = t.Name, &metavar, &bound
	case *Const:
		w.Name = t.Name
	case *UnaryOp:
		w.Name = t.Name
	case *BinaryOp:
		w.Name = t.Name
	case *Application:
		if w.Symbol, err = toWire(t.Symbol); err != nil {
			return nil, err
		}
		if w.Arguments, err = toWireList(t.Args); err != nil {
			return nil, err
		}
	case *Tuple:
		if w.Elements, err = toWireList(t.Elements); err != nil {
			return nil, err
		}
	case *Set:
		if w.Elements, err = toWireList(t.Elements); err != nil {
			return nil, err
		}
	case *Quantifier:
		w.Name = t.Name
		if w.Variable, err = toWire(t.Var); err != nil {
			return nil, err
		}
		if w.Formula, err = toWire(t.Body); err != nil {
			return nil, err
		}
	case *LogicalUnary:
		w.Name = t.Name
		if w.Formula, err = toWire(t.Body); err != nil {
			return nil, err
		}
	case *LogicalBinary:
		w.Name = t.Name
		if w.Left, err = toWire(t.Left); err != nil {
			return nil, err
		}
		if w.Right, err = toWire(t.Right); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unsupported node %T", ErrMalformedNode, n)
	}
	return w, nil
}

func toWireList(nodes []Node) ([]*wireNode, error) {
	if nodes == nil {
		return nil, nil
	}
	out := make([]*wireNode, len(nodes))
	for i, n := range nodes {
		w, err := toWire(n)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func fromWire(w *wireNode) (Node, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: missing node", ErrMalformedNode)
	}
	kind, ok := ParseKind(w.Type)
	if !ok {
		return nil, fmt.Errorf("%w: unknown node type %q", ErrMalformedNode, w.Type)
	}
	switch kind {
	case KindVariable:
		if w.Name == "" {
			return nil, fmt.Errorf("%w: variable without a name", ErrMalformedNode)
		}
		v := &Variable{Name: w.Name}
		if w.Metavar != nil {
			v.Metavar = *w.Metavar
		}
		if w.Bound != nil {
			v.Bound = *w.Bound && !v.Metavar
		}
		return v, nil
	case KindConst:
		return &Const{Name: w.Name}, nil
	case KindUnaryOp:
		return &UnaryOp{Name: w.Name}, nil
	case KindBinaryOp:
		return &BinaryOp{Name: w.Name}, nil
	case KindApplication:
		symbol, err := fromWire(w.Symbol)
		if err != nil {
			return nil, err
		}
		args, err := fromWireList(w.Arguments)
		if err != nil {
			return nil, err
		}
		return &Application{Symbol: symbol, Args: args}, nil
	case KindTuple:
		elems, err := fromWireList(w.Elements)
		if err != nil {
			return nil, err
		}
		return &Tuple{Elements: elems}, nil
	case KindSet:
		elems, err := fromWireList(w.Elements)
		if err != nil {
			return nil, err
		}
		return &Set{Elements: elems}, nil
	case KindQuantifier:
		bv, err := fromWire(w.Variable)
		if err != nil {
			return nil, err
		}
		v, ok := bv.(*Variable)
		if !ok {
			return nil, fmt.Errorf("%w: quantifier binds a %s", ErrMalformedNode, bv.Kind())
		}
		body, err := fromWire(w.Formula)
		if err != nil {
			return nil, err
		}
		return &Quantifier{Name: w.Name, Var: v, Body: body}, nil
	case KindLogicalUnary:
		body, err := fromWire(w.Formula)
		if err != nil {
			return nil, err
		}
		return &LogicalUnary{Name: w.Name, Body: body}, nil
	case KindLogicalBinary:
		left, err := fromWire(w.Left)
		if err != nil {
			return nil, err
		}
		right, err := fromWire(w.Right)
		if err != nil {
			return nil, err
		}
		return &LogicalBinary{Name: w.Name, Left: left, Right: right}, nil
	}
	return nil, fmt.Errorf("%w: unknown node type %q", ErrMalformedNode, w.Type)
}

func fromWireList(ws []*wireNode) ([]Node, error) {
	if ws == nil {
		return nil, nil
	}
	out := make([]Node, len(ws))
	for i, w := range ws {
		n, err := fromWire(w)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
