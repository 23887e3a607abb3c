package engine

import (
	"strings"

	"github.com/sol25-lang/sol25/internal/ast"
	"github.com/sol25-lang/sol25/internal/frame"
	"github.com/sol25-lang/sol25/internal/interp/errors"
	"github.com/sol25-lang/sol25/internal/runtime"
)

// EvalExpr evaluates an <expr> node, returning an error if the expression
// turns out to be a bare class-name token - legal only directly as a
// send receiver, never as a general-purpose value. Every argument must
// yield a Value; a bare class-name token is not a legal argument.
func (in *Interp) EvalExpr(exprNode ast.Node) (runtime.Value, *errors.RuntimeError) {
	t, err := in.evalTarget(exprNode)
	if err != nil {
		return nil, err
	}
	if t.isClass {
		return nil, errors.Internal("class token %q used where a value was required", t.className)
	}
	return t.value, nil
}

// evalTarget evaluates an <expr> node into the receiver sum type, so the
// send path (evalSend) can detect a class-name-token receiver without a
// second evaluation pass.
func (in *Interp) evalTarget(exprNode ast.Node) (target, *errors.RuntimeError) {
	child := ast.Only(exprNode)
	switch child.Tag() {
	case "literal":
		return in.evalLiteral(child)
	case "var":
		return in.evalVar(child)
	case "block":
		return target{value: in.evalBlockLiteral(child)}, nil
	case "send":
		v, err := in.evalSend(child)
		if err != nil {
			return target{}, err
		}
		return target{value: v}, nil
	default:
		return target{}, errors.Internal("expr: unexpected child <%s>", child.Tag())
	}
}

func (in *Interp) evalLiteral(litNode ast.Node) (target, *errors.RuntimeError) {
	class := ast.MustAttr(litNode, "class")
	switch class {
	case runtime.ClassNil:
		return target{value: runtime.Nil}, nil
	case runtime.ClassTrue:
		return target{value: runtime.True}, nil
	case runtime.ClassFalse:
		return target{value: runtime.False}, nil
	case runtime.ClassInteger:
		n, perr := runtime.ParseInteger(ast.MustAttr(litNode, "value"))
		if perr != nil {
			return target{}, errors.Internal("literal: malformed integer %q: %v", ast.MustAttr(litNode, "value"), perr)
		}
		return target{value: runtime.NewInteger(n)}, nil
	case runtime.ClassString:
		return target{value: runtime.NewString(ast.MustAttr(litNode, "value"))}, nil
	case "class":
		return target{isClass: true, className: ast.MustAttr(litNode, "value")}, nil
	default:
		return target{}, errors.Internal("literal: unknown class %q", class)
	}
}

func (in *Interp) evalVar(varNode ast.Node) (target, *errors.RuntimeError) {
	name := ast.MustAttr(varNode, "name")
	switch name {
	case "nil":
		return target{value: runtime.Nil}, nil
	case "true":
		return target{value: runtime.True}, nil
	case "false":
		return target{value: runtime.False}, nil
	case "self", "super":
		frame, ferr := in.Frames.Top()
		if ferr != nil {
			return target{}, ferr
		}
		self, ok := frame.Self()
		if !ok {
			return target{}, errors.UndefinedVariable(name)
		}
		return target{value: self}, nil
	default:
		frame, ferr := in.Frames.Top()
		if ferr != nil {
			return target{}, ferr
		}
		v, ok := frame.Get(name)
		if !ok {
			return target{}, errors.UndefinedVariable(name)
		}
		return target{value: v}, nil
	}
}

// evalSend evaluates a <send> node: evaluate the receiver, detect a
// structural `super` receiver, evaluate the arguments left-to-right in
// order, and hand off to the dispatcher.
func (in *Interp) evalSend(sendNode ast.Node) (runtime.Value, *errors.RuntimeError) {
	selector := ast.MustAttr(sendNode, "selector")

	receiverExpr := sendNode.Child("expr")
	if receiverExpr == nil {
		return nil, errors.Internal("send: missing receiver <expr>")
	}
	// super is a syntactic property of the receiver expression, not of the
	// evaluated self Value (self and super evaluate identically); it only
	// changes where the dispatcher starts its MRO walk.
	isSuper := false
	if child := ast.Only(receiverExpr); child.Tag() == "var" && ast.AttrString(child, "name") == "super" {
		isSuper = true
	}

	recv, err := in.evalTarget(receiverExpr)
	if err != nil {
		return nil, err
	}

	argNodes := ast.ByOrder(sendNode.ChildrenByTag("arg"))
	args := make([]runtime.Value, len(argNodes))
	for i, a := range argNodes {
		exprNode := a.Child("expr")
		if exprNode == nil {
			return nil, errors.Internal("arg: missing <expr> child")
		}
		v, aerr := in.EvalExpr(exprNode)
		if aerr != nil {
			return nil, aerr
		}
		args[i] = v
	}

	return in.dispatch(recv, selector, args, isSuper)
}

func (in *Interp) evalBlockLiteral(blockNode ast.Node) runtime.Value {
	arity := 0
	if raw, ok := blockNode.Attr("arity"); ok {
		if n, err := parseArity(raw); err == nil {
			arity = n
		}
	}
	var definingSelf runtime.Value
	if f, ferr := in.Frames.Top(); ferr == nil {
		definingSelf, _ = f.Self()
	}
	return runtime.NewBlock(blockNode, arity, definingSelf)
}

func parseArity(s string) (int, error) {
	n, err := runtime.ParseInteger(s)
	return int(n), err
}

// ExecuteAssignments runs every <assign> child of blockNode, in ascending
// order, against the current (already-pushed) frame, and returns the last
// assignment's value, or Nil if there were none.
func (in *Interp) ExecuteAssignments(blockNode ast.Node) (runtime.Value, *errors.RuntimeError) {
	var result runtime.Value = runtime.Nil
	for _, assignNode := range ast.ByOrder(blockNode.ChildrenByTag("assign")) {
		varNode := assignNode.Child("var")
		exprNode := assignNode.Child("expr")
		v, err := in.EvalExpr(exprNode)
		if err != nil {
			return nil, err
		}
		frame, ferr := in.Frames.Top()
		if ferr != nil {
			return nil, ferr
		}
		name := ast.MustAttr(varNode, "name")
		if aerr := frame.Assign(name, v); aerr != nil {
			return nil, aerr
		}
		result = v
	}
	return result, nil
}

// ExecuteBlockWithArgs sorts the block's declared parameters by order,
// checks arity against the evaluated args, pushes a frame with
// definingSelf and the parameter bindings, runs the assignments, and pops
// the frame on every exit path - including an error from inside the
// assignments. definingSelf is nil for a block with no self, which can
// only happen at top level.
func (in *Interp) ExecuteBlockWithArgs(blockNode ast.Node, definingSelf runtime.Value, args []runtime.Value) (runtime.Value, *errors.RuntimeError) {
	paramNodes := ast.ByOrder(blockNode.ChildrenByTag("parameter"))
	if len(paramNodes) != len(args) {
		return nil, synthesizedArityError(definingSelf, len(args))
	}
	paramNames := make([]string, len(paramNodes))
	for i, p := range paramNodes {
		paramNames[i] = ast.MustAttr(p, "name")
	}

	f, ferr := frame.New(definingSelf, paramNames, args)
	if ferr != nil {
		return nil, ferr
	}

	in.Frames.Push(f)
	if in.MaxDepth > 0 && in.Frames.Depth() > in.MaxDepth {
		_, _ = in.Frames.Pop()
		return nil, errors.Internal("frame stack exceeded maximum depth (%d)", in.MaxDepth)
	}
	result, err := in.ExecuteAssignments(blockNode)
	if _, perr := in.Frames.Pop(); perr != nil {
		// Popping a frame we just pushed can only fail if something else
		// already corrupted the stack - an invariant violation in its own
		// right, but don't mask the original error if there was one.
		if err == nil {
			return nil, perr
		}
	}
	return result, err
}

func synthesizedArityError(self runtime.Value, argc int) *errors.RuntimeError {
	className := "Object"
	if self != nil {
		className = self.ClassName()
	}
	return errors.DoesNotUnderstand(className, valueSelector(argc))
}

// valueSelector builds the "value"/"value:"/"value:value:"/... selector
// for an arity, for reporting a DNU when a Block is sent the wrong one.
func valueSelector(n int) string {
	if n == 0 {
		return "value"
	}
	return strings.Repeat("value:", n)
}
