package shunt

// marker is an entry on the operator stack: either a pending operator or an
// open parenthesis.
type marker struct {
	// op is the pending operator. It is opNone for an open parenthesis.
	op Operator
	// col is the position of the token that pushed the marker.
	col int
	// nums is the count of numbers seen when an open parenthesis was
	// pushed, used to detect empty groups.
	nums int
}

func (m marker) open() bool {
	return m.op == opNone
}

// machine holds the two stacks for a single evaluation.
type machine struct {
	vals []float64
	ops  []marker
	// nums is the count of numbers seen so far.
	nums int
	// col and tok are the position and text of the current token.
	col int
	tok string
}

// Evaluate computes the value of an infix expression given as a sequence of
// tokens. Each token must be a decimal number, one of the operators in
// Operators, or a parenthesis. Operators of equal precedence group from the
// left, so "2 ^ 3 ^ 2" is 64.
//
// If the tokens do not form an expression, the error is an
// *InvalidTokenError or a *MalformedExpressionError and the result is 0.
// Evaluate stops at the first error. It is safe to call concurrently.
func Evaluate(tokens []string) (float64, error) {
	m := machine{
		vals: make([]float64, 0, len(tokens)/2+1),
		ops:  make([]marker, 0, len(tokens)/2+1),
	}
	for i, tok := range tokens {
		m.col, m.tok = i+1, tok
		if err := m.step(); err != nil {
			return 0, err
		}
	}
	m.col, m.tok = len(tokens)+1, ""
	for len(m.ops) > 0 {
		if top := m.top(); top.open() {
			return 0, &MalformedExpressionError{Col: top.col, Token: "(", Problem: UnbalancedOpen}
		}
		if err := m.reduce(); err != nil {
			return 0, err
		}
	}
	switch len(m.vals) {
	case 0:
		return 0, m.malformed(EmptyExpression)
	case 1:
		return m.vals[0], nil
	default:
		return 0, m.malformed(ExtraOperand)
	}
}

// EvalString is a shortcut to split src into Fields and Evaluate them.
func EvalString(src string) (float64, error) {
	return Evaluate(Fields(src))
}

// step consumes the current token.
func (m *machine) step() error {
	switch classify(m.tok) {
	case tokenNum:
		m.vals = append(m.vals, num(m.tok))
		m.nums++
	case tokenOpen:
		m.ops = append(m.ops, marker{col: m.col, nums: m.nums})
	case tokenClose:
		for {
			if len(m.ops) == 0 {
				return m.malformed(UnbalancedClose)
			}
			if top := m.top(); top.open() {
				if m.nums == top.nums {
					return m.malformed(EmptyExpression)
				}
				m.ops = m.ops[:len(m.ops)-1]
				return nil
			}
			if err := m.reduce(); err != nil {
				return err
			}
		}
	case tokenOp:
		op, _ := LookupOperator(m.tok)
		for len(m.ops) > 0 {
			top := m.top()
			if top.open() || top.op.Precedence() < op.Precedence() {
				break
			}
			if err := m.reduce(); err != nil {
				return err
			}
		}
		m.ops = append(m.ops, marker{op: op, col: m.col})
	default:
		return &InvalidTokenError{Col: m.col, Token: m.tok}
	}
	return nil
}

// reduce pops an operator and its two operands and pushes the result. The
// top of the operator stack must be an operator.
func (m *machine) reduce() error {
	top := m.top()
	m.ops = m.ops[:len(m.ops)-1]
	if len(m.vals) < 2 {
		return &MalformedExpressionError{Col: top.col, Token: top.op.String(), Problem: MissingOperand}
	}
	y := m.vals[len(m.vals)-1]
	x := m.vals[len(m.vals)-2]
	m.vals = m.vals[:len(m.vals)-1]
	m.vals[len(m.vals)-1] = top.op.Apply(x, y)
	return nil
}

// top is a shortcut to get the top of the operator stack.
func (m *machine) top() marker {
	return m.ops[len(m.ops)-1]
}

func (m *machine) malformed(p Problem) error {
	return &MalformedExpressionError{Col: m.col, Token: m.tok, Problem: p}
}
