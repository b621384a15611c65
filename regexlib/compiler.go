package regexlib

// Implicit concatenation is recorded on the operator stack as '.'.
const opConcat = '.'

// parseState is the whole state of the two-stack compiler. step and reduce
// take a state and return its successor; a state must not be used again once
// it has been passed to either of them.
type parseState struct {
	operators []byte
	operands  []*NFA
	depth     int  // open '(' not yet closed
	pending   bool // the last thing scanned was an operand, so the next operand concatenates
}

func (s parseState) pushOperator(op byte) parseState {
	s.operators = append(s.operators, op)
	return s
}

func (s parseState) topOperator() (byte, bool) {
	if len(s.operators) == 0 {
		return 0, false
	}
	return s.operators[len(s.operators)-1], true
}

func (s parseState) popOperator() (parseState, byte) {
	op := s.operators[len(s.operators)-1]
	s.operators = s.operators[:len(s.operators)-1]
	return s, op
}

func (s parseState) pushOperand(f *NFA) parseState {
	s.operands = append(s.operands, f)
	return s
}

func (s parseState) popOperand() (parseState, *NFA, error) {
	if len(s.operands) == 0 {
		return s, nil, ErrOperandOperatorMismatch
	}
	f := s.operands[len(s.operands)-1]
	s.operands = s.operands[:len(s.operands)-1]
	return s, f, nil
}

// step consumes one token.
func step(s parseState, tok token) (parseState, error) {
	switch tok.typ {
	case tSymbol, tEpsilon:
		if s.pending {
			s = s.pushOperator(opConcat)
		}
		s = s.pushOperand(Literal(tok.ch))
		s.pending = true

	case tStar:
		var f *NFA
		var err error
		if s, f, err = s.popOperand(); err != nil {
			return s, err
		}
		s = s.pushOperand(Kleene(f))
		s.pending = true

	case tLParen:
		if s.pending {
			s = s.pushOperator(opConcat)
		}
		s = s.pushOperator('(')
		s.depth++
		s.pending = false

	case tRParen:
		if s.depth == 0 {
			return s, ErrUnbalancedParentheses
		}
		s.depth--
		for {
			op, ok := s.topOperator()
			if !ok {
				return s, ErrUnbalancedParentheses
			}
			if op == '(' {
				break
			}
			var err error
			if s, err = reduce(s); err != nil {
				return s, err
			}
		}
		s, _ = s.popOperator()
		s.pending = true

	case tUnion:
		s = s.pushOperator('|')
		s.pending = false
	}
	return s, nil
}

// reduce pops one operator and applies it to the operand stack.
func reduce(s parseState) (parseState, error) {
	var op byte
	var err error
	s, op = s.popOperator()
	switch op {
	case opConcat:
		var n, m *NFA
		if s, m, err = s.popOperand(); err != nil {
			return s, err
		}
		if s, n, err = s.popOperand(); err != nil {
			return s, err
		}
		return s.pushOperand(Concat(n, m)), nil

	case '|':
		var left, right *NFA
		if s, right, err = s.popOperand(); err != nil {
			return s, err
		}
		if top, ok := s.topOperator(); ok && top == opConcat {
			// The left side is a run of concatenations still on the
			// stack: collect it right to left, then fold left to right.
			var chain []*NFA
			var f *NFA
			if s, f, err = s.popOperand(); err != nil {
				return s, err
			}
			chain = append(chain, f)
			for top, ok := s.topOperator(); ok && top == opConcat; top, ok = s.topOperator() {
				if s, f, err = s.popOperand(); err != nil {
					return s, err
				}
				chain = append(chain, f)
				s, _ = s.popOperator()
			}
			left = chain[len(chain)-1]
			for i := len(chain) - 2; i >= 0; i-- {
				left = Concat(left, chain[i])
			}
		} else if s, left, err = s.popOperand(); err != nil {
			return s, err
		}
		return s.pushOperand(Union(left, right)), nil

	case '(':
		return s, ErrUnbalancedParentheses
	}
	return s, ErrOperandOperatorMismatch
}

// CompileNFA compiles pattern into a Thompson NFA with the two-stack
// operator-precedence algorithm. Star binds tightest, then implicit
// concatenation, then union; parentheses group.
func CompileNFA(pattern string) (*NFA, error) {
	toks, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}

	var s parseState
	for _, tok := range toks {
		if s, err = step(s, tok); err != nil {
			return nil, compileError(pattern, tok.pos, err)
		}
	}
	if s.depth > 0 {
		return nil, compileError(pattern, -1, ErrUnbalancedParentheses)
	}
	for len(s.operators) > 0 {
		if s, err = reduce(s); err != nil {
			return nil, compileError(pattern, -1, err)
		}
	}
	if len(s.operands) != 1 {
		return nil, compileError(pattern, -1, ErrOperandOperatorMismatch)
	}
	return s.operands[0], nil
}
