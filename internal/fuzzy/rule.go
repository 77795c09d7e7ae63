package fuzzy

// session holds the per-evaluation fuzzified degrees, keyed by variable
// name then term name. It lives for a single Compute call.
type session map[string]map[string]float64

func (s session) degree(variable, term string) float64 {
	return s[variable][term] // missing variable or term reads as 0
}

// Expr is a fuzzy antecedent expression: term leaves combined with AND
// (min) and OR (max).
type Expr interface {
	strength(s session) float64
	refs() []TermRef
}

// TermRef names one (variable, term) pair.
type TermRef struct {
	Variable string
	Term     string
}

func (r TermRef) strength(s session) float64 { return s.degree(r.Variable, r.Term) }
func (r TermRef) refs() []TermRef            { return []TermRef{r} }

// Term is a leaf expression referencing one term of one variable.
func Term(variable, term string) Expr {
	return TermRef{Variable: variable, Term: term}
}

type andExpr struct{ left, right Expr }

func (e andExpr) strength(s session) float64 {
	l, r := e.left.strength(s), e.right.strength(s)
	if l < r {
		return l
	}
	return r
}

func (e andExpr) refs() []TermRef { return append(e.left.refs(), e.right.refs()...) }

// And combines two expressions with the min t-norm.
func And(left, right Expr) Expr { return andExpr{left: left, right: right} }

type orExpr struct{ left, right Expr }

func (e orExpr) strength(s session) float64 {
	l, r := e.left.strength(s), e.right.strength(s)
	if l > r {
		return l
	}
	return r
}

func (e orExpr) refs() []TermRef { return append(e.left.refs(), e.right.refs()...) }

// Or combines two expressions with the max t-conorm.
func Or(left, right Expr) Expr { return orExpr{left: left, right: right} }

// Rule pairs an antecedent expression with exactly one consequent term.
// Rules are immutable once the engine accepts them; firing strengths are
// computed fresh per evaluation and never stored on the rule.
type Rule struct {
	Label      string
	Antecedent Expr
	Consequent TermRef
}

// NewRule builds a rule. The label is used in explanations and events.
func NewRule(label string, antecedent Expr, consequentVar, consequentTerm string) Rule {
	return Rule{
		Label:      label,
		Antecedent: antecedent,
		Consequent: TermRef{Variable: consequentVar, Term: consequentTerm},
	}
}
