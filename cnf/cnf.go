// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package cnf parses DIMACS CNF documents (with the weighted-model-counting
// "c weights" comment extension) and compiles them into a BDD over package
// bdd, grounded on spec.md §6's format description and on the engine's own
// Or/And fold.
package cnf

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/arborbdd/robdd"
)

// Doc is a parsed DIMACS CNF document: a clause list (each entry a signed,
// 1-based literal) plus an optional flattened per-variable (low, high)
// weight vector carried in the "c weights" extension.
type Doc struct {
	NumVars    int
	NumClauses int
	Clauses    [][]int
	Weights    []float64
}

// body is the participle grammar for the clause section: a flat token
// stream of signed integers. DIMACS clauses are delimited by a literal 0,
// which participle cannot distinguish from an ordinary Int token by type
// alone, so the 0-splitting happens as a post-processing step over the
// parsed flat list rather than in the grammar itself.
type body struct {
	Ints []int `@Int*`
}

var bodyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var bodyParser = participle.MustBuild[body](
	participle.Lexer(bodyLexer),
	participle.Elide("Whitespace"),
)

// Parse reads a DIMACS CNF document from r. The header ("p cnf <nvars>
// <nclauses>") and the "c weights ..."/"c ..." comment lines are picked out
// by a line scan — they are positional, one-line records, not a nested
// grammar — and the remaining clause lines are handed to the participle
// grammar as one flat integer stream, then split into clauses on the DIMACS
// 0 terminator.
func Parse(r io.Reader) (*Doc, error) {
	doc := &Doc{}
	var bodyLines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "c weights"):
			fields := strings.Fields(strings.TrimPrefix(line, "c weights"))
			doc.Weights = make([]float64, 0, len(fields))
			for _, f := range fields {
				w, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, errors.Wrapf(err, "cnf: bad weight %q", f)
				}
				doc.Weights = append(doc.Weights, w)
			}
		case strings.HasPrefix(line, "c"):
			continue
		case strings.HasPrefix(line, "p cnf"):
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, errors.Errorf("cnf: malformed header %q", line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrapf(err, "cnf: bad variable count in header %q", line)
			}
			c, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, errors.Wrapf(err, "cnf: bad clause count in header %q", line)
			}
			doc.NumVars, doc.NumClauses = n, c
		default:
			bodyLines = append(bodyLines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "cnf: reading input")
	}
	if doc.NumVars == 0 {
		return nil, errors.New("cnf: missing \"p cnf\" header")
	}

	parsed, err := bodyParser.ParseString("", strings.Join(bodyLines, " "))
	if err != nil {
		return nil, errors.Wrap(err, "cnf: parsing clause body")
	}

	var clause []int
	for _, v := range parsed.Ints {
		if v == 0 {
			doc.Clauses = append(doc.Clauses, clause)
			clause = nil
			continue
		}
		clause = append(clause, v)
	}
	if len(clause) > 0 {
		return nil, errors.New("cnf: clause body missing a trailing 0 terminator")
	}
	return doc, nil
}

// ParseString is a convenience wrapper around Parse for in-memory documents.
func ParseString(s string) (*Doc, error) {
	return Parse(strings.NewReader(s))
}

// Compile builds a BDD accepting exactly the satisfying assignments of doc
// over a Manager already declaring doc.NumVars variables (the caller owns
// the manager's lifetime, so variable declaration is not this package's
// responsibility), folding each clause's literals via Or and the clauses
// themselves via And — spec.md §6's "folds clauses via or/and", grounded on
// the engine's own variadic AndAll/OrAll. The returned WmcParams carries
// doc's weight vector, or uniform (1,1) weights when doc had none.
func Compile(m *bdd.Manager, doc *Doc) (bdd.BddPtr, *bdd.WmcParams[float64], error) {
	if doc.NumVars <= 0 {
		return bdd.BddPtr{}, nil, errors.New("cnf: document declares no variables")
	}

	formula := m.True()
	for _, lits := range doc.Clauses {
		clause := m.False()
		for _, lit := range lits {
			v, neg := lit, false
			if v < 0 {
				v, neg = -v, true
			}
			if v > doc.NumVars {
				return bdd.BddPtr{}, nil, errors.Errorf("cnf: literal %d exceeds declared variable count %d", lit, doc.NumVars)
			}
			clause = m.Or(clause, m.Var(bdd.VarLabel(v-1), !neg))
		}
		formula = m.And(formula, clause)
	}

	params := bdd.NewWmcParams(0.0, 1.0)
	switch {
	case len(doc.Weights) == 0:
		for i := 0; i < doc.NumVars; i++ {
			params.SetWeight(bdd.VarLabel(i), 1.0, 1.0)
		}
	case len(doc.Weights) == 2*doc.NumVars:
		for i := 0; i < doc.NumVars; i++ {
			params.SetWeight(bdd.VarLabel(i), doc.Weights[2*i], doc.Weights[2*i+1])
		}
	default:
		return bdd.BddPtr{}, nil, errors.Errorf("cnf: expected %d weights, got %d", 2*doc.NumVars, len(doc.Weights))
	}
	return formula, params, nil
}
