package lint

import (
	"fmt"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Requirement is an external command a lint script calls.
type Requirement struct {
	Command string
	Script  string
}

// VerifyResult contains the result of looking up a requirement
type VerifyResult struct {
	Requirement Requirement
	Satisfied   bool
	Message     string
}

// Requirements lists the external commands the scripts call, in order of
// first use. Shell builtins and commands named by an expansion are skipped.
func Requirements(scripts []string) ([]Requirement, error) {
	var reqs []Requirement
	seen := make(map[string]bool)

	for _, script := range scripts {
		prog, err := syntax.NewParser().Parse(strings.NewReader(script), "")
		if err != nil {
			return nil, fmt.Errorf("%s: parse error: %w", script, err)
		}

		syntax.Walk(prog, func(node syntax.Node) bool {
			call, ok := node.(*syntax.CallExpr)
			if !ok || len(call.Args) == 0 {
				return true
			}
			name := call.Args[0].Lit()
			if name == "" || interp.IsBuiltin(name) || seen[name] {
				return true
			}
			seen[name] = true
			reqs = append(reqs, Requirement{Command: name, Script: script})
			return true
		})
	}

	return reqs, nil
}

// Verify checks that a requirement resolves on PATH
func Verify(req Requirement) VerifyResult {
	result := VerifyResult{Requirement: req}

	// Paths are run as given.
	if strings.Contains(req.Command, "/") {
		result.Satisfied = true
		return result
	}

	_, err := exec.LookPath(req.Command)
	result.Satisfied = err == nil
	if !result.Satisfied {
		result.Message = "Command not found: " + req.Command
	}
	return result
}

// VerifyAll checks all requirements
func VerifyAll(reqs []Requirement) []VerifyResult {
	results := make([]VerifyResult, len(reqs))
	for i, req := range reqs {
		results[i] = Verify(req)
	}
	return results
}

// HasUnsatisfied returns true if any requirement is not satisfied
func HasUnsatisfied(results []VerifyResult) bool {
	for _, r := range results {
		if !r.Satisfied {
			return true
		}
	}
	return false
}
