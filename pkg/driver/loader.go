package driver

import (
	"fmt"
	"os"

	"smalljs/interpreter-go/pkg/ast"
	"smalljs/interpreter-go/pkg/parser"
)

// LoadScript reads and parses a script file into its top-level block.
func LoadScript(path string) (*ast.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	block, err := parser.Parse(string(data))
	if err != nil {
		return nil, err
	}
	return block, nil
}
