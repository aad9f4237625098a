package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zeenix/tomling"
	"github.com/zeenix/tomling/internal/value"
	"github.com/zeenix/tomling/pkg"
)

type TomlParams struct {
	Find   string `json:"find"`   // dotted key path to look up, e.g. "package.name"
	Input  string `json:"input"`  // input file path
	Output string `json:"output"` // output file path; stdout if empty
}

var params *TomlParams

var tomlCmd = &cobra.Command{
	Use:   "toml",
	Short: "toml parse tools",
	Run:   tomlRun,
}

func init() {
	params = &TomlParams{}
	tomlCmd.Flags().StringVarP(&params.Find, "find", "f", "", "dotted key path to look up")
	tomlCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	tomlCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path")
}

func tomlRun(cmd *cobra.Command, args []string) {
	if len(params.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	exist, err := pkg.CheckFileExist(params.Input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	data, err := os.ReadFile(params.Input)
	if err != nil {
		fmt.Println("read input file error:", err)
		return
	}

	doc, err := tomling.Parse(data)
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	var result any = value.ToUntyped(doc)
	if params.Find != "" {
		result, err = lookup(doc, params.Find)
		if err != nil {
			fmt.Println("find error:", err)
			return
		}
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Println("marshal error:", err)
		return
	}

	if params.Output == "" {
		fmt.Println(string(out))
		return
	}
	if err := os.WriteFile(params.Output, out, 0o644); err != nil {
		fmt.Println("write output file error:", err)
	}
}

// lookup walks a dotted key path from the document root, erroring as soon
// as a segment names a key that isn't present or steps into a non-table.
func lookup(doc *value.Table, path string) (any, error) {
	cur := doc
	segs := strings.Split(path, ".")
	for i, seg := range segs {
		n, ok := cur.Get(seg)
		if !ok {
			return nil, fmt.Errorf("key %q not found", strings.Join(segs[:i+1], "."))
		}
		if i == len(segs)-1 {
			return value.ToUntyped(n), nil
		}
		t, ok := n.(*value.Table)
		if !ok {
			return nil, fmt.Errorf("key %q is not a table", strings.Join(segs[:i+1], "."))
		}
		cur = t
	}
	return value.ToUntyped(cur), nil
}
