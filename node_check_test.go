package zodgen

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/zodgen/ir"
)

// TestEmittedCodeEvaluates feeds generated expressions to node with zod
// installed. Opt in with ZODGEN_NODE_CHECK=1.
func TestEmittedCodeEvaluates(t *testing.T) {
	if os.Getenv("ZODGEN_NODE_CHECK") != "1" {
		t.Skip("set ZODGEN_NODE_CHECK=1 to run")
	}
	node, err := exec.LookPath("node")
	if err != nil {
		t.Skip("node not found")
	}
	if err := exec.Command(node, "-e", `require("zod")`).Run(); err != nil {
		t.Skip("zod is not resolvable from the working directory")
	}

	email := &ir.Object{Type: ir.Single(ir.TypeString), Format: "email"}
	schemas := []ir.Schema{
		ir.True,
		ir.False,
		ir.Struct(map[string]ir.Schema{"id": integer(), "email": email, "tags": ir.ArrayOf(str())}, "id"),
		ir.OneOf(
			ir.Struct(map[string]ir.Schema{"kind": ir.Const("a"), "x": num()}, "kind", "x"),
			ir.Struct(map[string]ir.Schema{"kind": ir.Const("b")}, "kind"),
		),
		ir.TupleOf(str(), ir.Nullable(ir.TypeNumber)),
		strEnum("x", "y"),
	}
	for _, cfg := range []Config{{}, {ArrayStyle: ArrayPostfix, ClosedObjects: ClosedStrictObject, OpenObjects: OpenLooseObject, OpenByDefault: true}} {
		tr := MustNew(cfg)
		for _, s := range schemas {
			expr, err := tr.Translate(s)
			require.NoError(t, err)
			script := `const { z } = require("zod"); const s = ` + expr + `; if (typeof s.safeParse !== "function") process.exit(1);`
			out, err := exec.Command(node, "-e", script).CombinedOutput()
			require.NoErrorf(t, err, "%s\n%s", expr, strings.TrimSpace(string(out)))
		}
	}
}
