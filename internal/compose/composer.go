package compose

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Context is the variable mapping handed to the renderer. Keys declared by
// the manifest but not fixed carry a nil value: the explicit "no fixed value
// supplied" marker, which tells the renderer to fall back to its own default.
type Context = orderedmap.OrderedMap[string, any]

// Reconcile builds the final render context from the manifest's declared key
// set and the fixed context. Dynamic keys keep the manifest's declaration
// order and map to the nil marker; fixed pairs follow in their own order and
// are never overridden.
func Reconcile(manifestKeys []string, fixed *Context) *Context {
	ctx := orderedmap.New[string, any]()

	for _, key := range manifestKeys {
		if _, isFixed := fixed.Get(key); isFixed {
			continue
		}
		ctx.Set(key, nil)
	}

	for pair := fixed.Oldest(); pair != nil; pair = pair.Next() {
		ctx.Set(pair.Key, pair.Value)
	}

	return ctx
}

// Format renders a context as an indented key/value block for debug output.
func Format(ctx *Context) string {
	var b strings.Builder
	b.WriteString("{\n")
	for pair := ctx.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			fmt.Fprintf(&b, "  %s: <unset>\n", pair.Key)
			continue
		}
		fmt.Fprintf(&b, "  %s: %v\n", pair.Key, pair.Value)
	}
	b.WriteString("}")
	return b.String()
}
