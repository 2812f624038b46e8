package compose

import (
	"strings"
	"testing"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func fixedContext(pairs ...[2]string) *Context {
	om := orderedmap.New[string, any]()
	for _, p := range pairs {
		om.Set(p[0], p[1])
	}
	return om
}

func keys(ctx *Context) []string {
	var out []string
	for pair := ctx.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func TestReconcileCoversUnionOfKeys(t *testing.T) {
	fixed := fixedContext(
		[2]string{"project_name", "My Project"},
		[2]string{"kedro_version", "0.19.11"},
	)
	manifestKeys := []string{"project_name", "repo_name", "add_ons", "kedro_version"}

	ctx := Reconcile(manifestKeys, fixed)

	want := map[string]bool{
		"project_name": true, "repo_name": true, "add_ons": true, "kedro_version": true,
	}
	if ctx.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d (keys %v)", ctx.Len(), len(want), keys(ctx))
	}
	for k := range want {
		if _, ok := ctx.Get(k); !ok {
			t.Errorf("missing key %q", k)
		}
	}
}

func TestReconcileFixedValuesAlwaysWin(t *testing.T) {
	fixed := fixedContext([2]string{"project_name", "My Project"})
	ctx := Reconcile([]string{"project_name"}, fixed)

	v, ok := ctx.Get("project_name")
	if !ok || v != "My Project" {
		t.Errorf("project_name = %v, want %q", v, "My Project")
	}
}

func TestReconcileDynamicKeysGetAbsentMarker(t *testing.T) {
	fixed := fixedContext([2]string{"kedro_version", "0.19.11"})
	ctx := Reconcile([]string{"repo_name", "kedro_version"}, fixed)

	v, ok := ctx.Get("repo_name")
	if !ok {
		t.Fatal("repo_name missing")
	}
	if v != nil {
		t.Errorf("repo_name = %v, want nil marker", v)
	}
}

func TestReconcilePreservesManifestOrder(t *testing.T) {
	fixed := fixedContext([2]string{"z_fixed", "1"})
	ctx := Reconcile([]string{"c", "a", "b"}, fixed)

	got := keys(ctx)
	want := []string{"c", "a", "b", "z_fixed"}
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReconcileEmptyManifest(t *testing.T) {
	fixed := fixedContext([2]string{"repo_name", "proj"})
	ctx := Reconcile(nil, fixed)

	if ctx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", ctx.Len())
	}
	if v, _ := ctx.Get("repo_name"); v != "proj" {
		t.Errorf("repo_name = %v", v)
	}
}

func TestFormatMarksUnsetKeys(t *testing.T) {
	fixed := fixedContext([2]string{"repo_name", "proj"})
	ctx := Reconcile([]string{"add_ons"}, fixed)

	out := Format(ctx)
	if !strings.Contains(out, "add_ons: <unset>") {
		t.Errorf("Format output missing unset marker:\n%s", out)
	}
	if !strings.Contains(out, "repo_name: proj") {
		t.Errorf("Format output missing fixed value:\n%s", out)
	}
}
