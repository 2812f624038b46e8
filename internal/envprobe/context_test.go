package envprobe

import "testing"

func TestFixedContext(t *testing.T) {
	ctx := FixedContext("my-data_pipeline", "0.19.11")

	tests := []struct {
		key  string
		want string
	}{
		{"project_name", "My Data Pipeline"},
		{"repo_name", "my-data_pipeline"},
		{"python_package", "my_data_pipeline_kedro"},
		{"kedro_version", "0.19.11"},
	}

	for _, tt := range tests {
		v, ok := ctx.Get(tt.key)
		if !ok {
			t.Errorf("missing key %q", tt.key)
			continue
		}
		if v != tt.want {
			t.Errorf("%s = %v, want %q", tt.key, v, tt.want)
		}
	}

	// Key order is part of the contract: fixed values render first in debug
	// output and reconciliation appends them in this order.
	wantOrder := []string{"project_name", "repo_name", "python_package", "kedro_version"}
	i := 0
	for pair := ctx.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key != wantOrder[i] {
			t.Errorf("key[%d] = %q, want %q", i, pair.Key, wantOrder[i])
		}
		i++
	}
}

func TestFixedContextNormalization(t *testing.T) {
	tests := []struct {
		dirName     string
		wantProject string
		wantPackage string
	}{
		{"spaceflights", "Spaceflights", "spaceflights_kedro"},
		{"MY-PROJECT", "My Project", "my_project_kedro"},
		{"  padded  ", "Padded", "padded_kedro"},
	}

	for _, tt := range tests {
		t.Run(tt.dirName, func(t *testing.T) {
			ctx := FixedContext(tt.dirName, "0.19.0")
			if v, _ := ctx.Get("project_name"); v != tt.wantProject {
				t.Errorf("project_name = %v, want %q", v, tt.wantProject)
			}
			if v, _ := ctx.Get("python_package"); v != tt.wantPackage {
				t.Errorf("python_package = %v, want %q", v, tt.wantPackage)
			}
		})
	}
}
