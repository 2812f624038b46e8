package envprobe

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// FixedContext derives the mandatory template variables from the directory
// name and the detected framework version. These values are authoritative:
// reconciliation never lets a template default override them.
func FixedContext(dirName, kedroVersion string) *orderedmap.OrderedMap[string, any] {
	name := strings.TrimSpace(dirName)

	ctx := orderedmap.New[string, any]()
	ctx.Set("project_name", projectName(name))
	ctx.Set("repo_name", name)
	ctx.Set("python_package", pythonPackage(name))
	ctx.Set("kedro_version", kedroVersion)
	return ctx
}

// projectName turns a directory name into a display name:
// "my-data_pipeline" -> "My Data Pipeline".
func projectName(name string) string {
	spaced := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titleCaser.String(spaced)
}

// pythonPackage derives an importable package identifier:
// "My-Project" -> "my_project_kedro".
func pythonPackage(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "-", "_")) + "_kedro"
}
