// Package envprobe supplies the environment state the context builder needs:
// the current directory name (which becomes the project name) and the
// installed Kedro version, looked up through the Python interpreter's
// distribution metadata. It also owns the directory-name validation that
// gates a run before any side effect.
package envprobe
