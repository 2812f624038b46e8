// Package fetch materializes a classified template source into a local
// template directory: git and mercurial sources are cloned, zip archives are
// downloaded and extracted, local directories are used in place. Trees
// created here are marked temporary so the CLI can remove them after a
// successful run.
package fetch
