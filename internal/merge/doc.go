// Package merge moves a freshly rendered project tree into a destination
// directory that may already contain files. Collisions require an explicit
// per-entry overwrite confirmation, non-collision failures are reported per
// entry without aborting the rest, and the emptied source tree is removed
// best-effort afterwards. There is no global transaction: partial completion
// is an accepted, reported outcome.
package merge
