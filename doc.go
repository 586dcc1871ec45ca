// Package arbor is the reusable substrate for building compilers and
// interpreters that operate on tree-shaped intermediate representations.
//
// Users define their own IR as a family of record-like node types and
// then build compilation pipelines out of small, composable passes over
// those trees. arbor supplies the traversal algorithms (package
// arbor/walk), the rule-dispatch machinery (package arbor/rule), the
// uniform pass contract (package arbor/pass) and the pass combinators
// (package arbor/rewriter). A pair of reference rules demonstrating the
// contracts lives in arbor/stdrules.
//
// This package holds the one thing every other package depends on: the
// node protocol a concrete IR must satisfy (Node, Fields, Container) and
// the error vocabulary the engine raises when a pass cannot proceed.
package arbor
