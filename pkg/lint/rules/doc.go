// Package rules contains the built-in flint rules.
//
// Each rule is an independent subscriber to one or more node kinds; the
// engine in pkg/lint routes tree events to them. Rules only read the
// tree and the semantic index — proposed rewrites are carried as pure
// fix.Proposal values and applied separately by pkg/fix.
package rules
