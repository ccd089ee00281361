// Package mtcs implements a Multilateral Trade Credit Set-off engine:
// given a directed multigraph of outstanding obligations between firms
// (debtor → creditor, weight = amount owed), it computes per-obligation
// set-off amounts that cancel cyclic debt while preserving every firm's
// net financial position.
//
// The package exposes the value types (Node, Obligation, SetOff) and
// error taxonomy shared by package mcmf (the minimum-cost maximum-flow
// engines) and package engine (the clearing pipeline and checker that
// use them). Id and Amt are Go generic constraints standing in for the
// capability bundles a polymorphic implementation would otherwise need:
// Id is cmp.Ordered, Amt is any signed integer kind.
package mtcs
