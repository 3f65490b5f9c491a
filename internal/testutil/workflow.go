// Package testutil provides workflow fixture builders shared across
// package tests. Builders produce minimal valid IR values so tests only
// spell out the fields they are exercising.
package testutil

import (
	"github.com/latchflow/latchc/internal/ir"
)

// Workflow builds a valid IR workflow around the given nodes.
func Workflow(name string, nodes ...ir.Node) *ir.Workflow {
	return &ir.Workflow{
		Version: ir.SchemaVersion,
		Workflow: ir.Metadata{
			Name: name,
		},
		Nodes: nodes,
	}
}

// Trigger builds a manual-trigger node.
func Trigger(id string) ir.Node {
	return ir.Node{
		ID:   id,
		Type: "manualTrigger",
		Name: "Start",
	}
}

// Node builds an activity node with the given parameters. A nil params
// map stays nil.
func Node(id, typ, name string, params ir.Object) ir.Node {
	return ir.Node{
		ID:         id,
		Type:       typ,
		Name:       name,
		Parameters: params,
	}
}

// HTTPNode builds an httpRequest node fetching the given URL.
func HTTPNode(id, name, url string) ir.Node {
	return Node(id, "httpRequest", name, ir.Object{
		"url":    ir.String(url),
		"method": ir.String("GET"),
	})
}

// Connect appends a plain connection between two node ids.
func Connect(w *ir.Workflow, source, target string) *ir.Workflow {
	w.Connections = append(w.Connections, ir.Connection{Source: source, Target: target})
	return w
}
