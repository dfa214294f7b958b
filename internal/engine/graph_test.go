package engine

import (
	"errors"
	"testing"

	"github.com/kasuf/thewho-planner/internal/domain"
)

func chainOps(ids ...string) []domain.Operation {
	ops := make([]domain.Operation, len(ids))
	for i, id := range ids {
		ops[i] = domain.Operation{
			ID:             id,
			OrderID:        "order-1",
			SequenceNumber: i + 1,
			Type:           domain.OperationMilling,
		}
	}
	return ops
}

func TestBuildGraph_SimpleChain(t *testing.T) {
	ops := chainOps("A", "B", "C")

	g, err := BuildGraph("order-1", ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Проверяем количество узлов и корни
	if g.Size() != 3 {
		t.Errorf("expected 3 nodes, got %d", g.Size())
	}
	if len(g.Roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(g.Roots))
	}
	if g.Roots[0].ID != "A" {
		t.Errorf("expected root A, got %s", g.Roots[0].ID)
	}

	// Проверяем порядок выполнения
	want := []string{"A", "B", "C"}
	for i, node := range g.Order {
		if node.ID != want[i] {
			t.Errorf("order[%d]: expected %s, got %s", i, want[i], node.ID)
		}
	}
}

func TestBuildGraph_UnsortedInput(t *testing.T) {
	// Операции приходят в произвольном порядке, цепочка строится
	// по sequence number.
	ops := []domain.Operation{
		{ID: "C", SequenceNumber: 3, Type: domain.OperationMilling},
		{ID: "A", SequenceNumber: 1, Type: domain.OperationTurning},
		{ID: "B", SequenceNumber: 2, Type: domain.OperationMill3Axis},
	}

	g, err := BuildGraph("order-1", ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"A", "B", "C"}
	for i, node := range g.Order {
		if node.ID != want[i] {
			t.Errorf("order[%d]: expected %s, got %s", i, want[i], node.ID)
		}
	}

	// Предшественник B — A, у A предшественника нет
	if pred := g.Predecessor("B"); pred == nil || pred.ID != "A" {
		t.Error("predecessor of B should be A")
	}
	if pred := g.Predecessor("A"); pred != nil {
		t.Errorf("A should have no predecessor, got %s", pred.ID)
	}
}

func TestBuildGraph_EmptyOrder(t *testing.T) {
	_, err := BuildGraph("order-1", nil)
	if !errors.Is(err, ErrNoOperations) {
		t.Errorf("expected ErrNoOperations, got %v", err)
	}

	var gerr *GraphError
	if !errors.As(err, &gerr) {
		t.Fatal("expected GraphError")
	}
	if gerr.OrderID != "order-1" {
		t.Errorf("expected order-1 in error, got %s", gerr.OrderID)
	}
}

func TestBuildGraph_DuplicateSequence(t *testing.T) {
	ops := []domain.Operation{
		{ID: "A", SequenceNumber: 1, Type: domain.OperationMilling},
		{ID: "B", SequenceNumber: 1, Type: domain.OperationMilling},
	}

	_, err := BuildGraph("order-1", ops)
	if !errors.Is(err, ErrDuplicateSequence) {
		t.Errorf("expected ErrDuplicateSequence, got %v", err)
	}
}

func TestTopologicalSort_CycleDetected(t *testing.T) {
	// Цикл руками: цепочка A → B плюс обратное ребро B → A.
	ops := chainOps("A", "B")

	g := &Graph{Nodes: make(map[string]*Node)}
	for i := range ops {
		g.Nodes[ops[i].ID] = &Node{Op: &ops[i], ID: ops[i].ID}
	}
	if err := g.addEdge("A", "B"); err != nil {
		t.Fatalf("addEdge: %v", err)
	}
	if err := g.addEdge("B", "A"); err != nil {
		t.Fatalf("addEdge: %v", err)
	}
	g.findRoots()

	_, err := g.topologicalSort()
	if !errors.Is(err, ErrCyclicDependency) {
		t.Errorf("expected ErrCyclicDependency, got %v", err)
	}
}

func TestExecutionOrder(t *testing.T) {
	ops := chainOps("A", "B", "C", "D")

	ordered, g, err := ExecutionOrder("order-1", ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ordered) != 4 {
		t.Fatalf("expected 4 operations, got %d", len(ordered))
	}
	if g.Size() != 4 {
		t.Errorf("expected graph of 4 nodes, got %d", g.Size())
	}

	for i := 1; i < len(ordered); i++ {
		if ordered[i].SequenceNumber <= ordered[i-1].SequenceNumber {
			t.Errorf("execution order not increasing at %d", i)
		}
	}
}
