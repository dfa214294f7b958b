package engine

import (
	"sort"

	"github.com/kasuf/thewho-planner/internal/domain"
)

// Node — узел графа зависимостей операций.
type Node struct {
	// Op — операция заказа.
	Op *domain.Operation

	// ID — идентификатор операции.
	ID string

	// InDegree — количество входящих рёбер (зависимостей).
	InDegree int

	// DependsOn — узлы, от которых зависит этот узел.
	DependsOn []*Node

	// Dependents — узлы, которые зависят от этого узла.
	Dependents []*Node
}

// Graph — граф зависимостей операций одного заказа.
//
// Исходные данные — линейная цепочка по sequence number (операция k
// зависит от операции k−1), но граф хранится и сортируется как общий
// DAG с проверкой циклов.
type Graph struct {
	// Nodes — все узлы графа (operationID → Node).
	Nodes map[string]*Node

	// Roots — узлы без зависимостей (точки входа).
	Roots []*Node

	// Order — топологически отсортированный список узлов.
	Order []*Node
}

// BuildGraph строит граф зависимостей по операциям заказа.
//
// Зависимости выводятся из sequence number: каждая операция зависит от
// предыдущей в цепочке. Дубликаты sequence number отклоняются — это
// нарушение инварианта заказа.
func BuildGraph(orderID string, ops []domain.Operation) (*Graph, error) {
	if len(ops) == 0 {
		return nil, &GraphError{OrderID: orderID, Err: ErrNoOperations}
	}

	// Сортируем копию по sequence number, входной срез не трогаем.
	chain := make([]*domain.Operation, len(ops))
	for i := range ops {
		chain[i] = &ops[i]
	}
	sort.SliceStable(chain, func(i, j int) bool {
		return chain[i].SequenceNumber < chain[j].SequenceNumber
	})

	g := &Graph{Nodes: make(map[string]*Node, len(chain))}

	for i, op := range chain {
		if i > 0 && op.SequenceNumber == chain[i-1].SequenceNumber {
			return nil, &GraphError{OrderID: orderID, OperationID: op.ID, Err: ErrDuplicateSequence}
		}
		g.Nodes[op.ID] = &Node{Op: op, ID: op.ID}
	}

	// Цепочка: операция k зависит от операции k−1.
	for i := 1; i < len(chain); i++ {
		if err := g.addEdge(chain[i-1].ID, chain[i].ID); err != nil {
			return nil, &GraphError{OrderID: orderID, OperationID: chain[i].ID, Err: err}
		}
	}

	g.findRoots()

	order, err := g.topologicalSort()
	if err != nil {
		return nil, &GraphError{OrderID: orderID, Err: err}
	}
	g.Order = order

	return g, nil
}

// addEdge добавляет ребро from → to, пропуская дубликаты.
func (g *Graph) addEdge(fromID, toID string) error {
	from, ok := g.Nodes[fromID]
	if !ok {
		return ErrUnknownOperation
	}
	to, ok := g.Nodes[toID]
	if !ok {
		return ErrUnknownOperation
	}
	for _, dep := range to.DependsOn {
		if dep.ID == from.ID {
			return nil // уже связаны
		}
	}
	from.Dependents = append(from.Dependents, to)
	to.DependsOn = append(to.DependsOn, from)
	to.InDegree++
	return nil
}

// findRoots находит узлы без входящих рёбер.
func (g *Graph) findRoots() {
	g.Roots = g.Roots[:0]
	for _, node := range g.Nodes {
		if node.InDegree == 0 {
			g.Roots = append(g.Roots, node)
		}
	}
	sort.Slice(g.Roots, func(i, j int) bool {
		return g.Roots[i].Op.SequenceNumber < g.Roots[j].Op.SequenceNumber
	})
}

// topologicalSort выполняет топологическую сортировку (алгоритм Кана).
// Возвращает ErrCyclicDependency, если обработаны не все узлы.
func (g *Graph) topologicalSort() ([]*Node, error) {
	inDegree := make(map[string]int, len(g.Nodes))
	for id, node := range g.Nodes {
		inDegree[id] = node.InDegree
	}

	queue := make([]*Node, len(g.Roots))
	copy(queue, g.Roots)

	order := make([]*Node, 0, len(g.Nodes))

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		for _, dep := range node.Dependents {
			inDegree[dep.ID]--
			if inDegree[dep.ID] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(order) != len(g.Nodes) {
		return nil, ErrCyclicDependency
	}

	return order, nil
}

// Size возвращает количество узлов графа.
func (g *Graph) Size() int {
	return len(g.Nodes)
}

// Predecessor возвращает прямого предшественника операции в цепочке
// заказа, либо nil для первой операции.
func (g *Graph) Predecessor(operationID string) *Node {
	node, ok := g.Nodes[operationID]
	if !ok || len(node.DependsOn) == 0 {
		return nil
	}
	return node.DependsOn[0]
}

// ExecutionOrder возвращает операции заказа в топологически корректном
// порядке выполнения.
func ExecutionOrder(orderID string, ops []domain.Operation) ([]*domain.Operation, *Graph, error) {
	g, err := BuildGraph(orderID, ops)
	if err != nil {
		return nil, nil, err
	}
	ordered := make([]*domain.Operation, len(g.Order))
	for i, node := range g.Order {
		ordered[i] = node.Op
	}
	return ordered, g, nil
}
