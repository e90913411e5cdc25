package systable

import (
	"errors"
	"fmt"

	"slotpage/pkg/primitives"
	"slotpage/pkg/storage/heap"
)

var (
	// ErrSuccess stops an iteration early without reporting a failure.
	ErrSuccess = errors.New("success")

	// ErrNotFound is returned by FindOne when no row matches.
	ErrNotFound = errors.New("entity not found")
)

// BaseOperations provides common read and insert operations for catalog
// tables stored in a single page.
//
// Type parameter T is the row type (e.g. TableDescriptor).
type BaseOperations[T any] struct {
	file       *heap.HeapFile[T]
	descriptor *SystemTableDescriptor[T]
}

// NewBaseOperations creates a BaseOperations over the page file at path.
func NewBaseOperations[T any](path primitives.Filepath, descriptor *SystemTableDescriptor[T]) (*BaseOperations[T], error) {
	file, err := heap.NewHeapFile[T](path, descriptor)
	if err != nil {
		return nil, err
	}
	return &BaseOperations[T]{file: file, descriptor: descriptor}, nil
}

// File returns the underlying heap file.
func (bo *BaseOperations[T]) File() *heap.HeapFile[T] {
	return bo.file
}

// Descriptor returns the table descriptor.
func (bo *BaseOperations[T]) Descriptor() *SystemTableDescriptor[T] {
	return bo.descriptor
}

// Iterate applies processFunc to each row in insertion order.
// processFunc can return ErrSuccess to stop early.
func (bo *BaseOperations[T]) Iterate(processFunc func(T) error) error {
	err := bo.file.Iterate(func(_ primitives.SlotID, entity T) error {
		return processFunc(entity)
	})
	if errors.Is(err, ErrSuccess) {
		return nil
	}
	return err
}

// FindOne returns the first row matching predicate, or ErrNotFound.
func (bo *BaseOperations[T]) FindOne(predicate func(T) bool) (T, error) {
	var result T
	found := false

	err := bo.Iterate(func(entity T) error {
		if predicate(entity) {
			result = entity
			found = true
			return ErrSuccess
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	if !found {
		return result, fmt.Errorf("%s: %w", bo.descriptor.TableName(), ErrNotFound)
	}
	return result, nil
}

// FindAll returns every row matching predicate. The result is never nil.
func (bo *BaseOperations[T]) FindAll(predicate func(T) bool) ([]T, error) {
	results := make([]T, 0)

	err := bo.Iterate(func(entity T) error {
		if predicate(entity) {
			results = append(results, entity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Insert appends rows to the table in one page rewrite.
func (bo *BaseOperations[T]) Insert(entities ...T) error {
	return bo.file.Append(entities...)
}
