package models

// ChangeSet is the batch of local mutations of one domain that the next
// push carries. Items are ordered by ModifiedAt ascending and Snapshot holds
// the version of every item as it was read, in the same order.
type ChangeSet[T Snapshotter] struct {
	Domain   Domain
	Items    []T
	Snapshot []SnapshotRef
}

// NewChangeSet orders items and records their snapshot.
func NewChangeSet[T Snapshotter](domain Domain, items []T) ChangeSet[T] {
	SortByModified(items)
	return ChangeSet[T]{
		Domain:   domain,
		Items:    items,
		Snapshot: Refs(items),
	}
}

// Empty reports whether there is nothing to push.
func (c ChangeSet[T]) Empty() bool {
	return len(c.Items) == 0
}

// Len returns the number of items in the set.
func (c ChangeSet[T]) Len() int {
	return len(c.Items)
}
