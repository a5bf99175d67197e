package domain_test

import (
	"reflect"
	"testing"

	"github.com/kradzieta/warehouse-orders/internal/domain"
)

func TestAggregateItems_MergesDuplicates(t *testing.T) {
	t.Parallel()

	in := []domain.RequestedItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
		{ProductID: "p1", Quantity: 3},
	}

	got := domain.AggregateItems(in)

	want := []domain.RequestedItem{
		{ProductID: "p1", Quantity: 5},
		{ProductID: "p2", Quantity: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestAggregateItems_PreservesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	in := []domain.RequestedItem{
		{ProductID: "c", Quantity: 1},
		{ProductID: "a", Quantity: 1},
		{ProductID: "b", Quantity: 1},
		{ProductID: "a", Quantity: 4},
		{ProductID: "c", Quantity: 2},
	}

	got := domain.AggregateItems(in)

	wantIDs := []string{"c", "a", "b"}
	if len(got) != len(wantIDs) {
		t.Fatalf("want %d items, got %d: %v", len(wantIDs), len(got), got)
	}
	for i, id := range wantIDs {
		if got[i].ProductID != id {
			t.Fatalf("position %d: want %s, got %s", i, id, got[i].ProductID)
		}
	}
	if got[0].Quantity != 3 || got[1].Quantity != 5 || got[2].Quantity != 1 {
		t.Fatalf("quantities wrong: %v", got)
	}
}

func TestAggregateItems_NoDuplicates_Unchanged(t *testing.T) {
	t.Parallel()

	in := []domain.RequestedItem{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 2},
	}

	got := domain.AggregateItems(in)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("want %v, got %v", in, got)
	}
}

func TestAggregateItems_Empty(t *testing.T) {
	t.Parallel()

	if got := domain.AggregateItems(nil); len(got) != 0 {
		t.Fatalf("want empty result, got %v", got)
	}
}
