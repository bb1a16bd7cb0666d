package series

import (
	"reflect"
	"testing"
)

func TestTableKeysSorted(t *testing.T) {
	tab := Table[float64]{"truck": 1, "bus": 2, "car": 3}
	want := []string{"bus", "car", "truck"}
	if got := tab.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestGetOr(t *testing.T) {
	m := map[string]float64{"car": 2}
	if got := GetOr(m, "car", 1); got != 2 {
		t.Errorf("GetOr(car) = %v, want 2", got)
	}
	if got := GetOr(m, "bus", 1); got != 1 {
		t.Errorf("GetOr(bus) = %v, want 1", got)
	}
	var empty map[string]float64
	if got := GetOr(empty, "bus", 7); got != 7 {
		t.Errorf("GetOr on nil map = %v, want 7", got)
	}
}

func TestAt(t *testing.T) {
	xs := []float64{1, 2}
	if At(xs, 1) != 2 || At(xs, 2) != 0 || At(xs, -1) != 0 || At(nil, 0) != 0 {
		t.Error("At should return 0 outside the slice")
	}
}

func TestNestedLookup(t *testing.T) {
	n := Nested[float64]{"car": {"diesel": 4}}
	if got := n.Lookup("car", "diesel", 0); got != 4 {
		t.Errorf("Lookup(car, diesel) = %v, want 4", got)
	}
	if got := n.Lookup("car", "electric", 0); got != 0 {
		t.Errorf("Lookup(car, electric) = %v, want 0", got)
	}
	if got := n.Lookup("bus", "diesel", -1); got != -1 {
		t.Errorf("Lookup(bus, diesel) = %v, want -1", got)
	}
}
