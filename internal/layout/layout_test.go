package layout

import "testing"

func TestStructLayoutS4(t *testing.T) {
	// struct S { a: u8; b: u32; c: u8 } -> offsets (0, 4, 8), align 4, size 12
	fields := []Field{{Size: 1, Align: 1}, {Size: 4, Align: 4}, {Size: 1, Align: 1}}
	size, align, offsets := Struct(fields)
	wantOffsets := []int{0, 4, 8}
	for i, o := range wantOffsets {
		if offsets[i] != o {
			t.Fatalf("offset %d: got %d, want %d", i, offsets[i], o)
		}
	}
	if align != 4 {
		t.Fatalf("align: got %d, want 4", align)
	}
	if size != 12 {
		t.Fatalf("size: got %d, want 12", size)
	}
}

func TestUnionLayout(t *testing.T) {
	fields := []Field{{Size: 1, Align: 1}, {Size: 4, Align: 4}, {Size: 8, Align: 8}}
	size, align := Union(fields)
	if size != 8 {
		t.Fatalf("size: got %d, want 8", size)
	}
	if align != 8 {
		t.Fatalf("align: got %d, want 8", align)
	}
}

func TestStructMonotonicOffsets(t *testing.T) {
	fields := []Field{{Size: 1, Align: 1}, {Size: 2, Align: 2}, {Size: 8, Align: 8}, {Size: 1, Align: 1}}
	_, _, offsets := Struct(fields)
	for i := 1; i < len(offsets); i++ {
		prevEnd := offsets[i-1] + fields[i-1].Size
		if offsets[i] < prevEnd {
			t.Fatalf("offset %d (%d) overlaps predecessor ending at %d", i, offsets[i], prevEnd)
		}
		if offsets[i]%fields[i].Align != 0 {
			t.Fatalf("offset %d (%d) not aligned to %d", i, offsets[i], fields[i].Align)
		}
	}
}
