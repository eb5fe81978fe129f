package ixlist

import (
	"strconv"
	"testing"

	"github.com/bradenaw/ixlist/internal/xlist"
)

func FuzzList(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3})
	f.Add([]byte{1, 1, 0, 5, 0x3a, 4, 2, 7, 3})
	f.Add([]byte{8, 9, 10, 13, 0xff, 5, 0x11, 14, 6, 7, 12, 4})

	f.Fuzz(func(t *testing.T, b []byte) {
		// Every op is followed by a full walk, so keep inputs short enough to stay fast.
		if len(b) > 256 {
			b = b[:256]
		}
		l := New[int]()
		var model xlist.List[int]

		for i := 0; i < len(b); i++ {
			op := b[i] % 8
			value := i
			switch op {
			case 0:
				t.Logf("PushFront(%d)", value)
				l.PushFront(value)
				model.PushFront(value)
			case 1:
				t.Logf("PushBack(%d)", value)
				l.PushBack(value)
				model.PushBack(value)
			case 2, 3:
				var got int
				var ok bool
				var node *xlist.Node[int]
				if op == 2 {
					t.Log("PopFront()")
					got, ok = l.PopFront()
					node = model.Front()
				} else {
					t.Log("PopBack()")
					got, ok = l.PopBack()
					node = model.Back()
				}
				if ok != (node != nil) {
					t.Fatalf("pop returned ok=%t, model has %d elements", ok, model.Len())
				}
				if node != nil {
					if got != node.Value {
						t.Fatalf("popped %d, expected %d", got, node.Value)
					}
					model.Remove(node)
				}
			case 4:
				t.Log("Linearize()")
				l.Linearize()
				for j := range l.nodes {
					if l.nodes[j].link[next] != j+1 && j != len(l.nodes)-1 {
						t.Fatalf("slot %d not followed by slot %d after Linearize", j, j+1)
					}
				}
			case 5:
				// The next byte, if any, scripts a cursor session.
				var script byte
				if i+1 < len(b) {
					i++
					script = b[i]
				}
				fuzzCursor(t, l, &model, script, value)
			case 6:
				n := int(b[i]>>3) % 4
				t.Logf("Extend(%d elements)", n)
				extra := make([]int, n)
				for j := range extra {
					extra[j] = value*10 + j
					model.PushBack(extra[j])
				}
				l.ExtendSlice(extra)
			case 7:
				t.Log("IterMut() += 1")
				it := l.IterMut()
				for j := 0; ; j++ {
					var p *int
					var ok bool
					if (b[i]>>(j%5+3))&1 == 1 {
						p, ok = it.NextBack()
					} else {
						p, ok = it.Next()
					}
					if !ok {
						break
					}
					*p++
				}
				for node := model.Front(); node != nil; node = node.Next() {
					node.Value++
				}
			}

			logList(t, l)
			checkAgainst(t, l, &model)
		}
	})
}

// fuzzCursor opens a cursor and performs a few steps and inserts decided by script, mirroring
// them on model with a node pointer where nil is the virtual slot.
func fuzzCursor(t *testing.T, l *List[int], model *xlist.List[int], script byte, value int) {
	c := l.Cursor()
	defer c.Close()
	pos := model.Front()

	steps := int(script>>5) + 1
	for s := 0; s < steps; s++ {
		switch (script >> s) & 3 {
		case 0, 3:
			t.Log("  cursor.Next()")
			p, ok := c.Next()
			if pos == nil {
				pos = model.Front()
				if ok {
					t.Fatalf("cursor.Next() on the virtual slot returned %d", *p)
				}
				continue
			}
			if !ok || *p != pos.Value {
				t.Fatalf("cursor.Next() = %v, %t, expected %d", p, ok, pos.Value)
			}
			pos = pos.Next()
		case 1:
			t.Log("  cursor.Prev()")
			p, ok := c.Prev()
			if pos == model.Front() {
				pos = nil
				if ok {
					t.Fatalf("cursor.Prev() before the front returned %d", *p)
				}
				continue
			}
			if pos == nil {
				pos = model.Back()
			} else {
				pos = pos.Prev()
			}
			if !ok || *p != pos.Value {
				t.Fatalf("cursor.Prev() = %v, %t, expected %d", p, ok, pos.Value)
			}
		case 2:
			v := -value*10 - s
			t.Logf("  cursor.Insert(%d)", v)
			c.Insert(v)
			pos = model.InsertBefore(v, pos)
		}
	}
}

func checkAgainst(t *testing.T, l *List[int], model *xlist.List[int]) {
	if err := l.validate(); err != nil {
		t.Fatal(err)
	}
	if l.Len() != model.Len() {
		t.Fatalf("Len() = %d, expected %d", l.Len(), model.Len())
	}
	expected := model.Values()
	it := l.Iter()
	for j := range expected {
		v, ok := it.Next()
		if !ok || v != expected[j] {
			t.Fatalf("element %d = %d, %t, expected %d", j, v, ok, expected[j])
		}
	}
	if _, ok := it.Next(); ok {
		t.Fatal("iterator produced more elements than expected")
	}
	it = l.Iter()
	for j := len(expected) - 1; j >= 0; j-- {
		v, ok := it.NextBack()
		if !ok || v != expected[j] {
			t.Fatalf("element %d from the back = %d, %t, expected %d", j, v, ok, expected[j])
		}
	}
}

func logList[T any](t *testing.T, l *List[T]) {
	t.Logf("list ================= %v", l)
	for i := range l.nodes {
		pfx := "  "
		if i == l.ends[head] {
			pfx = "h>"
		}
		if i == l.ends[tail] {
			pfx = pfx[:1] + "t"
		}
		t.Logf("  %s %3d: %#v %s", pfx, i, l.nodes[i].value, fmtLinks(l.nodes[i].link))
	}
}

func fmtLinks(link [2]int) string {
	s := "["
	for k, i := range link {
		if k > 0 {
			s += " "
		}
		if i == endIx {
			s += "-"
		} else {
			s += strconv.Itoa(i)
		}
	}
	return s + "]"
}
