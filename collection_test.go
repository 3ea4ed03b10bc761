package yiv

import (
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestCollection_OrderedAccess(t *testing.T) {
	a := newGradientImage(t, 1, 1, 3)
	b := newGradientImage(t, 2, 2, 3)
	c := newGradientImage(t, 3, 3, 3)

	col := NewCollection()
	col.Add(a)
	col.Add(b)
	col.Add(c)

	if col.Count() != 3 {
		t.Fatalf("Count: got %d, want 3", col.Count())
	}
	if col.At(0) != a {
		t.Error("At(0): want first inserted image")
	}
	if col.At(2) != c {
		t.Error("At(2): want last inserted image")
	}

	col.Remove(1)

	if col.Count() != 2 {
		t.Fatalf("Count after Remove: got %d, want 2", col.Count())
	}
	if col.At(0) != a || col.At(1) != c {
		t.Error("Remove(1) did not preserve the order of survivors")
	}
}

func TestCollection_RemoveOutOfRange(t *testing.T) {
	col := NewCollection()
	col.Add(newGradientImage(t, 1, 1, 3))

	for _, index := range []int{-1, 1, 100} {
		col.Remove(index)
		if col.Count() != 1 {
			t.Errorf("Remove(%d) changed the count", index)
		}
	}
}

func TestCollection_RemoveReleasesHandle(t *testing.T) {
	col := NewCollection()
	released := make(chan struct{})

	func() {
		img := New()
		runtime.SetFinalizer(img, func(*Image) { close(released) })
		col.Add(img)
	}()

	// Remove must drop the collection's reference; it held the only one.
	col.Remove(0)

	for i := 0; i < 5; i++ {
		runtime.GC()
		select {
		case <-released:
			return
		case <-time.After(50 * time.Millisecond):
		}
	}
	t.Fatal("removed handle still reachable from the collection")
}

func TestCollection_AtOutOfRange(t *testing.T) {
	col := NewCollection()
	col.Add(newGradientImage(t, 1, 1, 3))

	for _, index := range []int{-1, 1, 42} {
		if got := col.At(index); got != nil {
			t.Errorf("At(%d): got %v, want nil", index, got)
		}
	}
}

func TestCollection_SharedHandles(t *testing.T) {
	img := newGradientImage(t, 2, 2, 3)
	col := NewCollection()
	col.Add(img)

	// The collection holds the same image, not a copy: mutations through
	// either handle are visible through the other.
	col.At(0).ApplyFilter(FilterInvert)

	if img.Pix()[0] != 255 {
		t.Errorf("mutation through collection handle not visible: got %d", img.Pix()[0])
	}
}

func TestCollection_Shuffle(t *testing.T) {
	col := NewCollection()
	handles := make(map[*Image]bool)
	for i := 0; i < 10; i++ {
		img := newGradientImage(t, i+1, 1, 3)
		handles[img] = true
		col.Add(img)
	}

	col.Shuffle()

	if col.Count() != 10 {
		t.Fatalf("Count after Shuffle: got %d, want 10", col.Count())
	}
	for i := 0; i < 10; i++ {
		if !handles[col.At(i)] {
			t.Fatalf("Shuffle introduced an unknown handle at %d", i)
		}
		delete(handles, col.At(i))
	}
	if len(handles) != 0 {
		t.Errorf("Shuffle dropped %d handles", len(handles))
	}
}

func TestCollection_Sort(t *testing.T) {
	small := newGradientImage(t, 1, 1, 3)
	medium := newGradientImage(t, 3, 3, 3)
	large := newGradientImage(t, 5, 5, 3)

	col := NewCollection()
	col.Add(large)
	col.Add(small)
	col.Add(medium)

	col.Sort(ByPixelCount)

	if col.At(0) != small || col.At(1) != medium || col.At(2) != large {
		t.Error("Sort(ByPixelCount) did not order smallest first")
	}

	col.Sort(func(a, b *Image) bool {
		return a.Width()*a.Height() > b.Width()*b.Height()
	})

	if col.At(0) != large || col.At(2) != small {
		t.Error("Sort with a caller comparator did not order largest first")
	}
}

func TestCollection_ConcurrentAdd(t *testing.T) {
	const n = 64
	col := NewCollection()

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			col.Add(New())
		}()
	}
	wg.Wait()

	if col.Count() != n {
		t.Errorf("concurrent adds lost updates: got %d, want %d", col.Count(), n)
	}
}

func TestCollection_ManualLockBracketsSequence(t *testing.T) {
	col := NewCollection()

	col.Lock()
	done := make(chan struct{})
	go func() {
		col.Add(New()) // blocks until the manual lock is released
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("Add completed while the manual lock was held")
	default:
	}

	col.Unlock()
	<-done

	if col.Count() != 1 {
		t.Errorf("Count: got %d, want 1", col.Count())
	}
}
