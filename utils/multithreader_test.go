package utils

import (
	"sync/atomic"
	"testing"
)

func TestMultiThread(t *testing.T) {
	tests := []struct {
		start, end, ops, workers int
	}{
		{0, 100, 4, 8},
		{5, 37, 3, 2},
		{0, 10, 20, 4},
		{0, 50, 1, 1},
		{0, 0, 4, 4},
	}

	for _, test := range tests {
		counts := make([]int32, test.end)
		var total int32
		MultiThread(test.start, test.end, func(i int) {
			atomic.AddInt32(&counts[i], 1)
			atomic.AddInt32(&total, 1)
		}, test.ops, test.workers)

		if int(total) != test.end-test.start {
			t.Errorf("%+v: f called %d times", test, total)
		}

		for i := test.start; i < test.end; i++ {
			if counts[i] != 1 {
				t.Errorf("%+v: f(%d) called %d times", test, i, counts[i])
			}
		}
	}
}

func TestMultiThreadSerialOrder(t *testing.T) {
	var order []int
	MultiThread(0, 5, func(i int) { order = append(order, i) }, 4, 1)

	for i, v := range order {
		if v != i {
			t.Errorf("serial MultiThread ran out of order: %v", order)
			break
		}
	}
}
