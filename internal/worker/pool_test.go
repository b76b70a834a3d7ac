package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_KeepsInputOrder(t *testing.T) {
	pool := NewPool("square", 4, func(_ context.Context, n int) (int, error) {
		// Later inputs finish first.
		time.Sleep(time.Duration(10-n) * time.Millisecond)
		return n * n, nil
	})

	tasks := pool.Execute(context.Background(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.Len(t, tasks, 9)
	for i, task := range tasks {
		assert.Equal(t, i+1, task.Input)
		assert.Equal(t, (i+1)*(i+1), task.Result)
		assert.NoError(t, task.Err)
	}
}

func TestPool_SingleWorkerIsSequential(t *testing.T) {
	var order []string
	pool := NewPool("seq", 0, func(_ context.Context, s string) (struct{}, error) {
		order = append(order, s)
		return struct{}{}, nil
	})

	pool.Execute(context.Background(), []string{"A1", "A2", "B1"})
	assert.Equal(t, []string{"A1", "A2", "B1"}, order)
}

func TestPool_Errors(t *testing.T) {
	errOdd := errors.New("odd")
	pool := NewPool("odd", 2, func(_ context.Context, n int) (int, error) {
		if n%2 == 1 {
			return 0, errOdd
		}
		return n, nil
	})

	tasks := pool.Execute(context.Background(), []int{2, 3, 4})
	assert.NoError(t, tasks[0].Err)
	assert.ErrorIs(t, tasks[1].Err, errOdd)
	assert.NoError(t, tasks[2].Err)
	assert.Equal(t, 4, tasks[2].Result)
}

func TestPool_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	pool := NewPool("cancelled", 1, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		return n, nil
	})

	tasks := pool.Execute(ctx, []int{1, 2, 3})
	require.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.ErrorIs(t, task.Err, context.Canceled)
	}
	assert.Zero(t, calls.Load())
}

func TestBatch(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, Batch([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1}, {2}}, Batch([]int{1, 2}, 0))
	assert.Nil(t, Batch([]int{}, 3))
}
