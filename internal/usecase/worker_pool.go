package usecase

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

const defaultWorkerCount = 4

// runOnPool runs task(0..count-1) on a bounded ants pool and waits for all of them.
func runOnPool(workers, count int, task func(i int)) error {
	if count == 0 {
		return nil
	}
	if workers <= 0 {
		workers = defaultWorkerCount
	}
	if workers > count {
		workers = count
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			task(i)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	wg.Wait()
	return nil
}
