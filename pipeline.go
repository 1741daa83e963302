package bitmap16

import (
	"context"
	"errors"
	"sync"
)

func (b *BitMap16) findSketches(ctx context.Context) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)

		infos, err := b.Sketches()
		if err != nil {
			errc <- err
			return
		}

		for _, info := range infos {
			select {
			case out <- info.Name:
			case <-ctx.Done():
				errc <- errors.New("export cancelled")
				return
			}
		}
	}()
	return out, errc, nil
}

func (b *BitMap16) exportWorker(ctx context.Context, logical bool, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for name := range in {
			if _, err := b.Export(name, logical); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// ExportAll renders every stored sketch to the exports directory.
// Sketches are exported concurrently; each one still claims its own
// numbered filename.
func (b *BitMap16) ExportAll(ctx context.Context, logical bool) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	var errcList []<-chan error

	names, errc, err := b.findSketches(ctx)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < 10; i++ {
		errc, err := b.exportWorker(ctx, logical, names)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
