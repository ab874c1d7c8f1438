package field

import "sync"

// band is a half-open range of block rows handled by one goroutine.
type band struct{ start, end int }

// splitBands divides rows into at most workers contiguous bands.
func splitBands(rows, workers int) []band {
	if workers < 1 {
		workers = 1
	}
	if workers > rows {
		workers = rows
	}
	if rows <= 0 {
		return nil
	}
	rowsPer := (rows + workers - 1) / workers
	bands := make([]band, 0, workers)
	for start := 0; start < rows; start += rowsPer {
		bands = append(bands, band{start: start, end: min(start+rowsPer, rows)})
	}
	return bands
}

// renderBands fans block rows out across the configured workers and waits
// for all of them, so the frame is complete when it returns.
func (r *Renderer) renderBands(blockRows int) {
	var wg sync.WaitGroup
	for _, b := range splitBands(blockRows, r.opts.Workers) {
		wg.Add(1)
		go func(b band) {
			defer wg.Done()
			r.renderRows(b.start, b.end)
		}(b)
	}
	wg.Wait()
}
