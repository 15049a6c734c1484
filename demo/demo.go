// Package demo runs the reversal showcase over integers, floats, text,
// 2-D arrays, pointer arrays and structure arrays.
package demo

import (
	"errors"
	"fmt"
	"sync"

	"blockrev/util/log"
)

// ErrUnknownCase is returned when a requested case does not exist.
var ErrUnknownCase = errors.New("unknown demo case")

// Result holds the rendering of one case before and after reversal.
type Result struct {
	Name   string
	Before string
	After  string
}

// Run runs the named cases, or all of them when names is empty, on up to
// workers goroutines. Results keep the order of the selected cases.
func Run(cases []Case, names []string, workers int) ([]Result, error) {
	selected, err := selectCases(cases, names)
	if err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = 1
	}
	if workers > len(selected) {
		workers = len(selected)
	}

	results := make([]Result, len(selected))
	errs := make([]error, len(selected))

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range jobs {
				c := selected[i]
				before, after, err := c.Run()
				if err != nil {
					errs[i] = fmt.Errorf("case %s: %w", c.Name, err)
					continue
				}

				results[i] = Result{Name: c.Name, Before: before, After: after}
			}
		}()
	}

	for i := range selected {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Print writes results through the logger.
func Print(results []Result) {
	for _, r := range results {
		log.Infof("%s: [%s] -> [%s]", r.Name, r.Before, r.After)
	}
}

func selectCases(cases []Case, names []string) ([]Case, error) {
	if len(names) == 0 {
		return cases, nil
	}

	byName := make(map[string]Case, len(cases))
	for _, c := range cases {
		byName[c.Name] = c
	}

	selected := make([]Case, 0, len(names))
	for _, name := range names {
		c, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCase, name)
		}
		selected = append(selected, c)
	}

	return selected, nil
}
