// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// countingWorker records how many times Run was called and, optionally,
// the order it ran in relative to its siblings.
type countingWorker struct {
	id    int
	runs  int
	order *[]int
}

func (w *countingWorker) Run() {
	w.runs++
	if w.order != nil {
		*w.order = append(*w.order, w.id)
	}
}

func TestWorkers_RunStartsEveryWorkerInOrder(t *testing.T) {
	var order []int
	w1 := &countingWorker{id: 1, order: &order}
	w2 := &countingWorker{id: 2, order: &order}
	w3 := &countingWorker{id: 3, order: &order}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 1, w1.runs)
	assert.Equal(t, 1, w3.runs)
}

func TestWorkers_RunToleratesEmptySet(t *testing.T) {
	assert.NotPanics(t, func() { (&Workers{}).Run() })
	assert.NotPanics(t, func() { (&Workers{workers: []Worker{}}).Run() })
}
