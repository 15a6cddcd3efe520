package main

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/cryptonstudio/crypton-sorted-map/sortedmap"
)

var _ sortedmap.Releaser[int] = &Releaser{}

// Releaser counts values released by the sorted map.
type Releaser struct {
	released uint64
	checksum uint64
}

func (r *Releaser) Release(value int) {
	atomic.AddUint64(&r.released, 1)
	atomic.AddUint64(&r.checksum, uint64(value))
}

func (r *Releaser) PrintStatistics(w io.Writer) {
	fmt.Fprintf(w, "Released values: %d (checksum %d)\n", atomic.LoadUint64(&r.released), atomic.LoadUint64(&r.checksum))
}
