/*
Package snaplist provides a mutable, identity-tracking ordered snapshot
structure for displayed lists.

Snapshots

A snapshot models a two-level hierarchy of sections containing items. Items
carry caller-supplied opaque identifiers, sections carry unique string keys,
and every element carries a version tag recording its last structural touch.
Callers apply structural edits (append/insert/remove/move at section and item
granularity) to a snapshot, then hand the resulting snapshot together with
its predecessor to a diffing algorithm, which classifies changes as moves,
reloads, insertions or deletions by comparing identifier orderings and
version tags. Package diff in this repository implements such an algorithm on
top of the query surface exposed here.

Identity is global: an item identifier appears in at most one section of a
snapshot, and section keys are unique across the snapshot. All mutations
preserve both invariants or refuse to run, leaving the snapshot untouched.

Snapshots are plain in-memory values with synchronous operations: no locks,
no I/O, no goroutines. A snapshot shared between goroutines must be
serialized by the caller, typically with a single-writer discipline.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package snaplist

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
