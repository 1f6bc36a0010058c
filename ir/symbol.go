// Copyright (c) 2024 The Falcon Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package ir

import "rw2rvc2/container"

// Symbol records one declared global, keeping exactly what the emitter
// needs to decide between a `.data` slot and a `.comm` slot.
type Symbol struct {
	Name string
	// HasNonZeroInit is true when the declaration carried a constant
	// initializer other than 0; the emitter places such globals in
	// .data with that value, and everything else via .comm.
	InitValue int32
	HasNonZeroInit bool
}

// SymbolTable is the ordered global dictionary D from spec §4.3, backed by
// container.Dict so lookups and dump ordering both match
// original_source/src/util.c's dict_t semantics.
type SymbolTable struct {
	dict *container.Dict[Symbol]
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{dict: container.NewDict[Symbol]()}
}

// Declare records name, overwriting any previous entry (matching
// dict_append's overwrite-on-existing-key contract).
func (t *SymbolTable) Declare(sym Symbol) {
	t.dict.Append(sym.Name, sym)
}

// Lookup reports whether name has been declared, and its entry.
func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	return t.dict.Lookup(name)
}

// ForEach visits every declared global in declaration order.
func (t *SymbolTable) ForEach(f func(Symbol)) {
	t.dict.ForEach(func(e container.Entry[Symbol]) { f(e.Value) })
}
