// This file is part of Joyser.
//
// Joyser is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Joyser is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Joyser.  If not, see <https://www.gnu.org/licenses/>.

package mapping

import (
	"sort"

	"github.com/jetsetilly/joyser/hardware/controls/command"
)

// Binding is the entry for a mapped input.
type Binding struct {
	Command command.Command
	Source  Source
}

// Registry of input bindings and multi-press sequences.
type Registry struct {
	host     Poller
	bindings map[ID]*Binding

	// polled identifiers in ascending order. polling order is deterministic
	polled []ID

	multis map[int32][][]command.Command
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. The host is used by bindings made with poll set to true. It can be
// nil if no such bindings will be made.
func NewRegistry(host Poller) *Registry {
	return &Registry{
		host:     host,
		bindings: make(map[ID]*Binding),
		multis:   make(map[int32][][]command.Command),
	}
}

// MapButton binds the ID to a button command. Returns false if the command is
// not a button command or the ID cannot be bound to a button.
//
// Binding the None command removes any existing binding and always succeeds.
func (r *Registry) MapButton(id ID, cmd command.Command, poll bool) bool {
	return r.bind(id, cmd, poll, command.ButtonCategory)
}

// MapAxis binds the ID to an axis command. Returns false if the command is
// not an axis command or the ID cannot be bound to an axis.
func (r *Registry) MapAxis(id ID, cmd command.Command, poll bool) bool {
	return r.bind(id, cmd, poll, command.AxisCategory)
}

// MapPointer binds the ID to a pointer command. Returns false if the command
// is not a pointer command or the ID cannot be bound to a pointer.
func (r *Registry) MapPointer(id ID, cmd command.Command, poll bool) bool {
	return r.bind(id, cmd, poll, command.PointerCategory)
}

func (r *Registry) bind(id ID, cmd command.Command, poll bool, cat command.Category) bool {
	if cmd == nil {
		return false
	}

	if cmd.Category() == command.NoCategory {
		if Classify(id) == InvalidSpace {
			return false
		}
		r.Unmap(id)
		return true
	}

	if cmd.Category() != cat {
		return false
	}

	// reserved identifiers only ever carry the kind of report the controls
	// make on them
	switch Classify(id) {
	case InvalidSpace:
		return false
	case PseudoPointer:
		if cat != command.PointerCategory {
			return false
		}
	case PseudoButton:
		if cat != command.ButtonCategory {
			return false
		}
	}

	r.Unmap(id)

	b := &Binding{Command: cmd}
	if poll {
		b.Source = NewBridge(id, r.host)
		i := sort.Search(len(r.polled), func(i int) bool { return r.polled[i] >= id })
		r.polled = append(r.polled, 0)
		copy(r.polled[i+1:], r.polled[i:])
		r.polled[i] = id
	} else {
		b.Source = &Cache{}
	}
	r.bindings[id] = b

	return true
}

// Unmap removes the binding for the ID. Unmapping an unbound ID does nothing.
func (r *Registry) Unmap(id ID) {
	b, ok := r.bindings[id]
	if !ok {
		return
	}
	delete(r.bindings, id)

	if b.Source.Polled() {
		i := sort.Search(len(r.polled), func(i int) bool { return r.polled[i] >= id })
		if i < len(r.polled) && r.polled[i] == id {
			r.polled = append(r.polled[:i], r.polled[i+1:]...)
		}
	}
}

// UnmapAll removes every binding and every multi-press sequence.
func (r *Registry) UnmapAll() {
	r.bindings = make(map[ID]*Binding)
	r.polled = r.polled[:0]
	r.multis = make(map[int32][][]command.Command)
}

// Lookup returns the command bound to the ID. The None command is returned
// for unbound IDs.
func (r *Registry) Lookup(id ID) command.Command {
	if b, ok := r.bindings[id]; ok {
		return b.Command
	}
	return command.None{}
}

// Binding returns the binding for the ID.
func (r *Registry) Binding(id ID) (*Binding, bool) {
	b, ok := r.bindings[id]
	return b, ok
}

// Len returns the number of bound IDs.
func (r *Registry) Len() int {
	return len(r.bindings)
}

// IDs returns every bound ID in ascending order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.bindings))
	for id := range r.bindings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Polled calls f for every polled binding whose command is in the category,
// in ascending ID order. The registry must not be changed by f.
func (r *Registry) Polled(cat command.Category, f func(id ID, b *Binding)) {
	for _, id := range r.polled {
		b := r.bindings[id]
		if b.Command.Category() == cat {
			f(id, b)
		}
	}
}

// ByName returns the meta-command with the name. Only meta-commands can be
// found by name.
func (r *Registry) ByName(name string) (command.Command, bool) {
	code, ok := command.ParseGeneric(name)
	if !ok {
		return command.None{}, false
	}
	return command.Generic{Code: code}, true
}

// NameOf returns the name of a meta-command. Other commands have no name in
// this sense and false is returned.
func (r *Registry) NameOf(cmd command.Command) (string, bool) {
	g, ok := cmd.(command.Generic)
	if !ok || !g.Code.Valid() {
		return "", false
	}
	return g.Code.String(), true
}

// SetMulti registers a multi-press sequence. Each step is a list of button
// commands pressed together. Nested sequences are not allowed. Returns false
// if the sequence is rejected, leaving any existing sequence in place.
func (r *Registry) SetMulti(index int32, steps [][]command.Command) bool {
	if index < 0 || len(steps) == 0 {
		return false
	}

	seq := make([][]command.Command, len(steps))
	for i, s := range steps {
		for _, c := range s {
			if c == nil || c.Category() != command.ButtonCategory {
				return false
			}
			if _, ok := c.(command.Multi); ok {
				return false
			}
		}
		seq[i] = append([]command.Command(nil), s...)
	}

	r.multis[index] = seq
	return true
}

// Multi returns the multi-press sequence registered at the index.
func (r *Registry) Multi(index int32) ([][]command.Command, bool) {
	seq, ok := r.multis[index]
	return seq, ok
}
