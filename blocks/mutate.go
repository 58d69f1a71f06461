package blocks

// The five sequence operations below are pure: each returns a fresh slice
// and leaves its input untouched, so callers can hold the previous sequence
// for comparison. Order is renumbered to match array position after every
// structural change.

// Add appends a block to the sequence. When the block's type is a singleton
// and its fixed id is already present the sequence is returned unchanged;
// repeated adds of core types are intentionally idempotent, not an error.
func Add(seq Sequence, block Block) Sequence {
	if id, ok := FixedID(block.Type); ok && seq.IndexOf(id) >= 0 {
		return seq.Clone()
	}

	out := seq.Clone()
	block = block.Clone()
	block.Order = len(out)
	return append(out, block)
}

// Insert places a block at the given position, shifting later blocks down.
// Positions outside [0, len] clamp to the nearest end. Singleton idempotence
// applies as in Add.
func Insert(seq Sequence, block Block, position int) Sequence {
	if id, ok := FixedID(block.Type); ok && seq.IndexOf(id) >= 0 {
		return seq.Clone()
	}

	if position < 0 {
		position = 0
	}
	if position > len(seq) {
		position = len(seq)
	}

	out := make(Sequence, 0, len(seq)+1)
	out = append(out, seq[:position].Clone()...)
	out = append(out, block.Clone())
	out = append(out, seq[position:].Clone()...)
	return renumber(out)
}

// Update shallow-merges a patch into the data of the block with the given
// id. Unknown ids and type-mismatched patches leave the sequence unchanged.
func Update(seq Sequence, id string, patch Patch) Sequence {
	idx := seq.IndexOf(id)
	if idx < 0 || patch == nil {
		return seq.Clone()
	}

	out := seq.Clone()
	if merged, ok := patch.apply(out[idx].Data); ok {
		out[idx].Data = merged
	}
	return out
}

// Delete removes the block with the given id. Core block ids are silently
// refused; unknown ids are a no-op.
func Delete(seq Sequence, id string) Sequence {
	if IsProtectedID(id) {
		return seq.Clone()
	}
	idx := seq.IndexOf(id)
	if idx < 0 {
		return seq.Clone()
	}

	out := make(Sequence, 0, len(seq)-1)
	out = append(out, seq[:idx].Clone()...)
	out = append(out, seq[idx+1:].Clone()...)
	return renumber(out)
}

// Duplicate clones the data of the block with the given id into a new block
// appended at the end of the sequence. The clone gets the supplied fresh id.
func Duplicate(seq Sequence, id, newID string) Sequence {
	idx := seq.IndexOf(id)
	if idx < 0 {
		return seq.Clone()
	}

	out := seq.Clone()
	clone := out[idx].Clone()
	clone.ID = newID
	clone.Order = len(out)
	return append(out, clone)
}

// Reorder removes the block at dragIndex and reinserts it at hoverIndex.
// dragIndex addresses the pre-removal sequence, hoverIndex the post-removal
// one. Out-of-range indices return the sequence unchanged; a mid-gesture
// deletion is a benign race, not an error.
func Reorder(seq Sequence, dragIndex, hoverIndex int) Sequence {
	if dragIndex < 0 || dragIndex >= len(seq) {
		return seq.Clone()
	}
	if hoverIndex < 0 || hoverIndex >= len(seq) {
		return seq.Clone()
	}

	out := seq.Clone()
	moved := out[dragIndex]
	out = append(out[:dragIndex], out[dragIndex+1:]...)

	insertAt := hoverIndex
	if insertAt > len(out) {
		insertAt = len(out)
	}
	out = append(out[:insertAt], append(Sequence{moved}, out[insertAt:]...)...)
	return renumber(out)
}

func renumber(seq Sequence) Sequence {
	for i := range seq {
		seq[i].Order = i
	}
	return seq
}
