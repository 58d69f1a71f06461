package blocks

// canonicalOrder is the fixed category ranking used when a block is added
// out of band (e.g. "jump to section"). It is a stable insertion table, not
// a sort key: existing blocks never move because of it.
var canonicalOrder = []Type{
	TypeImage,
	TypeTitle,
	TypeDates,
	TypeLocation,
	TypeRichText,
	TypeTickets,
	TypeHighlights,
	TypeAgendaDay,
	TypeLogistics,
	TypeGallery,
	TypeFAQ,
	TypeResources,
	TypeCTA,
}

var canonicalRank = func() map[Type]int {
	ranks := make(map[Type]int, len(canonicalOrder))
	for i, t := range canonicalOrder {
		ranks[t] = i
	}
	return ranks
}()

// Rank returns the canonical rank for a block type. Unknown types report
// ok=false and sort after everything.
func Rank(t Type) (int, bool) {
	rank, ok := canonicalRank[t]
	return rank, ok
}

// InsertPosition computes where a block of type t belongs when inserted out
// of band. It scans the sequence backward and returns the index immediately
// after the last block whose canonical rank is strictly lower than t's.
// When no such block exists it returns 0; when t is unknown to the table it
// appends.
func InsertPosition(t Type, seq Sequence) int {
	target, ok := Rank(t)
	if !ok {
		return len(seq)
	}

	for i := len(seq) - 1; i >= 0; i-- {
		rank, known := Rank(seq[i].Type)
		if !known {
			continue
		}
		if rank < target {
			return i + 1
		}
	}
	return 0
}
