package domain

// IDList is an ordered sequence of courier ids.
type IDList []int64

// Contains reports whether id is present.
func (l IDList) Contains(id int64) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// With returns a copy of l with id appended unless already present.
func (l IDList) With(id int64) IDList {
	out := make(IDList, len(l), len(l)+1)
	copy(out, l)
	if l.Contains(id) {
		return out
	}
	return append(out, id)
}

// Append returns a copy of l with id appended, duplicates allowed.
func (l IDList) Append(id int64) IDList {
	out := make(IDList, len(l), len(l)+1)
	copy(out, l)
	return append(out, id)
}

// Last returns the last id and false when the list is empty.
func (l IDList) Last() (int64, bool) {
	if len(l) == 0 {
		return 0, false
	}
	return l[len(l)-1], true
}

// ContainsAll reports whether every id in ids is present in l.
func (l IDList) ContainsAll(ids []int64) bool {
	for _, id := range ids {
		if !l.Contains(id) {
			return false
		}
	}
	return true
}
