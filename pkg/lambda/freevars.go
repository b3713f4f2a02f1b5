package lambda

import "github.com/google/btree"

type nameSet = btree.BTreeG[byte]

func newNameSet() *nameSet {
	return btree.NewG[byte](4, func(a, b byte) bool { return a < b })
}

// FreeVars returns the names occurring free in t, sorted and without
// duplicates.
func FreeVars(t Term) []byte {
	free := newNameSet()
	collectFree(t, newNameSet(), free)

	names := make([]byte, 0, free.Len())
	free.Ascend(func(name byte) bool {
		names = append(names, name)
		return true
	})
	return names
}

func collectFree(t Term, bound, free *nameSet) {
	switch t := t.(type) {
	case Var:
		if !bound.Has(t.Name) {
			free.ReplaceOrInsert(t.Name)
		}
	case Num:
	case Abs:
		if _, shadowed := bound.ReplaceOrInsert(t.Arg); shadowed {
			collectFree(t.Body, bound, free)
			return
		}
		collectFree(t.Body, bound, free)
		bound.Delete(t.Arg)
	case App:
		collectFree(t.Fun, bound, free)
		collectFree(t.Arg, bound, free)
	}
}
