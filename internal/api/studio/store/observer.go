package studioStore

// DraftEvent describes a draft change pushed to subscribers. Replaced is true
// when the whole draft was swapped out (load or reset) rather than edited in
// place; subscribers drop derived selections in that case before re-deriving.
type DraftEvent struct {
	Draft    Draft
	Replaced bool
}

type DraftListener func(e DraftEvent)
