package cmdline

import (
	"unicode/utf8"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/types/orderedmap"
	"github.com/tidwall/btree"
)

// optionSet holds options keyed by each spelling. Options are iterated in insertion order,
// or in Option.Compare order when the set is sorted.
type optionSet struct {
	byShort  map[rune]*Option
	byLong   map[string]*Option
	inserted *orderedmap.OrderedMap[*Option, struct{}]
	sorted   *btree.BTreeG[*Option]
	longest  int
}

func newOptionSet(sorted bool) *optionSet {
	s := &optionSet{
		byShort:  map[rune]*Option{},
		byLong:   map[string]*Option{},
		inserted: orderedmap.NewOrderedMap[*Option, struct{}](),
	}
	if sorted {
		s.sorted = btree.NewBTreeG[*Option](func(a, b *Option) bool {
			return a.Compare(b) < 0
		})
	}

	return s
}

// add inserts option unless one of its spellings is taken, in which case the existing option is kept
func (s *optionSet) add(option *Option) error {
	if existing := s.find(option); existing != nil {
		return errs.ErrOptionAlreadyExists.WithArgs(option, existing)
	}

	if option.Short != 0 {
		s.byShort[option.Short] = option
	}
	if option.Long != "" {
		s.byLong[option.Long] = option
		if l := utf8.RuneCountInString(option.Long); l > s.longest {
			s.longest = l
		}
	}
	s.inserted.Set(option, struct{}{})
	if s.sorted != nil {
		s.sorted.Set(option)
	}

	return nil
}

// find returns the registered option Equal to option
func (s *optionSet) find(option *Option) *Option {
	if existing := s.lookupShort(option.Short); existing != nil {
		return existing
	}

	return s.lookupLong(option.Long)
}

func (s *optionSet) lookupShort(short rune) *Option {
	if short == 0 {
		return nil
	}

	return s.byShort[short]
}

func (s *optionSet) lookupLong(long string) *Option {
	if long == "" {
		return nil
	}

	return s.byLong[long]
}

func (s *optionSet) len() int {
	return s.inserted.Count()
}

// all returns the options in iteration order
func (s *optionSet) all() []*Option {
	options := make([]*Option, 0, s.len())
	if s.sorted != nil {
		s.sorted.Scan(func(option *Option) bool {
			options = append(options, option)
			return true
		})
		return options
	}

	for iter := s.inserted.Front(); iter != nil; iter = iter.Next() {
		options = append(options, *iter.Key)
	}

	return options
}
