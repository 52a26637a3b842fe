package menu

import (
	"errors"
	"fmt"

	"unicorn/core/effect"
)

// Width is the number of options in every category, one per menu switch.
const Width = 4

// Placeholder labels padding options.
const Placeholder = "----"

// Entry is a category (with Children) or an option (with an Effect, which
// may be effect.None).
type Entry struct {
	Label    string
	Effect   effect.ID
	Children []Entry
}

// Option builds a leaf entry.
func Option(label string, id effect.ID) Entry {
	return Entry{Label: label, Effect: id}
}

// Category builds a category, padding it with placeholders up to Width.
func Category(label string, options ...Entry) Entry {
	children := append([]Entry(nil), options...)
	for len(children) < Width {
		children = append(children, Option(Placeholder, effect.None))
	}
	return Entry{Label: label, Children: children}
}

// Bound reports whether selecting the entry launches an effect.
func (e Entry) Bound() bool { return e.Effect != effect.None }

// Tree is the root category list.
type Tree []Entry

var errEmptyTree = errors.New("menu: no categories")

// Validate checks the two-level shape: at most Width categories, each with
// exactly Width options and no deeper nesting.
func (t Tree) Validate() error {
	if len(t) == 0 {
		return errEmptyTree
	}
	if len(t) > Width {
		return fmt.Errorf("menu: %d categories, at most %d fit", len(t), Width)
	}
	for _, cat := range t {
		if cat.Effect != effect.None {
			return fmt.Errorf("menu: category %q is bound to an effect", cat.Label)
		}
		if len(cat.Children) != Width {
			return fmt.Errorf("menu: category %q has %d options, want %d", cat.Label, len(cat.Children), Width)
		}
		for _, opt := range cat.Children {
			if len(opt.Children) != 0 {
				return fmt.Errorf("menu: option %s/%s has children", cat.Label, opt.Label)
			}
		}
	}
	return nil
}

// Labels returns the category labels in order.
func (t Tree) Labels() []string {
	out := make([]string, len(t))
	for i, e := range t {
		out[i] = e.Label
	}
	return out
}

// Labels returns the labels of the entry's children.
func (e Entry) Labels() []string {
	return Tree(e.Children).Labels()
}

// Leaf returns the option at (category, option).
func (t Tree) Leaf(cat, opt int) (Entry, error) {
	if cat < 0 || cat >= len(t) {
		return Entry{}, fmt.Errorf("menu: category %d out of range", cat)
	}
	children := t[cat].Children
	if opt < 0 || opt >= len(children) {
		return Entry{}, fmt.Errorf("menu: option %d out of range in %q", opt, t[cat].Label)
	}
	return children[opt], nil
}
