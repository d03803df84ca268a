// Package ui holds the retained element tree that the game mutates and the
// frontends (browser, terminal) draw.
//
// It mirrors the small subset of DOM the game needs: elements have a tag, a
// set of classes, attributes, text content, children and event listeners.
// Visibility and interactivity are expressed with the "hidden" and "disabled"
// classes, exactly as the stylesheet in web/css/main.css expects.
package ui

import (
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

const (
	// HiddenClass hides an element and everything inside it.
	HiddenClass = "hidden"

	// DisabledClass makes an element and everything inside it ignore events.
	DisabledClass = "disabled"

	// DefaultTag is used by Create when no tag is given.
	DefaultTag = "div"
)

// Element is the capability set the game needs from a UI element.
type Element interface {
	// Create makes a new child element with the given class and tag.
	Create(class, tag string) Element

	On(event string, handler func())
	Content(text string)
	Text() string
	Find(selector string) []Element
	Show()
	Hide()
	Enable()
	Disable()
	AddClass(class string)
	RemoveClass(class string)
	Attr(name string) string
	SetAttr(name, value string)
	Remove()
}

// Create makes a child of parent with the given class. The optional tag
// defaults to DefaultTag.
func Create(parent Element, class string, tag ...string) Element {
	t := DefaultTag
	if len(tag) > 0 && tag[0] != "" {
		t = tag[0]
	}
	return parent.Create(class, t)
}

// Node is the in-memory implementation of Element.
type Node struct {
	tag       string
	classes   mapset.Set[string]
	attrs     map[string]string
	text      string
	parent    *Node
	children  []*Node
	listeners map[string][]func()

	// onChange is only set on the root.
	onChange func()
}

var _ Element = (*Node)(nil)

// NewRoot creates a detached "body" element. onChange, if not nil, is called
// after every mutation anywhere in the tree.
func NewRoot(onChange func()) *Node {
	n := newNode("body")
	n.onChange = onChange
	return n
}

func newNode(tag string) *Node {
	return &Node{
		tag:       tag,
		classes:   mapset.New[string](),
		attrs:     make(map[string]string),
		listeners: make(map[string][]func()),
	}
}

// SetOnChange replaces the change hook of the root of n's tree.
func (n *Node) SetOnChange(onChange func()) {
	n.root().onChange = onChange
}

func (n *Node) root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

func (n *Node) changed() {
	if fn := n.root().onChange; fn != nil {
		fn()
	}
}

// Create implements Element.
func (n *Node) Create(class, tag string) Element {
	child := newNode(tag)
	if class != "" {
		child.classes.Put(class)
	}
	n.Append(child)
	return child
}

// Append moves child to the end of n's children.
func (n *Node) Append(child *Node) {
	if child.parent != nil {
		child.parent.detach(child)
	}
	child.parent = n
	child.onChange = nil
	n.children = append(n.children, child)
	n.changed()
}

func (n *Node) detach(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
	child.parent = nil
}

// Remove detaches n from its parent. Removing a root is a no-op.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	p.detach(n)
	p.changed()
}

// On registers handler for event. Handlers run in registration order.
func (n *Node) On(event string, handler func()) {
	n.listeners[event] = append(n.listeners[event], handler)
}

// Dispatch delivers event to n's handlers. Events are dropped when n or any of
// its ancestors is hidden or disabled; the return value reports delivery.
func (n *Node) Dispatch(event string) bool {
	if !n.Interactive() {
		return false
	}
	handlers := slices.Clone(n.listeners[event])
	for _, h := range handlers {
		h()
	}
	return len(handlers) > 0
}

// Interactive reports whether neither n nor any ancestor is hidden or disabled.
func (n *Node) Interactive() bool {
	for e := n; e != nil; e = e.parent {
		if e.classes.Has(HiddenClass) || e.classes.Has(DisabledClass) {
			return false
		}
	}
	return true
}

// Visible reports whether neither n nor any ancestor is hidden.
func (n *Node) Visible() bool {
	for e := n; e != nil; e = e.parent {
		if e.classes.Has(HiddenClass) {
			return false
		}
	}
	return true
}

// Content sets the text content.
func (n *Node) Content(text string) {
	n.text = text
	n.changed()
}

// Text returns the text content.
func (n *Node) Text() string { return n.text }

func (n *Node) Show()    { n.RemoveClass(HiddenClass) }
func (n *Node) Hide()    { n.AddClass(HiddenClass) }
func (n *Node) Enable()  { n.RemoveClass(DisabledClass) }
func (n *Node) Disable() { n.AddClass(DisabledClass) }

// Hidden reports whether n itself carries the hidden class.
func (n *Node) Hidden() bool { return n.classes.Has(HiddenClass) }

// Disabled reports whether n itself carries the disabled class.
func (n *Node) Disabled() bool { return n.classes.Has(DisabledClass) }

func (n *Node) AddClass(class string) {
	if n.classes.Has(class) {
		return
	}
	n.classes.Put(class)
	n.changed()
}

func (n *Node) RemoveClass(class string) {
	if !n.classes.Has(class) {
		return
	}
	n.classes.Remove(class)
	n.changed()
}

// HasClass reports whether n carries class.
func (n *Node) HasClass(class string) bool { return n.classes.Has(class) }

// Classes returns n's classes, sorted.
func (n *Node) Classes() []string {
	out := make([]string, 0, n.classes.Size())
	n.classes.Each(func(c string) {
		out = append(out, c)
	})
	slices.Sort(out)
	return out
}

// Attr returns the value of attribute name, or "" if unset.
func (n *Node) Attr(name string) string { return n.attrs[name] }

func (n *Node) SetAttr(name, value string) {
	if old, ok := n.attrs[name]; ok && old == value {
		return
	}
	n.attrs[name] = value
	n.changed()
}

// Tag returns the element's tag name.
func (n *Node) Tag() string { return n.tag }

// Parent returns n's parent, nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of n's children.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// Find returns the descendants of n matching selector, in document order.
// Supported selectors are ".class", `[attr="value"]` and a bare tag name.
func (n *Node) Find(selector string) []Element {
	match := compile(selector)
	var out []Element
	n.walk(func(d *Node) {
		if match(d) {
			out = append(out, d)
		}
	})
	return out
}

// walk visits every descendant of n (not n itself) depth first.
func (n *Node) walk(visit func(*Node)) {
	for _, c := range n.children {
		visit(c)
		c.walk(visit)
	}
}

func compile(selector string) func(*Node) bool {
	selector = strings.TrimSpace(selector)
	switch {
	case strings.HasPrefix(selector, "."):
		class := selector[1:]
		return func(n *Node) bool { return n.classes.Has(class) }
	case strings.HasPrefix(selector, "[") && strings.HasSuffix(selector, "]"):
		name, value, hasValue := strings.Cut(selector[1:len(selector)-1], "=")
		value = strings.Trim(value, `"'`)
		return func(n *Node) bool {
			v, ok := n.attrs[name]
			if !hasValue {
				return ok
			}
			return ok && v == value
		}
	default:
		return func(n *Node) bool { return n.tag == selector }
	}
}
