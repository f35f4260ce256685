package task

// List groups tasks. The list with UncategorizedID is reserved.
type List struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Reserved reports whether l is the uncategorized list.
func (l *List) Reserved() bool {
	return l != nil && l.ID == UncategorizedID
}

// Clone returns a copy.
func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	cp := *l
	return &cp
}

// Uncategorized returns a fresh copy of the reserved list.
func Uncategorized() *List {
	return &List{ID: UncategorizedID, Name: "Uncategorized", Icon: DefaultListIcon}
}
