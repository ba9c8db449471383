package memory

// builder accumulates byte writes on top of an existing memory. The page
// table is cloned up front and each touched page is cloned once, so the
// source memory and every previously built value keep their own view while
// a multi-byte write copies only the pages it actually touches.
type builder struct {
	size   int
	pages  [][]byte
	cloned []bool
}

func (m Memory) builder() *builder {
	pages := make([][]byte, len(m.pages))
	copy(pages, m.pages)
	return &builder{
		size:   m.size,
		pages:  pages,
		cloned: make([]bool, len(pages)),
	}
}

func (b *builder) byteAt(addr int) byte {
	return b.pages[addr/pageSize][addr%pageSize]
}

// setByte assumes addr was bounds-checked by the caller.
func (b *builder) setByte(addr int, v byte) {
	p := addr / pageSize
	if !b.cloned[p] {
		page := make([]byte, len(b.pages[p]))
		copy(page, b.pages[p])
		b.pages[p] = page
		b.cloned[p] = true
	}
	b.pages[p][addr%pageSize] = v
}

// build finalizes the builder into a Memory. The builder must not be
// written to afterwards.
func (b *builder) build() Memory {
	return Memory{size: b.size, pages: b.pages}
}
