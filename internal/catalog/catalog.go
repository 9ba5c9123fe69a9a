package catalog

import "sort"

// Catalog is the full local collection of movies, keyed by unique ID.
// Iteration order is newest first (descending ID), matching the persisted
// snapshot ordering.
type Catalog struct {
	movies []Movie
	index  map[int]int
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{index: make(map[int]int)}
}

// FromMovies builds a catalog from a movie slice, preserving order.
// Duplicate IDs keep the first occurrence.
func FromMovies(movies []Movie) *Catalog {
	c := New()
	for _, m := range movies {
		c.Add(m)
	}
	return c
}

// Len returns the number of movies in the catalog.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Lookup returns the movie with the given ID.
func (c *Catalog) Lookup(id int) (Movie, bool) {
	i, ok := c.index[id]
	if !ok {
		return Movie{}, false
	}
	return c.movies[i], true
}

// Add appends a movie unless its ID is already present. Returns true if the
// movie was added.
func (c *Catalog) Add(m Movie) bool {
	if _, ok := c.index[m.ID]; ok {
		return false
	}
	c.index[m.ID] = len(c.movies)
	c.movies = append(c.movies, m)
	return true
}

// IDSet returns the set of IDs currently in the catalog. The returned map is
// a copy; callers may extend it freely.
func (c *Catalog) IDSet() map[int]struct{} {
	ids := make(map[int]struct{}, len(c.movies))
	for id := range c.index {
		ids[id] = struct{}{}
	}
	return ids
}

// Merge adds the pending movies and re-sorts the catalog newest first.
// Existing entries are never removed or modified; pending movies whose ID is
// already present are ignored. Returns the number of movies actually added.
func (c *Catalog) Merge(pending []Movie) int {
	added := 0
	for _, m := range pending {
		if c.Add(m) {
			added++
		}
	}
	if added > 0 {
		c.sortByIDDescending()
	}
	return added
}

// List returns up to limit movies in catalog order. Any non-positive limit
// means no cap: all movies are returned.
func (c *Catalog) List(limit int) []Movie {
	n := len(c.movies)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Movie, n)
	copy(out, c.movies[:n])
	return out
}

// Movies returns all movies in catalog order.
func (c *Catalog) Movies() []Movie {
	return c.List(0)
}

func (c *Catalog) sortByIDDescending() {
	sort.Slice(c.movies, func(i, j int) bool {
		return c.movies[i].ID > c.movies[j].ID
	})
	for i, m := range c.movies {
		c.index[m.ID] = i
	}
}
