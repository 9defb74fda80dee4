// Package stats computes aggregates over an in-memory blog collection.
// All functions are pure and safe for concurrent use.
package stats

import "github.com/vedran77/quill/internal/domain"

type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums likes across all blogs. Empty input yields 0.
func TotalLikes(blogs []domain.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// MostLiked returns the blog with the highest like count. When several blogs
// share the maximum, the last one in input order wins: a later blog with a
// like count greater than or equal to the current maximum replaces it.
// The second return is false for empty input.
func MostLiked(blogs []domain.Blog) (domain.Blog, bool) {
	if len(blogs) == 0 {
		return domain.Blog{}, false
	}

	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes >= best.Likes {
			best = b
		}
	}
	return best, true
}

// AuthorWithMostBlogs groups by author (exact, case-sensitive match) and
// returns the author with the most entries. Ties resolve to the author that
// appears first in the input.
func AuthorWithMostBlogs(blogs []domain.Blog) (AuthorBlogs, bool) {
	authors, counts := groupAuthors(blogs, func(domain.Blog) int { return 1 })
	if len(authors) == 0 {
		return AuthorBlogs{}, false
	}

	best := AuthorBlogs{Author: authors[0], Blogs: counts[authors[0]]}
	for _, a := range authors[1:] {
		if counts[a] > best.Blogs {
			best = AuthorBlogs{Author: a, Blogs: counts[a]}
		}
	}
	return best, true
}

// AuthorWithMostLikes groups by author and returns the author with the
// largest cumulative like count. Same tie-break as AuthorWithMostBlogs.
func AuthorWithMostLikes(blogs []domain.Blog) (AuthorLikes, bool) {
	authors, sums := groupAuthors(blogs, func(b domain.Blog) int { return b.Likes })
	if len(authors) == 0 {
		return AuthorLikes{}, false
	}

	best := AuthorLikes{Author: authors[0], Likes: sums[authors[0]]}
	for _, a := range authors[1:] {
		if sums[a] > best.Likes {
			best = AuthorLikes{Author: a, Likes: sums[a]}
		}
	}
	return best, true
}

// groupAuthors accumulates weight(blog) per author, preserving
// first-appearance order in the returned slice.
func groupAuthors(blogs []domain.Blog, weight func(domain.Blog) int) ([]string, map[string]int) {
	order := make([]string, 0, len(blogs))
	acc := make(map[string]int, len(blogs))
	for _, b := range blogs {
		if _, seen := acc[b.Author]; !seen {
			order = append(order, b.Author)
		}
		acc[b.Author] += weight(b)
	}
	return order, acc
}
