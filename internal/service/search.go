package service

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"slate/internal/database/repository"
)

// searchThreshold is the minimum similarity for a fuzzy-only match.
const searchThreshold = 0.55

// Similarity scores two strings in [0, 1], case-insensitive. Substring
// containment scores at least 0.8 so short queries still match long sluglines.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	score := 0.0
	if strings.Contains(b, a) || strings.Contains(a, b) {
		score = 0.8
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	dist := levenshtein.ComputeDistance(a, b)
	if s := 1 - float64(dist)/float64(maxLen); s > score {
		score = s
	}
	return score
}

type rankedScene struct {
	scene repository.Scene
	score float64
}

// FilterScenes returns scenes matching query by slugline, number, or
// synopsis, best match first. An empty query returns the input unchanged.
func FilterScenes(scenes []repository.Scene, query string) []repository.Scene {
	query = strings.TrimSpace(query)
	if query == "" {
		return scenes
	}
	var ranked []rankedScene
	for _, sc := range scenes {
		score := Similarity(query, sc.Slugline)
		if s := Similarity(query, sc.Number); s > score {
			score = s
		}
		if sc.Synopsis != nil {
			if s := Similarity(query, *sc.Synopsis); s > score {
				score = s
			}
		}
		if score >= searchThreshold {
			ranked = append(ranked, rankedScene{scene: sc, score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	out := make([]repository.Scene, len(ranked))
	for i, r := range ranked {
		out[i] = r.scene
	}
	return out
}

// FilterElements returns elements whose name matches query, best match first.
func FilterElements(elements []repository.Element, query string) []repository.Element {
	query = strings.TrimSpace(query)
	if query == "" {
		return elements
	}
	type ranked struct {
		el    repository.Element
		score float64
	}
	var hits []ranked
	for _, e := range elements {
		if score := Similarity(query, e.Name); score >= searchThreshold {
			hits = append(hits, ranked{el: e, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	out := make([]repository.Element, len(hits))
	for i, h := range hits {
		out[i] = h.el
	}
	return out
}
