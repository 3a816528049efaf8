// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package catalog

import "github.com/tomtom215/cinerec/internal/recommend"

// Sample returns the built-in 20-movie catalog and its 18 seed ratings.
// Each call returns fresh slices.
func Sample() *Dataset {
	return &Dataset{
		Items:   sampleItems(),
		Ratings: sampleRatings(),
	}
}

func sampleItems() []recommend.Item {
	return []recommend.Item{
		{ID: 1, Title: "The Shawshank Redemption", Genre: "Drama", Director: "Frank Darabont", Year: 1994, Score: 9.3, Keywords: "prison friendship hope redemption"},
		{ID: 2, Title: "The Godfather", Genre: "Crime Drama", Director: "Francis Ford Coppola", Year: 1972, Score: 9.2, Keywords: "mafia family power loyalty"},
		{ID: 3, Title: "The Dark Knight", Genre: "Action Thriller", Director: "Christopher Nolan", Year: 2008, Score: 9.0, Keywords: "batman joker chaos justice hero"},
		{ID: 4, Title: "Pulp Fiction", Genre: "Crime Drama", Director: "Quentin Tarantino", Year: 1994, Score: 8.9, Keywords: "crime nonlinear dialogue coolness"},
		{ID: 5, Title: "Forrest Gump", Genre: "Drama", Director: "Robert Zemeckis", Year: 1994, Score: 8.8, Keywords: "life journey innocence america"},
		{ID: 6, Title: "Inception", Genre: "Sci-Fi Thriller", Director: "Christopher Nolan", Year: 2010, Score: 8.8, Keywords: "dreams reality heist mindbending"},
		{ID: 7, Title: "The Matrix", Genre: "Sci-Fi Action", Director: "Wachowskis", Year: 1999, Score: 8.7, Keywords: "simulation reality choice freedom"},
		{ID: 8, Title: "Goodfellas", Genre: "Crime Drama", Director: "Martin Scorsese", Year: 1990, Score: 8.7, Keywords: "mafia crime loyalty violence"},
		{ID: 9, Title: "The Silence of the Lambs", Genre: "Thriller", Director: "Jonathan Demme", Year: 1991, Score: 8.6, Keywords: "serial killer FBI psychology"},
		{ID: 10, Title: "Se7en", Genre: "Crime Thriller", Director: "David Fincher", Year: 1995, Score: 8.6, Keywords: "detective serial killer dark twisted"},
		{ID: 11, Title: "The Prestige", Genre: "Mystery Thriller", Director: "Christopher Nolan", Year: 2006, Score: 8.5, Keywords: "magic rivalry obsession sacrifice"},
		{ID: 12, Title: "Memento", Genre: "Mystery Thriller", Director: "Christopher Nolan", Year: 2000, Score: 8.4, Keywords: "memory revenge puzzle nonlinear"},
		{ID: 13, Title: "Interstellar", Genre: "Sci-Fi Drama", Director: "Christopher Nolan", Year: 2014, Score: 8.7, Keywords: "space time love relativity wormhole"},
		{ID: 14, Title: "The Departed", Genre: "Crime Thriller", Director: "Martin Scorsese", Year: 2006, Score: 8.5, Keywords: "undercover police betrayal boston"},
		{ID: 15, Title: "Fight Club", Genre: "Drama", Director: "David Fincher", Year: 1999, Score: 8.8, Keywords: "consumerism identity anarchism twist"},
		{ID: 16, Title: "The Green Mile", Genre: "Drama", Director: "Frank Darabont", Year: 1999, Score: 8.6, Keywords: "death row prison supernatural miracle"},
		{ID: 17, Title: "Gladiator", Genre: "Action Drama", Director: "Ridley Scott", Year: 2000, Score: 8.5, Keywords: "rome gladiator revenge honor empire"},
		{ID: 18, Title: "The Usual Suspects", Genre: "Mystery Thriller", Director: "Bryan Singer", Year: 1995, Score: 8.5, Keywords: "crime twist mystery suspects"},
		{ID: 19, Title: "American Beauty", Genre: "Drama", Director: "Sam Mendes", Year: 1999, Score: 8.3, Keywords: "suburban midlife crisis beauty"},
		{ID: 20, Title: "Parasite", Genre: "Thriller Drama", Director: "Bong Joon-ho", Year: 2019, Score: 8.5, Keywords: "class inequality family thriller korean"},
	}
}

func sampleRatings() []recommend.Rating {
	triples := [][3]int{
		{1, 1, 5}, {1, 2, 5}, {1, 3, 4}, {1, 6, 5},
		{2, 1, 5}, {2, 4, 4}, {2, 5, 5},
		{3, 3, 5}, {3, 6, 5}, {3, 7, 4}, {3, 11, 5},
		{4, 2, 5}, {4, 8, 5}, {4, 14, 4},
		{5, 3, 4}, {5, 6, 5}, {5, 11, 4}, {5, 13, 5},
	}

	ratings := make([]recommend.Rating, len(triples))
	for i, t := range triples {
		ratings[i] = recommend.Rating{UserID: t[0], ItemID: t[1], Value: float64(t[2])}
	}
	return ratings
}
