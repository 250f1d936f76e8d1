package users

import "testing"

func searchFixture() []User {
	return []User{
		{
			DocumentID:     "AB123456",
			Name:           "José Pérez",
			Email:          "jose.perez@example.com",
			NameNormalized: "jose perez",
			NameLower:      "josé pérez",
		},
		{
			DocumentID:     "CD789012",
			Name:           "María López",
			Email:          "maria@correo.net",
			NameNormalized: "maria lopez",
			NameLower:      "maría lópez",
		},
		{
			DocumentID:     "XY345678",
			Name:           "Ana Torres",
			Email:          "ana.torres@example.com",
			NameNormalized: "ana torres",
			NameLower:      "ana torres",
		},
	}
}

func documents(usuarios []User) []string {
	docs := make([]string, 0, len(usuarios))
	for _, u := range usuarios {
		docs = append(docs, u.DocumentID)
	}
	return docs
}

func TestMatchers(t *testing.T) {
	tests := []struct {
		name     string
		match    matchFunc
		expected []string
	}{
		{"email substring", matchEmail("example"), []string{"AB123456", "XY345678"}},
		{"email uppercase query", matchEmail("MARIA"), []string{"CD789012"}},
		{"email no match", matchEmail("gmail"), []string{}},
		{"name accent insensitive", matchName("pérez"), []string{"AB123456"}},
		{"name plain query", matchName("maria"), []string{"CD789012"}},
		{"name uppercase query", matchName("ANA"), []string{"XY345678"}},
		{"document lowercase query", matchDocument("ab12"), []string{"AB123456"}},
		{"document shared fragment", matchDocument("345"), []string{"AB123456", "XY345678"}},
		{"any hits document", matchAny("cd789"), []string{"CD789012"}},
		{"any hits name", matchAny("torres"), []string{"XY345678"}},
		{"any hits email", matchAny("correo.net"), []string{"CD789012"}},
		{"any no match", matchAny("zzz"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := documents(filterUsers(searchFixture(), tt.match))
			if len(got) != len(tt.expected) {
				t.Fatalf("matched %v, expected %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("match %d = %q, expected %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestFilterUsersNilMatch(t *testing.T) {
	fixture := searchFixture()

	got := filterUsers(fixture, nil)
	if len(got) != len(fixture) {
		t.Errorf("nil match filtered to %d records, expected all %d", len(got), len(fixture))
	}
}
